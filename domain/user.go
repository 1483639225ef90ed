package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSignIn  = "signed in successfully"
	MessageSuccessGetUser = "user retrieved successfully"

	MessageFailedSignIn  = "failed to sign in"
	MessageFailedGetUser = "failed to retrieve user"

	ErrUserNotFound       = errors.New("user not found")
	ErrGoogleTokenInvalid = errors.New("google token invalid")
	ErrEmailMissing       = errors.New("google account has no email")
)

type (
	GoogleSignInRequest struct {
		IDToken string `json:"id_token" validate:"required"`
	}

	SignInResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Mobile       string     `json:"mobile,omitempty"`
		Email        string     `json:"email"`
		IsAdmin      bool       `json:"is_admin"`
		LastLoggedIn *time.Time `json:"last_logged_in,omitempty"`
	}
)
