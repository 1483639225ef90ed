package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"ayushi-kitchen-backend/domain"
	"ayushi-kitchen-backend/entities"
	"ayushi-kitchen-backend/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const providerGoogle = "google"

type (
	UserService interface {
		SignInWithGoogle(ctx context.Context, req domain.GoogleSignInRequest) (domain.SignInResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		verifier       GoogleVerifier
		adminEmails    []string
	}
)

// NewUserService derives admin status from the injected allow-list at
// session time; it is never persisted on the user row.
func NewUserService(
	userRepository UserRepository,
	jwtService jwt.JWTService,
	verifier GoogleVerifier,
	adminEmails []string,
) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		verifier:       verifier,
		adminEmails:    adminEmails,
	}
}

func (s *userService) isAdmin(email string) bool {
	email = strings.ToLower(email)
	for _, allowed := range s.adminEmails {
		if allowed == email {
			return true
		}
	}
	return false
}

func (s *userService) SignInWithGoogle(ctx context.Context, req domain.GoogleSignInRequest) (domain.SignInResponse, error) {
	claims, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return domain.SignInResponse{}, err
	}
	if claims.Email == "" {
		return domain.SignInResponse{}, domain.ErrEmailMissing
	}

	account, err := s.userRepository.FindByProvider(ctx, providerGoogle, claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Returning customers may exist from a guest checkout; attach the
		// Google identity to the matching email instead of duplicating them.
		account, err = s.userRepository.FindByEmail(ctx, claims.Email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			account = &entities.User{
				ID:         uuid.New(),
				Name:       claims.Name,
				Email:      claims.Email,
				Provider:   providerGoogle,
				ProviderID: claims.Subject,
			}
			if err := s.userRepository.Create(ctx, account); err != nil {
				return domain.SignInResponse{}, err
			}
		} else if err != nil {
			return domain.SignInResponse{}, err
		} else {
			account.Provider = providerGoogle
			account.ProviderID = claims.Subject
			if account.Name == "" {
				account.Name = claims.Name
			}
			if err := s.userRepository.Update(ctx, account); err != nil {
				return domain.SignInResponse{}, err
			}
		}
	} else if err != nil {
		return domain.SignInResponse{}, err
	}

	now := time.Now()
	if err := s.userRepository.StampLastLogin(ctx, account.ID, now); err != nil {
		return domain.SignInResponse{}, err
	}
	account.LastLoggedIn = &now

	role := domain.RoleUser
	if s.isAdmin(account.Email) {
		role = domain.RoleAdmin
	}
	token := s.jwtService.GenerateTokenUser(account.ID.String(), role)

	return domain.SignInResponse{
		Token: token,
		User:  s.toUserResponse(account),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	account, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return s.toUserResponse(account), nil
}

func (s *userService) toUserResponse(account *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           account.ID.String(),
		Name:         account.Name,
		Mobile:       account.Mobile,
		Email:        account.Email,
		IsAdmin:      s.isAdmin(account.Email),
		LastLoggedIn: account.LastLoggedIn,
	}
}
