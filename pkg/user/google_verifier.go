package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ayushi-kitchen-backend/domain"
)

type (
	// GoogleClaims is the subset of Google's tokeninfo payload the sign-in
	// flow needs.
	GoogleClaims struct {
		Subject       string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified string `json:"email_verified"`
		Name          string `json:"name"`
		Audience      string `json:"aud"`
	}

	GoogleVerifier interface {
		Verify(ctx context.Context, idToken string) (GoogleClaims, error)
	}

	googleVerifier struct {
		clientID   string
		httpClient *http.Client
	}
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *googleVerifier) Verify(ctx context.Context, idToken string) (GoogleClaims, error) {
	url := fmt.Sprintf("%s?id_token=%s", tokenInfoURL, idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return GoogleClaims{}, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return GoogleClaims{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleClaims{}, domain.ErrGoogleTokenInvalid
	}

	var claims GoogleClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return GoogleClaims{}, err
	}

	// The token must have been issued for this application.
	if claims.Audience != v.clientID {
		return GoogleClaims{}, domain.ErrGoogleTokenInvalid
	}

	return claims, nil
}
