package jwt

import (
	"testing"

	"ayushi-kitchen-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.NewString()

	token := service.GenerateTokenUser(userID, domain.RoleAdmin)
	require.NotEmpty(t, token)

	gotID, gotRole, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, domain.RoleAdmin, gotRole)
}

func TestTokenWrongSecret(t *testing.T) {
	token := NewJWTService("secret-a").GenerateTokenUser(uuid.NewString(), domain.RoleUser)

	_, _, err := NewJWTService("secret-b").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	service := NewJWTService("test-secret")

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
