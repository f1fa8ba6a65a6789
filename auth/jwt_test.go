package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPair(t *testing.T) {
	svc := NewJWTService("test-secret", "test-refresh-secret")

	pair, err := svc.GenerateTokenPair("user-1", "user@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	t.Run("access token carries identity", func(t *testing.T) {
		claims, err := svc.VerifyAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token verifies as refresh", func(t *testing.T) {
		claims, err := svc.VerifyRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})
}

func TestVerifyRejectsWrongTokenType(t *testing.T) {
	svc := NewJWTService("same-secret", "same-secret")

	pair, err := svc.GenerateTokenPair("user-1", "user@example.com", "staff")
	require.NoError(t, err)

	// With identical secrets the signature checks out, so only the
	// token_type claim stops a refresh token being used as an access token.
	_, err = svc.VerifyAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = svc.VerifyRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", "secret-a")
	other := NewJWTService("secret-b", "secret-b")

	pair, err := svc.GenerateTokenPair("user-1", "user@example.com", "staff")
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "")

	_, err := svc.VerifyAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshSecretFallsBackToAccessSecret(t *testing.T) {
	svc := NewJWTService("only-secret", "")

	pair, err := svc.GenerateTokenPair("user-1", "user@example.com", "staff")
	require.NoError(t, err)

	claims, err := svc.VerifyRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
