package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookingtrack/auth"
	"bookingtrack/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) CreateUser(user *models.User) error { return nil }

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) GetUsers() ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetUserByID(id string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) UpdateUser(user *models.User) error          { return nil }
func (f *fakeUserRepo) DeleteUser(id string) error                  { return nil }

func newAuthHandler(t *testing.T, password string) *AuthHandler {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*models.User{
		"user@example.com": {
			ID:       "u-1",
			Email:    "user@example.com",
			Password: string(hash),
			Role:     "staff",
			IsActive: true,
		},
	}}
	return &AuthHandler{Repo: repo, JWT: auth.NewJWTService("test-secret", "")}
}

func TestLogin(t *testing.T) {
	t.Run("issues a token pair on valid credentials", func(t *testing.T) {
		h := newAuthHandler(t, "s3cret")

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"user@example.com","password":"s3cret"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var pair auth.TokenPair
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&pair))
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		claims, err := h.JWT.VerifyAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		h := newAuthHandler(t, "s3cret")

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"user@example.com","password":"wrong"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		h := newAuthHandler(t, "s3cret")

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"nobody@example.com","password":"s3cret"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("exchanges a refresh token for a new pair", func(t *testing.T) {
		h := newAuthHandler(t, "s3cret")

		pair, err := h.JWT.GenerateTokenPair("u-1", "user@example.com", "staff")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh",
			strings.NewReader(`{"refreshToken":"`+pair.RefreshToken+`"}`))
		rec := httptest.NewRecorder()

		h.Refresh(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var fresh auth.TokenPair
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&fresh))

		claims, err := h.JWT.VerifyAccessToken(fresh.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
	})

	t.Run("refuses an access token in the refresh slot", func(t *testing.T) {
		h := newAuthHandler(t, "s3cret")

		pair, err := h.JWT.GenerateTokenPair("u-1", "user@example.com", "staff")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh",
			strings.NewReader(`{"refreshToken":"`+pair.AccessToken+`"}`))
		rec := httptest.NewRecorder()

		h.Refresh(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		h := newAuthHandler(t, "s3cret")

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		h.Refresh(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
