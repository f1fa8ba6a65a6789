package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

const (
	accessExpiration  = time.Hour
	refreshExpiration = 7 * 24 * time.Hour
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
)

// Claims carries the authenticated identity the rest of the backend trusts
// for created_by / last_updated_by stamping.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
}

// TokenPair is an access and refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// JWTService signs and verifies the backend's bearer tokens.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewJWTService(secret, refreshSecret string) *JWTService {
	if refreshSecret == "" {
		refreshSecret = secret
	}
	return &JWTService{
		accessSecret:  []byte(secret),
		refreshSecret: []byte(refreshSecret),
	}
}

// GenerateTokenPair issues an access token (1h) and refresh token (7d) for a user.
func (s *JWTService) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	access, err := s.generate(userID, email, role, TokenTypeAccess, accessExpiration, s.accessSecret)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generate(userID, email, role, TokenTypeRefresh, refreshExpiration, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *JWTService) generate(userID, email, role string, tokenType TokenType, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken parses and validates an access token.
func (s *JWTService) VerifyAccessToken(tokenStr string) (*Claims, error) {
	return s.verify(tokenStr, TokenTypeAccess, s.accessSecret)
}

// VerifyRefreshToken parses and validates a refresh token.
func (s *JWTService) VerifyRefreshToken(tokenStr string) (*Claims, error) {
	return s.verify(tokenStr, TokenTypeRefresh, s.refreshSecret)
}

func (s *JWTService) verify(tokenStr string, want TokenType, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != want {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}
