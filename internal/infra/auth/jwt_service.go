// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/AZHIK/africa-soko-backend/config"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens share one HS256 secret and differ only in the
// "type" claim and their lifetime.
type jwtService struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.Auth.SecretKey,
		accessTTL:  time.Duration(cfg.Auth.AccessTokenExpireMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.Auth.RefreshTokenExpireDays) * 24 * time.Hour,
	}, nil
}

// GenerateAccessToken creates a short-lived token carrying the admin flag.
func (s *jwtService) GenerateAccessToken(userID int64, isAdmin bool) (string, error) {
	return s.generateToken(userID, isAdmin, s.accessTTL, service.TokenTypeAccess)
}

// GenerateRefreshToken creates a long-lived token used only to mint new access tokens.
func (s *jwtService) GenerateRefreshToken(userID int64, isAdmin bool) (string, error) {
	return s.generateToken(userID, isAdmin, s.refreshTTL, service.TokenTypeRefresh)
}

// ValidateToken parses and verifies a token string, returning its claims.
// Expired, tampered and otherwise malformed tokens all fail here.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID int64, isAdmin bool, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		IsAdmin: isAdmin,
		Type:    tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
