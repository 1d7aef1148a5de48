package service

import "github.com/golang-jwt/jwt/v5"

// Token type discriminators carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims embedded in issued tokens.
// The subject is the decimal string form of the user ID.
type Claims struct {
	IsAdmin bool   `json:"is_admin"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken mints a short-lived access token for a user.
	GenerateAccessToken(userID int64, isAdmin bool) (string, error)

	// GenerateRefreshToken mints a long-lived refresh token for a user.
	GenerateRefreshToken(userID int64, isAdmin bool) (string, error)

	// ValidateToken checks signature, expiry and claim shape. Every
	// verification failure surfaces as the same invalid-credentials
	// condition; callers cannot distinguish why a token was rejected.
	ValidateToken(tokenString string) (*Claims, error)
}
