package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AZHIK/africa-soko-backend/config"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
)

func newJWTServiceForTest(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			SecretKey:                "test-secret",
			AccessTokenExpireMinutes: 60,
			RefreshTokenExpireDays:   30,
		},
	})
	require.NoError(t, err)

	return svc
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.GenerateAccessToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTService_RefreshTokenCarriesType(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.GenerateRefreshToken(7, false)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "7", claims.Subject)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, service.TokenTypeRefresh, claims.Type)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.GenerateAccessToken(42, false)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	claims, err := svc.ValidateToken(tampered)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newJWTServiceForTest(t)

	other, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			SecretKey:                "another-secret",
			AccessTokenExpireMinutes: 60,
			RefreshTokenExpireDays:   30,
		},
	})
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(42, false)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	now := time.Now()
	claims := &service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc := newJWTServiceForTest(t)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	claims := &service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := newJWTServiceForTest(t)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})

	assert.Error(t, err)
}
