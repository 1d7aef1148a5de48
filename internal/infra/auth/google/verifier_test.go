package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AZHIK/africa-soko-backend/config"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
)

func newVerifierForTest(t *testing.T, handler http.HandlerFunc) service.GoogleTokenVerifier {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewVerifier(&config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "soko-client-id",
			TokenInfoURL: server.URL,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	verifier := newVerifierForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "the-id-token", r.URL.Query().Get("id_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"iss": "https://accounts.google.com",
			"sub": "10769150350006150715113082367",
			"aud": "soko-client-id",
			"email": "amina@example.com",
			"email_verified": "true",
			"name": "Amina Diallo",
			"picture": "https://lh3.googleusercontent.com/a/photo.jpg"
		}`))
	})

	user, err := verifier.VerifyIDToken(context.Background(), "the-id-token")
	require.NoError(t, err)

	assert.Equal(t, "10769150350006150715113082367", user.Subject)
	assert.Equal(t, "amina@example.com", user.Email)
	assert.Equal(t, "Amina Diallo", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestVerifier_AudienceMismatch(t *testing.T) {
	verifier := newVerifierForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"aud": "someone-elses-client-id", "email": "amina@example.com"}`))
	})

	user, err := verifier.VerifyIDToken(context.Background(), "the-id-token")

	assert.Nil(t, user)
	assert.Error(t, err)
}

func TestVerifier_RejectedToken(t *testing.T) {
	verifier := newVerifierForTest(t, func(w http.ResponseWriter, r *http.Request) {
		// Google answers 400 for expired or malformed ID tokens.
		http.Error(w, `{"error": "invalid_token"}`, http.StatusBadRequest)
	})

	user, err := verifier.VerifyIDToken(context.Background(), "expired-token")

	assert.Nil(t, user)
	assert.Error(t, err)
}

func TestVerifier_UnverifiedEmailFlag(t *testing.T) {
	verifier := newVerifierForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"aud": "soko-client-id", "email": "amina@example.com", "email_verified": "false"}`))
	})

	user, err := verifier.VerifyIDToken(context.Background(), "the-id-token")
	require.NoError(t, err)

	assert.False(t, user.EmailVerified)
}

func TestVerifier_MalformedResponse(t *testing.T) {
	verifier := newVerifierForTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	user, err := verifier.VerifyIDToken(context.Background(), "the-id-token")

	assert.Nil(t, user)
	assert.Error(t, err)
}
