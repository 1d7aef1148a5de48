package service

import "context"

// GoogleUser is the identity extracted from a verified Google ID token.
type GoogleUser struct {
	Subject       string // Google's 'sub' claim
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// GoogleTokenVerifier verifies Google ID tokens against the provider's
// tokeninfo endpoint. Verification is the only outbound network call in the
// request path and is bounded by its own timeout.
type GoogleTokenVerifier interface {
	// VerifyIDToken verifies the token's validity and audience and returns
	// the embedded identity.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
