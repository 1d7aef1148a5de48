// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// Auth types accepted by the authenticate endpoint. The type is an explicit,
// required discriminant; the request content is never sniffed.
const (
	AuthTypeGoogle  = "google"
	AuthTypeEmail   = "email"
	AuthTypeRefresh = "refresh"
)

// AuthenticateInput carries one authentication attempt. Exactly one shape is
// meaningful per AuthType: Token for google/refresh, Email+Password for email.
type AuthenticateInput struct {
	AuthType string `json:"auth_type" validate:"required,oneof=google email refresh"`
	Token    string `json:"token,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Referee  string `json:"referee,omitempty"`
}

// AuthenticateOutput mirrors the wire contract of the authenticate endpoint.
// Logical failures set Status to "failed" with Detail; they are not errors.
type AuthenticateOutput struct {
	Status       string
	Detail       string
	AccessToken  string
	RefreshToken string
	IsNew        bool
	RoleName     string
	Referee      string
}

// Failed reports whether the attempt was a logical failure.
func (o *AuthenticateOutput) Failed() bool {
	return o.Status != "success"
}

// AuthUsecase defines the authentication business operations.
type AuthUsecase interface {
	// Authenticate dispatches on input.AuthType. Expected failures (bad
	// credentials, invalid tokens, unsupported type) come back as a failed
	// output with a detail string, never as an error; errors are reserved
	// for infrastructure faults.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
