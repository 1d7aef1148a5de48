// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the authenticate endpoint.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// authenticateResponse is the frozen wire contract of the authenticate
// endpoint. The underscore-prefixed token keys are kept for client
// compatibility and must not be renamed.
type authenticateResponse struct {
	Status       string `json:"status"`
	Detail       string `json:"detail,omitempty"`
	AccessToken  string `json:"___access_token,omitempty"`
	RefreshToken string `json:"___refresh_token,omitempty"`
	IsNew        bool   `json:"new"`
	RoleName     string `json:"role,omitempty"`
	Referee      string `json:"referee,omitempty"`
}

// Authenticate handles google, email and refresh authentication through one
// endpoint. Logical failures (bad credentials, invalid tokens) still answer
// HTTP 200 with status "failed"; only infrastructure faults become errors.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authentication input")
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusOK, authenticateResponse{
			Status: "failed",
			Detail: "unsupported authentication type",
		})
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, authenticateResponse{
		Status:       output.Status,
		Detail:       output.Detail,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		IsNew:        output.IsNew,
		RoleName:     output.RoleName,
		Referee:      output.Referee,
	})
}
