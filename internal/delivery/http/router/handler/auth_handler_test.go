package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/validator"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	authenticate func(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error)
}

func (f *fakeAuthUsecase) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	return f.authenticate(ctx, input)
}

func postAuthenticate(t *testing.T, uc usecase.AuthUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/authenticate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := NewAuthHandler(uc).Authenticate(e.NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

func TestAuthHandler_SuccessWireFormat(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticate: func(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			assert.Equal(t, "email", input.AuthType)

			return &usecase.AuthenticateOutput{
				Status:       "success",
				AccessToken:  "the-access-token",
				RefreshToken: "the-refresh-token",
				IsNew:        true,
				RoleName:     "customer",
				Referee:      "friend-42",
			}, nil
		},
	}

	rec := postAuthenticate(t, uc, `{"auth_type":"email","email":"amina@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Clients key off these exact names, underscores included.
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "the-access-token", body["___access_token"])
	assert.Equal(t, "the-refresh-token", body["___refresh_token"])
	assert.Equal(t, true, body["new"])
	assert.Equal(t, "customer", body["role"])
	assert.Equal(t, "friend-42", body["referee"])
	assert.NotContains(t, body, "detail")
}

func TestAuthHandler_LogicalFailureIsHTTP200(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticate: func(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			return &usecase.AuthenticateOutput{Status: "failed", Detail: "invalid credentials"}, nil
		},
	}

	rec := postAuthenticate(t, uc, `{"auth_type":"email","email":"amina@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "invalid credentials", body["detail"])
	assert.NotContains(t, body, "___access_token")
	assert.NotContains(t, body, "___refresh_token")
	assert.Equal(t, false, body["new"])
}

func TestAuthHandler_UnknownAuthType(t *testing.T) {
	uc := &fakeAuthUsecase{
		authenticate: func(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			t.Fatal("usecase must not be reached for an invalid auth_type")

			return nil, nil
		},
	}

	rec := postAuthenticate(t, uc, `{"auth_type":"magic-link"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "unsupported authentication type", body["detail"])
}
