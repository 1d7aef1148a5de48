package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "github.com/AZHIK/africa-soko-backend/internal/delivery/context"
	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware validates bearer access tokens and resolves the caller.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate validates the JWT access token and loads the account behind it.
// The resolved user ID and admin flag are stored both on the echo context and
// the request context so use cases can read them without echo.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Refresh tokens cannot access resources")
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return response.Unauthorized(c, "INVALID_CREDENTIALS", "Invalid user ID in token")
		}

		// The token may outlive the account. The admin flag is taken from the
		// live record, not the claims, so a demotion applies immediately.
		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.NotFound(c, "USER_NOT_FOUND", "User not found")
			}

			return errors.WithStack(err)
		}
		if !user.IsActive {
			return response.Forbidden(c, "FORBIDDEN", "Account is deactivated")
		}

		c.Set(string(deliverycontext.KeyUserID), user.ID)
		c.Set(string(deliverycontext.KeyIsAdmin), user.IsAdmin)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithUserID(ctx, user.ID)
		ctx = deliverycontext.WithIsAdmin(ctx, user.IsAdmin)
		if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
			ctx = deliverycontext.WithLogger(ctx, reqLogger.With(slog.Int64("user_id", user.ID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin gates a route to administrators. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, _ := c.Get(string(deliverycontext.KeyIsAdmin)).(bool)
		if !isAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Administrator access required")
		}

		return next(c)
	}
}
