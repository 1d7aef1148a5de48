// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/AZHIK/africa-soko-backend/config"
	deliverycontext "github.com/AZHIK/africa-soko-backend/internal/delivery/context"
	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	roleRepo        repository.RoleRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	googleVerifier  service.GoogleTokenVerifier
	defaultPassword string
	defaultRoleName string
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	RoleRepo       repository.RoleRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	GoogleVerifier service.GoogleTokenVerifier
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var defaultPassword, defaultRoleName string
	if params.Config != nil && params.Config.Auth != nil {
		defaultPassword = params.Config.Auth.GoogleUserDefaultPassword
		defaultRoleName = params.Config.Auth.DefaultRoleName
	}

	return &authService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		roleRepo:        params.RoleRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		googleVerifier:  params.GoogleVerifier,
		defaultPassword: defaultPassword,
		defaultRoleName: defaultRoleName,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// failed builds a logical-failure output. These are not errors: the endpoint
// reports them with HTTP 200 and a "failed" status.
func failed(detail string) *usecase.AuthenticateOutput {
	return &usecase.AuthenticateOutput{Status: "failed", Detail: detail}
}

// Authenticate dispatches on the explicit auth_type. The request content is
// never inspected to guess the type.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Info("Starting authentication", slog.String("auth_type", input.AuthType))

	switch input.AuthType {
	case usecase.AuthTypeGoogle:
		return srv.authenticateGoogle(ctx, input)
	case usecase.AuthTypeEmail:
		return srv.authenticateEmail(ctx, input)
	case usecase.AuthTypeRefresh:
		return srv.authenticateRefresh(ctx, input)
	default:
		return failed("unsupported auth_type"), nil
	}
}

// authenticateEmail checks an email/password pair against the stored hash.
// Unknown email and wrong password produce the same detail string.
func (srv *authService) authenticateEmail(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	if input.Email == "" || input.Password == "" {
		return failed("email and password are required"), nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Email login failed", slog.String("email", input.Email))

		return failed("invalid credentials"), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt check stays outside any transaction (CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Email login failed", slog.String("email", input.Email))

		return failed("invalid credentials"), nil
	}

	return srv.issueTokens(ctx, user, false, input.Referee)
}

// authenticateGoogle verifies the Google ID token, then finds or creates the
// matching local account by email.
func (srv *authService) authenticateGoogle(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	if input.Token == "" {
		return failed("token is required"), nil
	}

	googleUser, err := srv.googleVerifier.VerifyIDToken(ctx, input.Token)
	if err != nil {
		srv.log(ctx).Warn("Google token verification failed", slog.Any("error", err))

		return failed("invalid google token"), nil
	}

	user, isNew, err := srv.findOrCreateGoogleUser(ctx, googleUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find or create google user")
	}

	return srv.issueTokens(ctx, user, isNew, input.Referee)
}

// findOrCreateGoogleUser loads the account matching the verified Google email,
// creating it inside one transaction when it does not exist yet.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, googleUser *service.GoogleUser) (*entity.User, bool, error) {
	var user *entity.User
	var isNew bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, findErr := userRepo.FindByEmail(ctx, googleUser.Email)
		if findErr == nil {
			user = existing

			return nil
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to find user by email")
		}

		srv.log(ctx).Info("Google user not found, creating new account", slog.String("email", googleUser.Email))

		// Google accounts get a placeholder hash so the password column is
		// never empty; it can never match a real password.
		placeholderHash, hashErr := srv.hasher.Hash(srv.defaultPassword)
		if hashErr != nil {
			return errors.Wrap(hashErr, "failed to hash placeholder password")
		}

		newUser := &entity.User{
			Email:        googleUser.Email,
			Username:     googleUser.Name,
			PasswordHash: placeholderHash,
			ProfilePic:   googleUser.Picture,
			IsActive:     true,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create google user")
		}

		if srv.defaultRoleName != "" {
			if roleErr := srv.assignDefaultRole(ctx, repoFactory, newUser.ID); roleErr != nil {
				return roleErr
			}
		}

		user = newUser
		isNew = true

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to execute google user transaction")
	}

	return user, isNew, nil
}

// assignDefaultRole links the configured default role to a fresh account.
// A missing role is not fatal: the account simply starts without one.
func (srv *authService) assignDefaultRole(ctx context.Context, repoFactory repository.RepositoryFactory, userID int64) error {
	roleRepo := repoFactory.RoleRepo()

	role, err := roleRepo.FindRoleByName(ctx, srv.defaultRoleName)
	if errors.Is(err, repository.ErrRoleNotFound) {
		srv.log(ctx).Warn("Default role not found, skipping assignment", slog.String("role", srv.defaultRoleName))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find default role")
	}

	if err := roleRepo.AssignRole(ctx, userID, role.ID); err != nil {
		return errors.Wrap(err, "failed to assign default role")
	}

	return nil
}

// authenticateRefresh exchanges a valid refresh token for a new access token.
// The refresh token itself is returned unchanged: rotation is deliberately
// not performed, so a client can hold one long-lived refresh token.
func (srv *authService) authenticateRefresh(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	if input.Token == "" {
		return failed("token is required"), nil
	}

	claims, err := srv.tokenService.ValidateToken(input.Token)
	if err != nil {
		srv.log(ctx).Warn("Refresh token validation failed", slog.Any("error", err))

		return failed("invalid refresh token"), nil
	}
	if claims.Type != service.TokenTypeRefresh {
		return failed("invalid refresh token"), nil
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return failed("invalid refresh token"), nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return failed("invalid refresh token"), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	roleName, err := srv.lookupRoleName(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthenticateOutput{
		Status:       "success",
		AccessToken:  accessToken,
		RefreshToken: input.Token,
		RoleName:     roleName,
		Referee:      input.Referee,
	}, nil
}

// issueTokens mints a fresh access/refresh pair and fills in the role name.
func (srv *authService) issueTokens(ctx context.Context, user *entity.User, isNew bool, referee string) (*usecase.AuthenticateOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	roleName, err := srv.lookupRoleName(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Authentication succeeded", slog.Int64("userID", user.ID), slog.Bool("new", isNew))

	return &usecase.AuthenticateOutput{
		Status:       "success",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		IsNew:        isNew,
		RoleName:     roleName,
		Referee:      referee,
	}, nil
}

// lookupRoleName returns the user's first role name, or empty when none is linked.
func (srv *authService) lookupRoleName(ctx context.Context, userID int64) (string, error) {
	role, err := srv.roleRepo.FindFirstRoleByUserID(ctx, userID)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to look up user role")
	}

	return role.Name, nil
}
