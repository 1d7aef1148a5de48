package impl

import (
	"context"
	"testing"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/domain/service"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tokenSvc service.TokenService, verifier service.GoogleTokenVerifier, tx *fakeTxManager) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager:      tx,
		UserRepo:       userRepo,
		RoleRepo:       roleRepo,
		Hasher:         &fakeHasher{},
		TokenService:   tokenSvc,
		GoogleVerifier: verifier,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})
}

func TestAuthService_EmailLogin_Success(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 7, Email: "jane@example.com", PasswordHash: "hashed:secret", IsActive: true}

	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, email string) (*entity.User, error) {
			require.Equal(t, "jane@example.com", email)

			return user, nil
		},
	}
	roleRepo := &fakeRoleRepo{
		findFirstRoleByUserID: func(_ context.Context, userID int64) (*entity.Role, error) {
			require.Equal(t, int64(7), userID)

			return &entity.Role{ID: 1, Name: "customer"}, nil
		},
	}

	svc := newAuthServiceForTest(userRepo, roleRepo, &fakeTokenService{}, &fakeGoogleVerifier{}, &fakeTxManager{})

	output, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
		AuthType: usecase.AuthTypeEmail,
		Email:    "jane@example.com",
		Password: "secret",
		Referee:  "friend-42",
	})
	require.NoError(t, err)
	assert.False(t, output.Failed())
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "customer", output.RoleName)
	assert.Equal(t, "friend-42", output.Referee)
	assert.False(t, output.IsNew)
}

func TestAuthService_EmailLogin_UniformFailureDetail(t *testing.T) {
	ctx := context.Background()

	unknownEmailRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	wrongPasswordRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, _ string) (*entity.User, error) {
			return &entity.User{ID: 7, PasswordHash: "hashed:other"}, nil
		},
	}

	for name, userRepo := range map[string]*fakeUserRepo{
		"unknown email":  unknownEmailRepo,
		"wrong password": wrongPasswordRepo,
	} {
		t.Run(name, func(t *testing.T) {
			svc := newAuthServiceForTest(userRepo, &fakeRoleRepo{}, &fakeTokenService{}, &fakeGoogleVerifier{}, &fakeTxManager{})

			output, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
				AuthType: usecase.AuthTypeEmail,
				Email:    "jane@example.com",
				Password: "secret",
			})
			require.NoError(t, err)
			assert.True(t, output.Failed())
			// Unknown account and bad password must be indistinguishable.
			assert.Equal(t, "invalid credentials", output.Detail)
		})
	}
}

func TestAuthService_EmailLogin_MissingFields(t *testing.T) {
	svc := newAuthServiceForTest(&fakeUserRepo{}, &fakeRoleRepo{}, &fakeTokenService{}, &fakeGoogleVerifier{}, &fakeTxManager{})

	output, err := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{
		AuthType: usecase.AuthTypeEmail,
		Email:    "jane@example.com",
	})
	require.NoError(t, err)
	assert.True(t, output.Failed())
}

func TestAuthService_UnsupportedAuthType(t *testing.T) {
	svc := newAuthServiceForTest(&fakeUserRepo{}, &fakeRoleRepo{}, &fakeTokenService{}, &fakeGoogleVerifier{}, &fakeTxManager{})

	output, err := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{AuthType: "magic-link"})
	require.NoError(t, err)
	assert.True(t, output.Failed())
}

func TestAuthService_GoogleLogin_CreatesUserOnce(t *testing.T) {
	ctx := context.Background()

	users := map[string]*entity.User{}
	var created int

	userRepo := &fakeUserRepo{
		findByEmail: func(_ context.Context, email string) (*entity.User, error) {
			if user, ok := users[email]; ok {
				return user, nil
			}

			return nil, repository.ErrUserNotFound
		},
		create: func(_ context.Context, user *entity.User) error {
			created++
			user.ID = int64(created)
			users[user.Email] = user

			return nil
		},
	}
	roleRepo := &fakeRoleRepo{
		findRoleByName: func(_ context.Context, name string) (*entity.Role, error) {
			require.Equal(t, "customer", name)

			return &entity.Role{ID: 3, Name: "customer"}, nil
		},
		assignRole: func(_ context.Context, userID, roleID int64) error {
			require.Equal(t, int64(3), roleID)

			return nil
		},
		findFirstRoleByUserID: func(_ context.Context, _ int64) (*entity.Role, error) {
			return &entity.Role{ID: 3, Name: "customer"}, nil
		},
	}
	verifier := &fakeGoogleVerifier{
		verify: func(_ context.Context, idToken string) (*service.GoogleUser, error) {
			require.Equal(t, "google-id-token", idToken)

			return &service.GoogleUser{
				Subject:       "google-sub",
				Email:         "new@example.com",
				Name:          "New User",
				EmailVerified: true,
			}, nil
		},
	}
	tx := &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo, roleRepo: roleRepo}}

	svc := newAuthServiceForTest(userRepo, roleRepo, &fakeTokenService{}, verifier, tx)

	input := &usecase.AuthenticateInput{AuthType: usecase.AuthTypeGoogle, Token: "google-id-token"}

	first, err := svc.Authenticate(ctx, input)
	require.NoError(t, err)
	assert.False(t, first.Failed())
	assert.True(t, first.IsNew)
	assert.Equal(t, 1, created)

	// Placeholder credential is hashed, never stored verbatim.
	assert.Equal(t, "hashed:placeholder-password", users["new@example.com"].PasswordHash)
	assert.True(t, users["new@example.com"].IsActive)

	second, err := svc.Authenticate(ctx, input)
	require.NoError(t, err)
	assert.False(t, second.Failed())
	assert.False(t, second.IsNew)
	assert.Equal(t, 1, created)
}

func TestAuthService_GoogleLogin_InvalidToken(t *testing.T) {
	verifier := &fakeGoogleVerifier{
		verify: func(_ context.Context, _ string) (*service.GoogleUser, error) {
			return nil, assert.AnError
		},
	}

	svc := newAuthServiceForTest(&fakeUserRepo{}, &fakeRoleRepo{}, &fakeTokenService{}, verifier, &fakeTxManager{})

	output, err := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{
		AuthType: usecase.AuthTypeGoogle,
		Token:    "bogus",
	})
	require.NoError(t, err)
	assert.True(t, output.Failed())
}

func TestAuthService_Refresh_ReturnsTokenUnchanged(t *testing.T) {
	ctx := context.Background()

	userRepo := &fakeUserRepo{
		findByID: func(_ context.Context, id int64) (*entity.User, error) {
			require.Equal(t, int64(7), id)

			return &entity.User{ID: 7, IsActive: true}, nil
		},
	}
	roleRepo := &fakeRoleRepo{
		findFirstRoleByUserID: func(_ context.Context, _ int64) (*entity.Role, error) {
			return nil, repository.ErrRoleNotFound
		},
	}
	tokenSvc := &fakeTokenService{
		validate: func(tokenString string) (*service.Claims, error) {
			require.Equal(t, "the-refresh-token", tokenString)

			claims := &service.Claims{Type: service.TokenTypeRefresh}
			claims.Subject = "7"

			return claims, nil
		},
	}

	svc := newAuthServiceForTest(userRepo, roleRepo, tokenSvc, &fakeGoogleVerifier{}, &fakeTxManager{})

	output, err := svc.Authenticate(ctx, &usecase.AuthenticateInput{
		AuthType: usecase.AuthTypeRefresh,
		Token:    "the-refresh-token",
	})
	require.NoError(t, err)
	assert.False(t, output.Failed())
	assert.Equal(t, "access-token", output.AccessToken)
	// No rotation: the client keeps the token it sent.
	assert.Equal(t, "the-refresh-token", output.RefreshToken)
	assert.Empty(t, output.RoleName)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	tokenSvc := &fakeTokenService{
		validate: func(_ string) (*service.Claims, error) {
			claims := &service.Claims{Type: service.TokenTypeAccess}
			claims.Subject = "7"

			return claims, nil
		},
	}

	svc := newAuthServiceForTest(&fakeUserRepo{}, &fakeRoleRepo{}, tokenSvc, &fakeGoogleVerifier{}, &fakeTxManager{})

	output, err := svc.Authenticate(context.Background(), &usecase.AuthenticateInput{
		AuthType: usecase.AuthTypeRefresh,
		Token:    "an-access-token",
	})
	require.NoError(t, err)
	assert.True(t, output.Failed())
}
