package impl

import (
	"context"
	"testing"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(userRepo *fakeUserRepo) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   &fakeHasher{},
		Logger:   newDiscardLogger(),
	})
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	username := "amina"

	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, Username: "old-name", ProfilePic: "https://cdn.example.com/a.jpg"}, nil
		},
		update: func(ctx context.Context, user *entity.User) error {
			return nil
		},
	}
	service := newUserServiceForTest(userRepo)

	user, err := service.UpdateProfile(context.Background(), 42, &usecase.UpdateProfileInput{Username: &username})
	require.NoError(t, err)

	assert.Equal(t, "amina", user.Username)
	// Unset fields keep their old values.
	assert.Equal(t, "https://cdn.example.com/a.jpg", user.ProfilePic)
}

func TestUserService_ChangePassword(t *testing.T) {
	var saved *entity.User

	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, PasswordHash: "hashed:old-secret"}, nil
		},
		update: func(ctx context.Context, user *entity.User) error {
			saved = user

			return nil
		},
	}
	service := newUserServiceForTest(userRepo)

	err := service.ChangePassword(context.Background(), 42, &usecase.ChangePasswordInput{
		OldPassword: "old-secret",
		NewPassword: "new-secret-123",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "hashed:new-secret-123", saved.PasswordHash)
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, PasswordHash: "hashed:old-secret"}, nil
		},
	}
	service := newUserServiceForTest(userRepo)

	err := service.ChangePassword(context.Background(), 42, &usecase.ChangePasswordInput{
		OldPassword: "guess",
		NewPassword: "new-secret-123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id int64) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	service := newUserServiceForTest(userRepo)

	user, err := service.GetProfile(context.Background(), 42)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
