package usecase

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// UpdateProfileInput carries the mutable fields of a user profile.
// Nil pointers leave the corresponding field untouched.
type UpdateProfileInput struct {
	Username   *string `json:"username,omitempty" validate:"omitempty,min=2,max=64"`
	ProfilePic *string `json:"profile_pic,omitempty" validate:"omitempty,url"`
}

// ChangePasswordInput carries a password change request for the current user.
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserUsecase defines profile operations for the authenticated user.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID int64, input *ChangePasswordInput) error
}
