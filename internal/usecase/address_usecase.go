package usecase

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// AddressInput is the payload for creating or replacing a shipping address.
type AddressInput struct {
	FullName    string  `json:"full_name" validate:"required,max=128"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=32"`
	Street      string  `json:"street" validate:"required,max=256"`
	City        string  `json:"city" validate:"required,max=128"`
	State       string  `json:"state,omitempty" validate:"max=128"`
	Country     string  `json:"country" validate:"required,max=128"`
	PostalCode  string  `json:"postal_code,omitempty" validate:"max=32"`
	Latitude    float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	IsDefault   bool    `json:"is_default"`
}

// AddressUsecase manages the authenticated user's address book.
// At most one address per user is the default at any time.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, userID int64, input *AddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID int64) ([]*entity.Address, error)
	GetAddress(ctx context.Context, userID int64, addressID int64) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID int64, addressID int64, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID int64, addressID int64) error
	SetDefaultAddress(ctx context.Context, userID int64, addressID int64) error
}
