package usecase

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// RegisterVendorInput upgrades a user account into a vendor account.
type RegisterVendorInput struct {
	BusinessName  string `json:"business_name" validate:"required,max=128"`
	BusinessEmail string `json:"business_email" validate:"required,email"`
	PhoneNumber   string `json:"phone_number,omitempty" validate:"max=32"`
	Bio           string `json:"bio,omitempty" validate:"max=1024"`
}

// UpdateVendorInput carries the mutable vendor fields. Nil means unchanged.
type UpdateVendorInput struct {
	BusinessName *string `json:"business_name,omitempty" validate:"omitempty,max=128"`
	PhoneNumber  *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=1024"`
}

// StoreInput is the payload for creating or updating a storefront.
type StoreInput struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description,omitempty" validate:"max=2048"`
	LogoURL     string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// VendorUsecase manages vendor accounts and their storefronts.
type VendorUsecase interface {
	RegisterVendor(ctx context.Context, userID int64, input *RegisterVendorInput) (*entity.Vendor, error)
	GetVendor(ctx context.Context, vendorID int64) (*entity.Vendor, error)
	GetVendorByUser(ctx context.Context, userID int64) (*entity.Vendor, error)
	ListVendors(ctx context.Context, offset, limit int) ([]*entity.Vendor, error)
	UpdateVendor(ctx context.Context, userID int64, input *UpdateVendorInput) (*entity.Vendor, error)

	CreateStore(ctx context.Context, userID int64, input *StoreInput) (*entity.Store, error)
	GetStore(ctx context.Context, storeID int64) (*entity.Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error)
	ListStores(ctx context.Context, offset, limit int) ([]*entity.Store, error)
	ListOwnStores(ctx context.Context, userID int64) ([]*entity.Store, error)
	UpdateStore(ctx context.Context, userID int64, storeID int64, input *StoreInput) (*entity.Store, error)
	DeleteStore(ctx context.Context, userID int64, storeID int64) error
}
