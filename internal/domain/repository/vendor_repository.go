package repository

import (
	"context"
	"errors"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// Domain-specific errors for vendor/store persistence.
var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrStoreNotFound  = errors.New("store not found")
)

// VendorRepository defines persistence operations for vendors and their stores.
type VendorRepository interface {
	// CreateVendor persists a new vendor profile.
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	// FindVendorByID retrieves a vendor by its unique ID.
	FindVendorByID(ctx context.Context, id int64) (*entity.Vendor, error)

	// FindVendorByUserID retrieves the vendor profile of a user.
	FindVendorByUserID(ctx context.Context, userID int64) (*entity.Vendor, error)

	// ListVendors retrieves vendors with offset/limit pagination.
	ListVendors(ctx context.Context, offset, limit int) ([]*entity.Vendor, error)

	// UpdateVendor modifies an existing vendor profile.
	UpdateVendor(ctx context.Context, vendor *entity.Vendor) error

	// CreateStore persists a new store for a vendor.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id int64) (*entity.Store, error)

	// FindStoreBySlug retrieves a store by its unique slug.
	FindStoreBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// ListStoresByVendor retrieves all stores owned by a vendor.
	ListStoresByVendor(ctx context.Context, vendorID int64) ([]*entity.Store, error)

	// ListStores retrieves stores with offset/limit pagination.
	ListStores(ctx context.Context, offset, limit int) ([]*entity.Store, error)

	// UpdateStore modifies an existing store.
	UpdateStore(ctx context.Context, store *entity.Store) error

	// DeleteStore removes a store by its ID.
	DeleteStore(ctx context.Context, id int64) error
}
