package repository

import (
	"context"
	"errors"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// ErrAddressNotFound is returned when an address is not found or is owned by
// another user.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address for a user.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address owned by the given user.
	FindAddressByID(ctx context.Context, userID, id int64) (*entity.Address, error)

	// FindAddressesByUser retrieves all addresses for a user.
	FindAddressesByUser(ctx context.Context, userID int64) ([]*entity.Address, error)

	// FindDefaultAddressByUser retrieves the user's default address.
	// Returns ErrAddressNotFound if no default address exists.
	FindDefaultAddressByUser(ctx context.Context, userID int64) (*entity.Address, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address owned by the given user.
	DeleteAddress(ctx context.Context, userID, id int64) error

	// ClearDefaultAddresses unsets IsDefault on every address of the user.
	// Callers run this and the subsequent set inside one transaction so at
	// most one default survives concurrent updates.
	ClearDefaultAddresses(ctx context.Context, userID int64) error
}
