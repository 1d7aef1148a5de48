package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/AZHIK/africa-soko-backend/internal/delivery/context"
	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress stores a new address. When the address is marked default, the
// previous default is cleared in the same transaction so the invariant of at
// most one default per user holds even under concurrent writes.
func (srv *addressService) CreateAddress(ctx context.Context, userID int64, input *usecase.AddressInput) (*entity.Address, error) {
	address := addressFromInput(userID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if address.IsDefault {
			if err := addressRepo.ClearDefaultAddresses(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default addresses")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create address transaction")
	}

	return address, nil
}

// ListAddresses returns the user's address book.
func (srv *addressService) ListAddresses(ctx context.Context, userID int64) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetAddress loads one of the user's addresses. Another user's address is
// indistinguishable from a missing one.
func (srv *addressService) GetAddress(ctx context.Context, userID int64, addressID int64) (*entity.Address, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, userID, addressID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, domainerrors.ErrAddressNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}

// UpdateAddress replaces the fields of one of the user's addresses.
func (srv *addressService) UpdateAddress(ctx context.Context, userID int64, addressID int64, input *usecase.AddressInput) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, findErr := addressRepo.FindAddressByID(ctx, userID, addressID)
		if errors.Is(findErr, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find address")
		}

		if input.IsDefault && !address.IsDefault {
			if err := addressRepo.ClearDefaultAddresses(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default addresses")
			}
		}

		applyAddressInput(address, input)

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to execute update address transaction")
	}

	return updated, nil
}

// DeleteAddress removes one of the user's addresses.
func (srv *addressService) DeleteAddress(ctx context.Context, userID int64, addressID int64) error {
	err := srv.addressRepo.DeleteAddress(ctx, userID, addressID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return domainerrors.ErrAddressNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// SetDefaultAddress marks one address as default, clearing any previous
// default inside the same transaction.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID int64, addressID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, findErr := addressRepo.FindAddressByID(ctx, userID, addressID)
		if errors.Is(findErr, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find address")
		}

		if err := addressRepo.ClearDefaultAddresses(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear default addresses")
		}

		address.IsDefault = true
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to mark address default")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}
		srv.log(ctx).Error("Failed to set default address", slog.Int64("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute set default address transaction")
	}

	return nil
}

func addressFromInput(userID int64, input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		UserID:      userID,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Street:      input.Street,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		PostalCode:  input.PostalCode,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsDefault:   input.IsDefault,
	}
}

func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	address.FullName = input.FullName
	address.PhoneNumber = input.PhoneNumber
	address.Street = input.Street
	address.City = input.City
	address.State = input.State
	address.Country = input.Country
	address.PostalCode = input.PostalCode
	address.Latitude = input.Latitude
	address.Longitude = input.Longitude
	address.IsDefault = input.IsDefault
}
