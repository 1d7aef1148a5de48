package postgres

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface using GORM.
// Every query is scoped by user ID, so one user can never touch another's rows.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for a user.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("address owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address owned by the given user.
func (repo *addressRepository) FindAddressByID(ctx context.Context, userID, id int64) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser retrieves all addresses for a user, default first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	var models []model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, id").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(models))
	for i := range models {
		addresses = append(addresses, toAddressDomain(&models[i]))
	}

	return addresses, nil
}

// FindDefaultAddressByUser retrieves the user's default address.
func (repo *addressRepository) FindDefaultAddressByUser(ctx context.Context, userID int64) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Save(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeleteAddress removes an address owned by the given user.
func (repo *addressRepository) DeleteAddress(ctx context.Context, userID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// ClearDefaultAddresses unsets IsDefault on every address of the user.
func (repo *addressRepository) ClearDefaultAddresses(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default addresses")
	}

	return nil
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:          data.ID,
		UserID:      data.UserID,
		FullName:    data.FullName,
		PhoneNumber: data.PhoneNumber,
		Street:      data.Street,
		City:        data.City,
		State:       data.State,
		Country:     data.Country,
		PostalCode:  data.PostalCode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsDefault:   data.IsDefault,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:          data.ID,
		UserID:      data.UserID,
		FullName:    data.FullName,
		PhoneNumber: data.PhoneNumber,
		Street:      data.Street,
		City:        data.City,
		State:       data.State,
		Country:     data.Country,
		PostalCode:  data.PostalCode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsDefault:   data.IsDefault,
	}
}
