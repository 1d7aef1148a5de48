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

// vendorRepository implements the domain.VendorRepository interface using GORM.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// CreateVendor persists a new vendor profile.
func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVendorAlreadyExists.WrapMessage("vendor profile already exists for user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindVendorByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindVendorByID(ctx context.Context, id int64) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	err := repo.db.WithContext(ctx).First(&vendorM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by id")
	}

	return toVendorDomain(&vendorM), nil
}

// FindVendorByUserID retrieves the vendor profile of a user.
func (repo *vendorRepository) FindVendorByUserID(ctx context.Context, userID int64) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&vendorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by user id")
	}

	return toVendorDomain(&vendorM), nil
}

// ListVendors retrieves vendors with offset/limit pagination.
func (repo *vendorRepository) ListVendors(ctx context.Context, offset, limit int) ([]*entity.Vendor, error) {
	var models []model.VendorModel

	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(models))
	for i := range models {
		vendors = append(vendors, toVendorDomain(&models[i]))
	}

	return vendors, nil
}

// UpdateVendor modifies an existing vendor profile.
func (repo *vendorRepository) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Save(vendorM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update vendor")
	}

	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// CreateStore persists a new store for a vendor.
func (repo *vendorRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("store slug already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVendorNotFound.WrapMessage("store owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *vendorRepository) FindStoreByID(ctx context.Context, id int64) (*entity.Store, error) {
	var storeM model.StoreModel

	err := repo.db.WithContext(ctx).First(&storeM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindStoreBySlug retrieves a store by its unique slug.
func (repo *vendorRepository) FindStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	var storeM model.StoreModel

	err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by slug")
	}

	return toStoreDomain(&storeM), nil
}

// ListStoresByVendor retrieves all stores owned by a vendor.
func (repo *vendorRepository) ListStoresByVendor(ctx context.Context, vendorID int64) ([]*entity.Store, error) {
	var models []model.StoreModel

	err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores by vendor")
	}

	return toStoreDomainSlice(models), nil
}

// ListStores retrieves stores with offset/limit pagination.
func (repo *vendorRepository) ListStores(ctx context.Context, offset, limit int) ([]*entity.Store, error) {
	var models []model.StoreModel

	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return toStoreDomainSlice(models), nil
}

// UpdateStore modifies an existing store.
func (repo *vendorRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Save(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("store slug already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update store")
	}

	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// DeleteStore removes a store by its ID.
func (repo *vendorRepository) DeleteStore(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.StoreModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:            data.ID,
		UserID:        data.UserID,
		BusinessName:  data.BusinessName,
		BusinessEmail: data.BusinessEmail,
		PhoneNumber:   data.PhoneNumber,
		Bio:           data.Bio,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:            data.ID,
		UserID:        data.UserID,
		BusinessName:  data.BusinessName,
		BusinessEmail: data.BusinessEmail,
		PhoneNumber:   data.PhoneNumber,
		Bio:           data.Bio,
	}
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:          data.ID,
		VendorID:    data.VendorID,
		StoreName:   data.StoreName,
		Slug:        data.Slug,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		IsVerified:  data.IsVerified,
		Rating:      data.Rating,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:          data.ID,
		VendorID:    data.VendorID,
		StoreName:   data.StoreName,
		Slug:        data.Slug,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		IsVerified:  data.IsVerified,
		Rating:      data.Rating,
	}
}

func toStoreDomainSlice(models []model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(models))
	for i := range models {
		stores = append(stores, toStoreDomain(&models[i]))
	}

	return stores
}
