package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/AZHIK/africa-soko-backend/internal/delivery/context"
	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager  repository.TransactionManager
	vendorRepo repository.VendorRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	VendorRepo repository.VendorRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		txManager:  params.TxManager,
		vendorRepo: params.VendorRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterVendor upgrades a user account into a vendor account. Creating the
// vendor record and flipping the user's vendor flag happen in one transaction.
func (srv *vendorService) RegisterVendor(ctx context.Context, userID int64, input *usecase.RegisterVendorInput) (*entity.Vendor, error) {
	var vendor *entity.Vendor

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.VendorRepo()
		userRepo := repoFactory.UserRepo()

		_, findErr := vendorRepo.FindVendorByUserID(ctx, userID)
		if findErr == nil {
			return domainerrors.ErrVendorAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrVendorNotFound) {
			return errors.Wrap(findErr, "failed to check existing vendor")
		}

		user, userErr := userRepo.FindByID(ctx, userID)
		if errors.Is(userErr, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if userErr != nil {
			return errors.Wrap(userErr, "failed to find user")
		}

		newVendor := &entity.Vendor{
			UserID:        userID,
			BusinessName:  input.BusinessName,
			BusinessEmail: input.BusinessEmail,
			PhoneNumber:   input.PhoneNumber,
			Bio:           input.Bio,
		}
		if createErr := vendorRepo.CreateVendor(ctx, newVendor); createErr != nil {
			return errors.Wrap(createErr, "failed to create vendor")
		}

		user.IsVendor = true
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to flag user as vendor")
		}

		vendor = newVendor

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrVendorAlreadyExists) || errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to register vendor", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute vendor registration transaction")
	}

	srv.log(ctx).Info("Vendor registered", slog.Int64("userID", userID), slog.Int64("vendorID", vendor.ID))

	return vendor, nil
}

// GetVendor loads a vendor by ID.
func (srv *vendorService) GetVendor(ctx context.Context, vendorID int64) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindVendorByID(ctx, vendorID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrVendorNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return vendor, nil
}

// GetVendorByUser loads the vendor profile owned by a user.
func (srv *vendorService) GetVendorByUser(ctx context.Context, userID int64) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrVendorNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	return vendor, nil
}

// ListVendors pages through all vendors.
func (srv *vendorService) ListVendors(ctx context.Context, offset, limit int) ([]*entity.Vendor, error) {
	if limit <= 0 {
		limit = 20
	}

	vendors, err := srv.vendorRepo.ListVendors(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// UpdateVendor applies the provided fields to the caller's vendor profile.
func (srv *vendorService) UpdateVendor(ctx context.Context, userID int64, input *usecase.UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrNotVendor
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	if input.BusinessName != nil {
		vendor.BusinessName = *input.BusinessName
	}
	if input.PhoneNumber != nil {
		vendor.PhoneNumber = *input.PhoneNumber
	}
	if input.Bio != nil {
		vendor.Bio = *input.Bio
	}

	if err := srv.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to update vendor")
	}

	return vendor, nil
}

// CreateStore opens a new storefront for the caller's vendor account.
func (srv *vendorService) CreateStore(ctx context.Context, userID int64, input *usecase.StoreInput) (*entity.Store, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrNotVendor
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	slug, err := srv.uniqueStoreSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	store := &entity.Store{
		VendorID:    vendor.ID,
		StoreName:   input.Name,
		Slug:        slug,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}
	if err := srv.vendorRepo.CreateStore(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Int64("vendorID", vendor.ID), slog.Int64("storeID", store.ID))

	return store, nil
}

// GetStore loads a store by ID.
func (srv *vendorService) GetStore(ctx context.Context, storeID int64) (*entity.Store, error) {
	store, err := srv.vendorRepo.FindStoreByID(ctx, storeID)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil, domainerrors.ErrStoreNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// GetStoreBySlug loads a store by its URL slug.
func (srv *vendorService) GetStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	store, err := srv.vendorRepo.FindStoreBySlug(ctx, slug)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil, domainerrors.ErrStoreNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store by slug")
	}

	return store, nil
}

// ListStores pages through all active stores.
func (srv *vendorService) ListStores(ctx context.Context, offset, limit int) ([]*entity.Store, error) {
	if limit <= 0 {
		limit = 20
	}

	stores, err := srv.vendorRepo.ListStores(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// ListOwnStores returns the stores of the caller's vendor account.
func (srv *vendorService) ListOwnStores(ctx context.Context, userID int64) ([]*entity.Store, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrNotVendor
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	stores, err := srv.vendorRepo.ListStoresByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor stores")
	}

	return stores, nil
}

// UpdateStore applies the provided fields to a store the caller owns.
func (srv *vendorService) UpdateStore(ctx context.Context, userID int64, storeID int64, input *usecase.StoreInput) (*entity.Store, error) {
	store, err := srv.ownedStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}

	store.StoreName = input.Name
	store.Description = input.Description
	if input.LogoURL != "" {
		store.LogoURL = input.LogoURL
	}

	if err := srv.vendorRepo.UpdateStore(ctx, store); err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	return store, nil
}

// DeleteStore removes a store the caller owns.
func (srv *vendorService) DeleteStore(ctx context.Context, userID int64, storeID int64) error {
	if _, err := srv.ownedStore(ctx, userID, storeID); err != nil {
		return err
	}

	if err := srv.vendorRepo.DeleteStore(ctx, storeID); err != nil {
		return errors.Wrap(err, "failed to delete store")
	}

	srv.log(ctx).Info("Store deleted", slog.Int64("storeID", storeID))

	return nil
}

// ownedStore loads a store and verifies the caller's vendor account owns it.
func (srv *vendorService) ownedStore(ctx context.Context, userID int64, storeID int64) (*entity.Store, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return nil, domainerrors.ErrNotVendor
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	store, err := srv.vendorRepo.FindStoreByID(ctx, storeID)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil, domainerrors.ErrStoreNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store")
	}

	if store.VendorID != vendor.ID {
		return nil, domainerrors.ErrStoreOwnershipViolation
	}

	return store, nil
}

// uniqueStoreSlug derives a slug from the store name, appending a short
// random suffix when the plain slug is already taken.
func (srv *vendorService) uniqueStoreSlug(ctx context.Context, name string) (string, error) {
	slug := slugify(name)

	_, err := srv.vendorRepo.FindStoreBySlug(ctx, slug)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return slug, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to check store slug")
	}

	return slug + "-" + uuid.NewString()[:8], nil
}

// slugify lowercases a name and collapses non-alphanumeric runs into hyphens.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
