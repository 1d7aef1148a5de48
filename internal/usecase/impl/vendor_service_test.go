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

func newVendorServiceForTest(vendorRepo *fakeVendorRepo, userRepo *fakeUserRepo) (usecase.VendorUsecase, *fakeTxManager) {
	tx := &fakeTxManager{factory: &fakeRepoFactory{
		vendorRepo: vendorRepo,
		userRepo:   userRepo,
	}}

	return NewVendorService(VendorServiceParams{
		TxManager:  tx,
		VendorRepo: vendorRepo,
		UserRepo:   userRepo,
		Logger:     newDiscardLogger(),
	}), tx
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Mama Nia's Kitchen", "mama-nia-s-kitchen"},
		{"  Spices & Herbs  ", "spices-herbs"},
		{"ALL-CAPS STORE", "all-caps-store"},
		{"store 24/7", "store-24-7"},
		{"---", ""},
		{"Déjà Vu", "d-j-vu"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.input), "slugify(%q)", tc.input)
	}
}

func TestVendorService_RegisterVendor(t *testing.T) {
	var savedUser *entity.User

	vendorRepo := &fakeVendorRepo{
		findVendorByUserID: func(ctx context.Context, userID int64) (*entity.Vendor, error) {
			return nil, repository.ErrVendorNotFound
		},
		createVendor: func(ctx context.Context, vendor *entity.Vendor) error {
			vendor.ID = 11

			return nil
		},
	}
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id int64) (*entity.User, error) {
			return &entity.User{ID: id, Email: "amina@example.com"}, nil
		},
		update: func(ctx context.Context, user *entity.User) error {
			savedUser = user

			return nil
		},
	}
	service, tx := newVendorServiceForTest(vendorRepo, userRepo)

	vendor, err := service.RegisterVendor(context.Background(), 42, &usecase.RegisterVendorInput{
		BusinessName:  "Soko Traders",
		BusinessEmail: "biz@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.executed)
	assert.EqualValues(t, 11, vendor.ID)
	assert.EqualValues(t, 42, vendor.UserID)
	require.NotNil(t, savedUser)
	assert.True(t, savedUser.IsVendor)
}

func TestVendorService_RegisterVendor_AlreadyVendor(t *testing.T) {
	vendorRepo := &fakeVendorRepo{
		findVendorByUserID: func(ctx context.Context, userID int64) (*entity.Vendor, error) {
			return &entity.Vendor{ID: 1, UserID: userID}, nil
		},
	}
	service, _ := newVendorServiceForTest(vendorRepo, &fakeUserRepo{})

	vendor, err := service.RegisterVendor(context.Background(), 42, &usecase.RegisterVendorInput{
		BusinessName: "Soko Traders",
	})

	assert.Nil(t, vendor)
	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_CreateStore(t *testing.T) {
	var created *entity.Store

	vendorRepo := &fakeVendorRepo{
		findVendorByUserID: func(ctx context.Context, userID int64) (*entity.Vendor, error) {
			return &entity.Vendor{ID: 3, UserID: userID}, nil
		},
		findStoreBySlug: func(ctx context.Context, slug string) (*entity.Store, error) {
			return nil, repository.ErrStoreNotFound
		},
		createStore: func(ctx context.Context, store *entity.Store) error {
			store.ID = 21
			created = store

			return nil
		},
	}
	service, _ := newVendorServiceForTest(vendorRepo, &fakeUserRepo{})

	store, err := service.CreateStore(context.Background(), 42, &usecase.StoreInput{
		Name:        "Mama Nia's Kitchen",
		Description: "Home-cooked sauces",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.EqualValues(t, 3, store.VendorID)
	assert.Equal(t, "mama-nia-s-kitchen", store.Slug)
}

func TestVendorService_CreateStore_TakenSlugGetsSuffix(t *testing.T) {
	vendorRepo := &fakeVendorRepo{
		findVendorByUserID: func(ctx context.Context, userID int64) (*entity.Vendor, error) {
			return &entity.Vendor{ID: 3, UserID: userID}, nil
		},
		findStoreBySlug: func(ctx context.Context, slug string) (*entity.Store, error) {
			return &entity.Store{ID: 1, Slug: slug}, nil
		},
		createStore: func(ctx context.Context, store *entity.Store) error {
			return nil
		},
	}
	service, _ := newVendorServiceForTest(vendorRepo, &fakeUserRepo{})

	store, err := service.CreateStore(context.Background(), 42, &usecase.StoreInput{Name: "Soko Store"})
	require.NoError(t, err)

	assert.Regexp(t, `^soko-store-[0-9a-f]{8}$`, store.Slug)
}

func TestVendorService_CreateStore_RequiresVendorAccount(t *testing.T) {
	vendorRepo := &fakeVendorRepo{
		findVendorByUserID: func(ctx context.Context, userID int64) (*entity.Vendor, error) {
			return nil, repository.ErrVendorNotFound
		},
	}
	service, _ := newVendorServiceForTest(vendorRepo, &fakeUserRepo{})

	store, err := service.CreateStore(context.Background(), 42, &usecase.StoreInput{Name: "Soko Store"})

	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrNotVendor)
}

func TestVendorService_UpdateStore_OwnershipEnforced(t *testing.T) {
	vendorRepo := &fakeVendorRepo{
		findVendorByUserID: func(ctx context.Context, userID int64) (*entity.Vendor, error) {
			return &entity.Vendor{ID: 3, UserID: userID}, nil
		},
		findStoreByID: func(ctx context.Context, id int64) (*entity.Store, error) {
			return &entity.Store{ID: id, VendorID: 8}, nil
		},
	}
	service, _ := newVendorServiceForTest(vendorRepo, &fakeUserRepo{})

	store, err := service.UpdateStore(context.Background(), 42, 5, &usecase.StoreInput{Name: "Hijacked"})

	assert.Nil(t, store)
	assert.ErrorIs(t, err, domainerrors.ErrStoreOwnershipViolation)
}

func TestVendorService_UpdateVendor_PartialFields(t *testing.T) {
	bio := "Importer of fine fabrics"

	vendorRepo := &fakeVendorRepo{
		findVendorByUserID: func(ctx context.Context, userID int64) (*entity.Vendor, error) {
			return &entity.Vendor{ID: 3, UserID: userID, BusinessName: "Soko Traders", PhoneNumber: "+254700000000"}, nil
		},
		updateVendor: func(ctx context.Context, vendor *entity.Vendor) error {
			return nil
		},
	}
	service, _ := newVendorServiceForTest(vendorRepo, &fakeUserRepo{})

	vendor, err := service.UpdateVendor(context.Background(), 42, &usecase.UpdateVendorInput{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, bio, vendor.Bio)
	// Unset fields keep their old values.
	assert.Equal(t, "Soko Traders", vendor.BusinessName)
	assert.Equal(t, "+254700000000", vendor.PhoneNumber)
}
