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

func newAddressServiceForTest(addressRepo *fakeAddressRepo) (usecase.AddressUsecase, *fakeTxManager) {
	tx := &fakeTxManager{factory: &fakeRepoFactory{addressRepo: addressRepo}}

	return NewAddressService(AddressServiceParams{
		TxManager:   tx,
		AddressRepo: addressRepo,
		Logger:      newDiscardLogger(),
	}), tx
}

func TestAddressService_CreateAddress_ClearsPreviousDefault(t *testing.T) {
	var cleared, created bool

	addressRepo := &fakeAddressRepo{
		clearDefaultAddresses: func(ctx context.Context, userID int64) error {
			cleared = true

			return nil
		},
		createAddress: func(ctx context.Context, address *entity.Address) error {
			// The old default must be gone before the new one lands.
			require.True(t, cleared)
			created = true
			address.ID = 5

			return nil
		},
	}
	service, tx := newAddressServiceForTest(addressRepo)

	address, err := service.CreateAddress(context.Background(), 42, &usecase.AddressInput{
		FullName:  "Amina Diallo",
		Street:    "12 Marina Rd",
		City:      "Lagos",
		Country:   "NG",
		IsDefault: true,
	})
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, 1, tx.executed)
	assert.EqualValues(t, 5, address.ID)
	assert.EqualValues(t, 42, address.UserID)
}

func TestAddressService_CreateAddress_NonDefaultSkipsClear(t *testing.T) {
	addressRepo := &fakeAddressRepo{
		createAddress: func(ctx context.Context, address *entity.Address) error {
			address.ID = 6

			return nil
		},
	}
	service, _ := newAddressServiceForTest(addressRepo)

	// clearDefaultAddresses is unset: a call would panic the test.
	address, err := service.CreateAddress(context.Background(), 42, &usecase.AddressInput{
		FullName: "Amina Diallo",
		Street:   "12 Marina Rd",
		City:     "Lagos",
		Country:  "NG",
	})
	require.NoError(t, err)
	assert.False(t, address.IsDefault)
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	var cleared bool
	var saved *entity.Address

	addressRepo := &fakeAddressRepo{
		findAddressByID: func(ctx context.Context, userID, id int64) (*entity.Address, error) {
			return &entity.Address{ID: id, UserID: userID}, nil
		},
		clearDefaultAddresses: func(ctx context.Context, userID int64) error {
			cleared = true

			return nil
		},
		updateAddress: func(ctx context.Context, address *entity.Address) error {
			require.True(t, cleared)
			saved = address

			return nil
		},
	}
	service, tx := newAddressServiceForTest(addressRepo)

	err := service.SetDefaultAddress(context.Background(), 42, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, tx.executed)
	require.NotNil(t, saved)
	assert.True(t, saved.IsDefault)
	assert.EqualValues(t, 3, saved.ID)
}

func TestAddressService_SetDefaultAddress_NotFound(t *testing.T) {
	addressRepo := &fakeAddressRepo{
		findAddressByID: func(ctx context.Context, userID, id int64) (*entity.Address, error) {
			return nil, repository.ErrAddressNotFound
		},
	}
	service, _ := newAddressServiceForTest(addressRepo)

	err := service.SetDefaultAddress(context.Background(), 42, 3)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_UpdateAddress_PromotionClearsDefault(t *testing.T) {
	var cleared bool

	addressRepo := &fakeAddressRepo{
		findAddressByID: func(ctx context.Context, userID, id int64) (*entity.Address, error) {
			return &entity.Address{ID: id, UserID: userID, City: "Lagos"}, nil
		},
		clearDefaultAddresses: func(ctx context.Context, userID int64) error {
			cleared = true

			return nil
		},
		updateAddress: func(ctx context.Context, address *entity.Address) error {
			return nil
		},
	}
	service, _ := newAddressServiceForTest(addressRepo)

	updated, err := service.UpdateAddress(context.Background(), 42, 3, &usecase.AddressInput{
		FullName:  "Amina Diallo",
		Street:    "1 Ring Rd",
		City:      "Accra",
		Country:   "GH",
		IsDefault: true,
	})
	require.NoError(t, err)

	assert.True(t, cleared)
	assert.Equal(t, "Accra", updated.City)
	assert.True(t, updated.IsDefault)
}

func TestAddressService_GetAddress_ForeignAddressLooksMissing(t *testing.T) {
	addressRepo := &fakeAddressRepo{
		findAddressByID: func(ctx context.Context, userID, id int64) (*entity.Address, error) {
			return nil, repository.ErrAddressNotFound
		},
	}
	service, _ := newAddressServiceForTest(addressRepo)

	address, err := service.GetAddress(context.Background(), 42, 99)

	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
