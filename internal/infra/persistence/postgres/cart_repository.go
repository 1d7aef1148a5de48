package postgres

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// UpsertCartItem adds the product to the user's cart, or replaces the quantity
// when the product is already present.
func (repo *cartRepository) UpsertCartItem(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": item.Quantity}),
		}).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	item.ID = itemM.ID
	item.AddedAt = itemM.AddedAt

	return nil
}

// FindCartItemsByUser retrieves all cart items of a user, with products.
func (repo *cartRepository) FindCartItemsByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	var models []model.CartItemModel

	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by user")
	}

	items := make([]*entity.CartItem, 0, len(models))
	for i := range models {
		items = append(items, toCartItemDomain(&models[i]))
	}

	return items, nil
}

// DeleteCartItem removes a product from the user's cart.
func (repo *cartRepository) DeleteCartItem(ctx context.Context, userID, productID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearCart removes all cart items of a user.
func (repo *cartRepository) ClearCart(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// AddWishlistItem adds a product to the user's wishlist. Adding the same
// product twice is a no-op.
func (repo *cartRepository) AddWishlistItem(ctx context.Context, item *entity.WishlistItem) error {
	itemM := &model.WishlistItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("wishlist product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	item.ID = itemM.ID
	item.AddedAt = itemM.AddedAt

	return nil
}

// FindWishlistItemsByUser retrieves all wishlist items of a user, with products.
func (repo *cartRepository) FindWishlistItemsByUser(ctx context.Context, userID int64) ([]*entity.WishlistItem, error) {
	var models []model.WishlistItemModel

	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist items by user")
	}

	items := make([]*entity.WishlistItem, 0, len(models))
	for i := range models {
		items = append(items, toWishlistItemDomain(&models[i]))
	}

	return items, nil
}

// DeleteWishlistItem removes a product from the user's wishlist.
func (repo *cartRepository) DeleteWishlistItem(ctx context.Context, userID, productID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		AddedAt:   data.AddedAt,
		Product:   toProductDomain(data.Product),
	}
}

func toWishlistItemDomain(data *model.WishlistItemModel) *entity.WishlistItem {
	if data == nil {
		return nil
	}

	return &entity.WishlistItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		AddedAt:   data.AddedAt,
		Product:   toProductDomain(data.Product),
	}
}
