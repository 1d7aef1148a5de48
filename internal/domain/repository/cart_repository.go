package repository

import (
	"context"
	"errors"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// ErrCartItemNotFound covers both cart and wishlist lookups.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines persistence operations for cart and wishlist items.
type CartRepository interface {
	// UpsertCartItem adds the product to the user's cart, or adjusts the
	// quantity when the product is already present.
	UpsertCartItem(ctx context.Context, item *entity.CartItem) error

	// FindCartItemsByUser retrieves all cart items of a user.
	FindCartItemsByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error)

	// DeleteCartItem removes a product from the user's cart.
	DeleteCartItem(ctx context.Context, userID, productID int64) error

	// ClearCart removes all cart items of a user.
	ClearCart(ctx context.Context, userID int64) error

	// AddWishlistItem adds a product to the user's wishlist, idempotently.
	AddWishlistItem(ctx context.Context, item *entity.WishlistItem) error

	// FindWishlistItemsByUser retrieves all wishlist items of a user.
	FindWishlistItemsByUser(ctx context.Context, userID int64) ([]*entity.WishlistItem, error)

	// DeleteWishlistItem removes a product from the user's wishlist.
	DeleteWishlistItem(ctx context.Context, userID, productID int64) error
}
