package usecase

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// CartItemInput adds a product to the cart or replaces its quantity.
type CartItemInput struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// CartUsecase manages the authenticated user's cart and wishlist.
type CartUsecase interface {
	AddToCart(ctx context.Context, userID int64, input *CartItemInput) (*entity.CartItem, error)
	ListCart(ctx context.Context, userID int64) ([]*entity.CartItem, error)
	RemoveFromCart(ctx context.Context, userID int64, productID int64) error
	ClearCart(ctx context.Context, userID int64) error

	AddToWishlist(ctx context.Context, userID int64, productID int64) (*entity.WishlistItem, error)
	ListWishlist(ctx context.Context, userID int64) ([]*entity.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID int64, productID int64) error
}
