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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart puts a product in the cart. Adding a product already in the cart
// replaces its quantity rather than incrementing it.
func (srv *cartService) AddToCart(ctx context.Context, userID int64, input *usecase.CartItemInput) (*entity.CartItem, error) {
	product, err := srv.activeProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  input.Quantity,
	}
	if err := srv.cartRepo.UpsertCartItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to upsert cart item")
	}
	item.Product = product

	srv.log(ctx).Debug("Cart item upserted", slog.Int64("userID", userID), slog.Int64("productID", product.ID))

	return item, nil
}

// ListCart returns the user's cart with product data attached.
func (srv *cartService) ListCart(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.FindCartItemsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return items, nil
}

// RemoveFromCart drops one product from the cart.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID int64, productID int64) error {
	err := srv.cartRepo.DeleteCartItem(ctx, userID, productID)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return domainerrors.ErrCartItemNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}

// ClearCart empties the user's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID int64) error {
	if err := srv.cartRepo.ClearCart(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// AddToWishlist saves a product for later. Re-adding is a no-op.
func (srv *cartService) AddToWishlist(ctx context.Context, userID int64, productID int64) (*entity.WishlistItem, error) {
	product, err := srv.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ProductID: product.ID,
	}
	if err := srv.cartRepo.AddWishlistItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add wishlist item")
	}
	item.Product = product

	return item, nil
}

// ListWishlist returns the user's saved products.
func (srv *cartService) ListWishlist(ctx context.Context, userID int64) ([]*entity.WishlistItem, error) {
	items, err := srv.cartRepo.FindWishlistItemsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items")
	}

	return items, nil
}

// RemoveFromWishlist drops a product from the wishlist.
func (srv *cartService) RemoveFromWishlist(ctx context.Context, userID int64, productID int64) error {
	err := srv.cartRepo.DeleteWishlistItem(ctx, userID, productID)
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return domainerrors.ErrCartItemNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete wishlist item")
	}

	return nil
}

// activeProduct loads a product and rejects inactive listings.
func (srv *cartService) activeProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}
