package handler

import (
	"net/http"

	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the authenticated user's cart and wishlist.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// AddToCart puts a product in the cart, replacing any existing quantity.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var input usecase.CartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.AddToCart(c.Request().Context(), currentUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCartItemResponse(item), "Added to cart")
}

// ListCart returns the caller's cart with product details.
func (h *CartHandler) ListCart(c echo.Context) error {
	items, err := h.uc.ListCart(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartItemResponses(items), "")
}

// RemoveFromCart drops a product from the cart.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), currentUserID(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from cart")
}

// ClearCart empties the caller's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), currentUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// AddToWishlist bookmarks a product. Idempotent.
func (h *CartHandler) AddToWishlist(c echo.Context) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	item, err := h.uc.AddToWishlist(c.Request().Context(), currentUserID(c), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item.ID, "Added to wishlist")
}

// ListWishlist returns the caller's wishlist with product details.
func (h *CartHandler) ListWishlist(c echo.Context) error {
	items, err := h.uc.ListWishlist(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistItemResponses(items), "")
}

// RemoveFromWishlist drops a product from the wishlist.
func (h *CartHandler) RemoveFromWishlist(c echo.Context) error {
	productID, err := paramID(c, "productId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromWishlist(c.Request().Context(), currentUserID(c), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Removed from wishlist")
}
