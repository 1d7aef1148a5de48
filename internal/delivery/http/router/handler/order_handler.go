package handler

import (
	"net/http"

	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/response"
	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves checkout and order lifecycle endpoints.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// PriceCart returns the current cart total without side effects.
func (h *OrderHandler) PriceCart(c echo.Context) error {
	pricing, err := h.uc.PriceCart(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCartPricingResponse(pricing), "")
}

// ConfirmCheckout prices the cart and hands back an opaque order reference.
func (h *OrderHandler) ConfirmCheckout(c echo.Context) error {
	confirmation, err := h.uc.ConfirmCheckout(c.Request().Context(), currentUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"order_ref": confirmation.Reference,
		"total":     confirmation.Total,
	}, "")
}

// PlaceOrder converts the cart into per-store orders in one transaction.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	orders, err := h.uc.PlaceOrder(c.Request().Context(), currentUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponses(orders), "Order placed")
}

// GetOrder returns an order the caller owns (or any order for admins).
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), currentUserID(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

// ListOwnOrders pages through the caller's orders, newest first.
func (h *OrderHandler) ListOwnOrders(c echo.Context) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 20)

	orders, err := h.uc.ListUserOrders(c.Request().Context(), currentUserID(c), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

// ListStoreOrders pages through a store's orders for its owning vendor.
func (h *OrderHandler) ListStoreOrders(c echo.Context) error {
	storeID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 20)

	orders, err := h.uc.ListStoreOrders(c.Request().Context(), currentUserID(c), storeID, offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "")
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. Restricted to the
// store owner and admins.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.UpdateOrderStatus(c.Request().Context(), currentUserID(c), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}
