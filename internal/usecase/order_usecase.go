package usecase

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// CartPricing summarizes the current cart before checkout.
type CartPricing struct {
	Subtotal    float64           `json:"subtotal"`
	ShippingFee float64           `json:"shipping_fee"`
	Tax         float64           `json:"tax"`
	Total       float64           `json:"total"`
	PerStore    map[int64]float64 `json:"per_store"`
}

// CheckoutConfirmation is an opaque reference the client echoes back when
// placing the order. It pins the priced total the user saw.
type CheckoutConfirmation struct {
	Reference string  `json:"reference"`
	Total     float64 `json:"total"`
}

// PlaceOrderInput finalizes checkout into one order per store.
type PlaceOrderInput struct {
	AddressID     *int64 `json:"address_id,omitempty"`
	Reference     string `json:"reference,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty" validate:"omitempty,oneof=credit_card mobile_money cash_on_delivery"`
}

// OrderUsecase covers checkout and order lifecycle.
type OrderUsecase interface {
	// PriceCart prices the user's cart without mutating anything.
	PriceCart(ctx context.Context, userID int64) (*CartPricing, error)
	// ConfirmCheckout prices the cart and hands back a reference for PlaceOrder.
	ConfirmCheckout(ctx context.Context, userID int64) (*CheckoutConfirmation, error)
	// PlaceOrder turns the cart into orders grouped by store, decrements
	// stock and clears the cart, all inside a single transaction.
	PlaceOrder(ctx context.Context, userID int64, input *PlaceOrderInput) ([]*entity.Order, error)

	GetOrder(ctx context.Context, userID int64, orderID int64) (*entity.Order, error)
	ListUserOrders(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error)
	ListStoreOrders(ctx context.Context, userID int64, storeID int64, offset, limit int) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, userID int64, orderID int64, status entity.OrderStatus) error
}
