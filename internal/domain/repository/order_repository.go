package repository

import (
	"context"
	"errors"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order lookup matches nothing.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders and their items.
type OrderRepository interface {
	// CreateOrder persists a new order and fills in its generated ID.
	// Items are persisted separately so the order ID exists first.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderItems persists the line items of an order.
	CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id int64) (*entity.Order, error)

	// ListOrdersByUser retrieves orders placed by a user, newest first.
	ListOrdersByUser(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error)

	// ListOrdersByStore retrieves orders of a store, newest first.
	ListOrdersByStore(ctx context.Context, storeID int64, offset, limit int) ([]*entity.Order, error)

	// UpdateOrderStatus transitions an order to the given status.
	UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) error

	// CreatePayment persists the payment record of an order.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// CreateDelivery persists the shipment record of an order.
	CreateDelivery(ctx context.Context, delivery *entity.Delivery) error
}
