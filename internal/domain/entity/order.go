package entity

import "time"

// OrderStatus is the lifecycle state of an order.
// It progresses pending -> paid -> processing -> shipped -> delivered,
// or moves to cancelled.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order belongs to a user and exactly one store. A checkout spanning several
// stores produces one order per store; an order never spans stores.
type Order struct {
	ID                int64
	UserID            int64
	StoreID           int64
	Status            OrderStatus
	Subtotal          float64
	ShippingFee       float64
	Discount          float64
	Tax               float64
	TotalAmount       float64
	ShippingAddressID *int64 // nil when the user has no default address
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []*OrderItem
}

// OrderItem freezes the unit price and line subtotal at order time,
// decoupled from the live product price.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// PaymentStatus is the state of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethod enumerates the supported payment instruments.
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodMobileMoney    PaymentMethod = "mobile_money"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// Payment is one-to-one with an order.
type Payment struct {
	ID            int64
	OrderID       int64
	Amount        float64
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string
	PaidAt        *time.Time
	CreatedAt     time.Time
}

// DeliveryStatus is the state of a shipment.
// It progresses pending -> dispatched -> in_transit -> delivered, or failed.
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusDispatched DeliveryStatus = "dispatched"
	DeliveryStatusInTransit  DeliveryStatus = "in_transit"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusFailed     DeliveryStatus = "failed"
)

// Delivery is the shipment record, one-to-one with an order.
type Delivery struct {
	ID             int64
	OrderID        int64
	CourierName    string
	TrackingNumber string
	Status         DeliveryStatus
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time
	DeliveryNote   string
	CreatedAt      time.Time
}
