package model

import "time"

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	UserID            int64  `gorm:"not null;index"`
	StoreID           int64  `gorm:"not null;index"`
	Status            string `gorm:"type:varchar(32);not null"`
	Subtotal          float64
	ShippingFee       float64
	Discount          float64
	Tax               float64
	TotalAmount       float64
	ShippingAddressID *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null"`
	Quantity  int   `gorm:"not null"`
	UnitPrice float64
	Subtotal  float64
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PaymentModel mirrors the 'payments' table, one-to-one with orders.
type PaymentModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OrderID       int64  `gorm:"not null;unique"`
	Amount        float64
	Method        string `gorm:"type:varchar(32);not null"`
	Status        string `gorm:"type:varchar(32);not null"`
	TransactionID string `gorm:"type:varchar(128)"`
	PaidAt        *time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// DeliveryModel mirrors the 'deliveries' table, one-to-one with orders.
type DeliveryModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	OrderID        int64  `gorm:"not null;unique"`
	CourierName    string `gorm:"type:varchar(128)"`
	TrackingNumber string `gorm:"type:varchar(128)"`
	Status         string `gorm:"type:varchar(32);not null"`
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time
	DeliveryNote   string `gorm:"type:text"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
