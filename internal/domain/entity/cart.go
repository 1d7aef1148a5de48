package entity

import "time"

// CartItem is a per-user association to a product with a quantity.
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	AddedAt   time.Time

	Product *Product
}

// WishlistItem is a per-user association to a product without a quantity.
type WishlistItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	AddedAt   time.Time

	Product *Product
}
