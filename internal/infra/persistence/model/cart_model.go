package model

import "time"

// CartItemModel mirrors the 'cart_items' table. One row per user/product pair.
type CartItemModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null"`
	AddedAt   time.Time `gorm:"autoCreateTime"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// WishlistItemModel mirrors the 'wishlist_items' table.
type WishlistItemModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	AddedAt   time.Time `gorm:"autoCreateTime"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
