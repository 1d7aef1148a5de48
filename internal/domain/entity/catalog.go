package entity

import "time"

// Product belongs to a store and a category. Slugs are unique.
type Product struct {
	ID            int64
	StoreID       int64
	CategoryID    *int64 // nil for uncategorized products
	Name          string
	Slug          string
	Description   string
	Price         float64
	DiscountPrice *float64 // nil when no discount applies
	Stock         int
	Rating        float64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Images  []*ProductImage
	Reviews []*Review
}

// Category groups products. Optional ParentID forms a tree.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	ParentID    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductImage is one image attached to a product; at most one is the main image.
type ProductImage struct {
	ID        int64
	ProductID int64
	ImageURL  string
	IsMain    bool
	CreatedAt time.Time
}

// Review is a user's rating (1-5) and comment on a product.
type Review struct {
	ID        int64
	UserID    int64
	ProductID int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}
