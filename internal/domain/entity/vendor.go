package entity

import "time"

// Vendor is the selling profile of a user who has opted in to selling.
// One vendor per user; a vendor owns zero or more stores.
type Vendor struct {
	ID            int64
	UserID        int64
	BusinessName  string
	BusinessEmail string
	PhoneNumber   string
	Bio           string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Store is a storefront owned by a vendor. Slugs are unique.
type Store struct {
	ID          int64
	VendorID    int64
	StoreName   string
	Slug        string
	Description string
	LogoURL     string
	IsVerified  bool
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
