package model

import "time"

// VendorModel mirrors the 'vendors' table. One vendor per user.
type VendorModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"not null;unique"`
	BusinessName  string `gorm:"type:varchar(128);not null"`
	BusinessEmail string `gorm:"type:varchar(255);not null"`
	PhoneNumber   string `gorm:"type:varchar(32)"`
	Bio           string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Stores []StoreModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	VendorID    int64  `gorm:"not null;index"`
	StoreName   string `gorm:"type:varchar(128);not null"`
	Slug        string `gorm:"type:varchar(160);unique;not null"`
	Description string `gorm:"type:text"`
	LogoURL     string `gorm:"type:varchar(512)"`
	IsVerified  bool   `gorm:"not null;default:false"`
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
