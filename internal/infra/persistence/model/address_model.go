package model

import "time"

// AddressModel mirrors the 'addresses' table. The partial unique index keeps
// at most one default address per user at the database level.
type AddressModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	FullName    string `gorm:"type:varchar(128);not null"`
	PhoneNumber string `gorm:"type:varchar(32);not null"`
	Street      string `gorm:"type:varchar(256);not null"`
	City        string `gorm:"type:varchar(128);not null"`
	State       string `gorm:"type:varchar(128)"`
	Country     string `gorm:"type:varchar(128);not null"`
	PostalCode  string `gorm:"type:varchar(32)"`
	Latitude    float64
	Longitude   float64
	IsDefault   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
