package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	StoreID       int64  `gorm:"not null;index"`
	CategoryID    *int64 `gorm:"index"`
	Name          string `gorm:"type:varchar(256);not null"`
	Slug          string `gorm:"type:varchar(300);unique;not null"`
	Description   string `gorm:"type:text"`
	Price         float64
	DiscountPrice *float64
	Stock         int
	Rating        float64
	IsActive      bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Images  []ProductImageModel `gorm:"foreignKey:ProductID"`
	Reviews []ReviewModel       `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'categories' table. ParentID forms a tree.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(128);not null"`
	Slug        string `gorm:"type:varchar(160);unique;not null"`
	Description string `gorm:"type:varchar(1024)"`
	ParentID    *int64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index"`
	ImageURL  string `gorm:"type:varchar(512);not null"`
	IsMain    bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	ProductID int64  `gorm:"not null;index"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
