package usecase

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
)

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	StoreID       int64    `json:"store_id" validate:"required"`
	CategoryID    *int64   `json:"category_id,omitempty"`
	Name          string   `json:"name" validate:"required,max=256"`
	Description   string   `json:"description,omitempty" validate:"max=4096"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	DiscountPrice *float64 `json:"discount_price,omitempty" validate:"omitempty,gt=0"`
	Stock         int      `json:"stock" validate:"min=0"`
	IsActive      bool     `json:"is_active"`
	ImageURLs     []string `json:"image_urls,omitempty" validate:"dive,url"`
}

// ListProductsInput narrows and pages a product listing.
type ListProductsInput struct {
	StoreID    *int64   `query:"store_id"`
	CategoryID *int64   `query:"category_id"`
	MinPrice   *float64 `query:"min_price"`
	MaxPrice   *float64 `query:"max_price"`
	Search     string   `query:"search"`
	Offset     int      `query:"offset" validate:"min=0"`
	Limit      int      `query:"limit" validate:"min=0,max=100"`
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description,omitempty" validate:"max=1024"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

// ReviewInput is the payload for posting a product review.
type ReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"max=2048"`
}

// CatalogUsecase manages products, categories and reviews. Write operations
// on products enforce that the caller owns the target store.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, userID int64, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, userID int64, productID int64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, userID int64, productID int64) error

	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	CreateReview(ctx context.Context, userID int64, productID int64, input *ReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error)
}

// FilterFromInput converts a listing input into a repository filter,
// defaulting the page size when the caller leaves it unset.
func FilterFromInput(input *ListProductsInput) repository.ProductFilter {
	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	filter := repository.ProductFilter{
		Search:     input.Search,
		ActiveOnly: true,
		Offset:     input.Offset,
		Limit:      limit,
	}
	if input.StoreID != nil {
		filter.StoreID = *input.StoreID
	}
	if input.CategoryID != nil {
		filter.CategoryID = *input.CategoryID
	}
	if input.MinPrice != nil {
		filter.MinPrice = *input.MinPrice
	}
	if input.MaxPrice != nil {
		filter.MaxPrice = *input.MaxPrice
	}

	return filter
}
