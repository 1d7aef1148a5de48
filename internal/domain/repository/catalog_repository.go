package repository

import (
	"context"
	"errors"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
)

// Domain-specific errors for catalog persistence.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductFilter narrows product listings. Zero values mean "no constraint".
type ProductFilter struct {
	StoreID    int64
	CategoryID int64
	MinPrice   float64
	MaxPrice   float64
	Search     string // matched against name, case-insensitive
	ActiveOnly bool
	Offset     int
	Limit      int
}

// CatalogRepository defines persistence operations for products, categories,
// images and reviews.
type CatalogRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID, with images.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindProductBySlug retrieves a product by its unique slug, with images and reviews.
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindProductsByIDs retrieves the products matching the given IDs.
	// The result may be shorter than ids when some do not exist.
	FindProductsByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)

	// ListProducts retrieves products matching the filter.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// UpdateProduct modifies an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product by its ID.
	DeleteProduct(ctx context.Context, id int64) error

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id int64) (*entity.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// UpdateCategory modifies an existing category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category by its ID.
	DeleteCategory(ctx context.Context, id int64) error

	// CreateImage attaches an image to a product.
	CreateImage(ctx context.Context, image *entity.ProductImage) error

	// DeleteImage removes a product image by its ID.
	DeleteImage(ctx context.Context, id int64) error

	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// ListReviewsByProduct retrieves all reviews of a product.
	ListReviewsByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)
}
