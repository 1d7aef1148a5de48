package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/AZHIK/africa-soko-backend/internal/delivery/context"
	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	vendorRepo  repository.VendorRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	VendorRepo  repository.VendorRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		vendorRepo:  params.VendorRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product to a store the caller owns. The product and
// its images are written in one transaction.
func (srv *catalogService) CreateProduct(ctx context.Context, userID int64, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.requireStoreOwnership(ctx, userID, input.StoreID); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := srv.catalogRepo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to find category")
		}
	}

	product := &entity.Product{
		StoreID:       input.StoreID,
		CategoryID:    input.CategoryID,
		Name:          input.Name,
		Slug:          srv.productSlug(ctx, input.Name),
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Stock:         input.Stock,
		IsActive:      input.IsActive,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		if err := catalogRepo.CreateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		for i, url := range input.ImageURLs {
			image := &entity.ProductImage{
				ProductID: product.ID,
				ImageURL:  url,
				IsMain:    i == 0,
			}
			if err := catalogRepo.CreateImage(ctx, image); err != nil {
				return errors.Wrap(err, "failed to create product image")
			}
			product.Images = append(product.Images, image)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Int64("storeID", input.StoreID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create product transaction")
	}

	return product, nil
}

// GetProduct loads a product with its images and reviews.
func (srv *catalogService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// GetProductBySlug loads a product by its URL slug.
func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductBySlug(ctx, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return product, nil
}

// ListProducts pages through the catalog with optional filters.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.catalogRepo.ListProducts(ctx, usecase.FilterFromInput(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct replaces the fields of a product in a store the caller owns.
func (srv *catalogService) UpdateProduct(ctx context.Context, userID int64, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.DiscountPrice = input.DiscountPrice
	product.Stock = input.Stock
	product.IsActive = input.IsActive

	if err := srv.catalogRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from a store the caller owns.
func (srv *catalogService) DeleteProduct(ctx context.Context, userID int64, productID int64) error {
	if _, err := srv.ownedProduct(ctx, userID, productID); err != nil {
		return err
	}

	if err := srv.catalogRepo.DeleteProduct(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", productID))

	return nil
}

// CreateCategory adds a category, optionally nested under a parent.
func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	if input.ParentID != nil {
		if _, err := srv.catalogRepo.FindCategoryByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to find parent category")
		}
	}

	category := &entity.Category{
		Name:        input.Name,
		Slug:        slugify(input.Name),
		Description: input.Description,
		ParentID:    input.ParentID,
	}
	if err := srv.catalogRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// ListCategories returns all categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateCategory replaces a category's fields.
func (srv *catalogService) UpdateCategory(ctx context.Context, categoryID int64, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.catalogRepo.FindCategoryByID(ctx, categoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	category.Name = input.Name
	category.Description = input.Description
	category.ParentID = input.ParentID

	if err := srv.catalogRepo.UpdateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category.
func (srv *catalogService) DeleteCategory(ctx context.Context, categoryID int64) error {
	err := srv.catalogRepo.DeleteCategory(ctx, categoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// CreateReview posts a review on a product and refreshes the product rating.
func (srv *catalogService) CreateReview(ctx context.Context, userID int64, productID int64, input *usecase.ReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		product, findErr := catalogRepo.FindProductByID(ctx, productID)
		if errors.Is(findErr, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find product")
		}

		if err := catalogRepo.CreateReview(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		reviews, listErr := catalogRepo.ListReviewsByProduct(ctx, productID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to list reviews")
		}

		product.Rating = averageRating(reviews)
		if err := catalogRepo.UpdateProduct(ctx, product); err != nil {
			return errors.Wrap(err, "failed to refresh product rating")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to execute create review transaction")
	}

	return review, nil
}

// ListReviews returns the reviews on a product.
func (srv *catalogService) ListReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	reviews, err := srv.catalogRepo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// requireStoreOwnership verifies the caller's vendor account owns the store.
func (srv *catalogService) requireStoreOwnership(ctx context.Context, userID int64, storeID int64) error {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if errors.Is(err, repository.ErrVendorNotFound) {
		return domainerrors.ErrNotVendor
	}
	if err != nil {
		return errors.Wrap(err, "failed to find vendor by user")
	}

	store, err := srv.vendorRepo.FindStoreByID(ctx, storeID)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return domainerrors.ErrStoreNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find store")
	}

	if store.VendorID != vendor.ID {
		return domainerrors.ErrStoreOwnershipViolation
	}

	return nil
}

// ownedProduct loads a product and verifies the caller owns its store.
func (srv *catalogService) ownedProduct(ctx context.Context, userID int64, productID int64) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.requireStoreOwnership(ctx, userID, product.StoreID); err != nil {
		return nil, err
	}

	return product, nil
}

// productSlug derives a slug from the product name, appending a short random
// suffix when the plain slug is already taken.
func (srv *catalogService) productSlug(ctx context.Context, name string) string {
	slug := slugify(name)

	if _, err := srv.catalogRepo.FindProductBySlug(ctx, slug); err == nil {
		return slug + "-" + uuid.NewString()[:8]
	}

	return slug
}

func averageRating(reviews []*entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews))
}
