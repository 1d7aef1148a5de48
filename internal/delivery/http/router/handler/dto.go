package handler

import (
	"time"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"
)

// Response DTOs decouple the wire format from the domain entities and keep
// sensitive fields (password hashes) out of responses.

type userResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	ProfilePic string    `json:"profile_pic,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsVendor   bool      `json:"is_vendor"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:         user.ID,
		Email:      user.Email,
		Username:   user.Username,
		ProfilePic: user.ProfilePic,
		IsActive:   user.IsActive,
		IsVendor:   user.IsVendor,
		CreatedAt:  user.CreatedAt,
	}
}

type addressResponse struct {
	ID          int64   `json:"id"`
	FullName    string  `json:"full_name"`
	PhoneNumber string  `json:"phone_number"`
	Street      string  `json:"street"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	PostalCode  string  `json:"postal_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsDefault   bool    `json:"is_default"`
}

func toAddressResponse(address *entity.Address) *addressResponse {
	if address == nil {
		return nil
	}

	return &addressResponse{
		ID:          address.ID,
		FullName:    address.FullName,
		PhoneNumber: address.PhoneNumber,
		Street:      address.Street,
		City:        address.City,
		State:       address.State,
		Country:     address.Country,
		PostalCode:  address.PostalCode,
		Latitude:    address.Latitude,
		Longitude:   address.Longitude,
		IsDefault:   address.IsDefault,
	}
}

func toAddressResponses(addresses []*entity.Address) []*addressResponse {
	out := make([]*addressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, toAddressResponse(address))
	}

	return out
}

type vendorResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	BusinessName  string    `json:"business_name"`
	BusinessEmail string    `json:"business_email"`
	PhoneNumber   string    `json:"phone_number"`
	Bio           string    `json:"bio,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toVendorResponse(vendor *entity.Vendor) *vendorResponse {
	if vendor == nil {
		return nil
	}

	return &vendorResponse{
		ID:            vendor.ID,
		UserID:        vendor.UserID,
		BusinessName:  vendor.BusinessName,
		BusinessEmail: vendor.BusinessEmail,
		PhoneNumber:   vendor.PhoneNumber,
		Bio:           vendor.Bio,
		CreatedAt:     vendor.CreatedAt,
	}
}

func toVendorResponses(vendors []*entity.Vendor) []*vendorResponse {
	out := make([]*vendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		out = append(out, toVendorResponse(vendor))
	}

	return out
}

type storeResponse struct {
	ID          int64     `json:"id"`
	VendorID    int64     `json:"vendor_id"`
	StoreName   string    `json:"store_name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

func toStoreResponse(store *entity.Store) *storeResponse {
	if store == nil {
		return nil
	}

	return &storeResponse{
		ID:          store.ID,
		VendorID:    store.VendorID,
		StoreName:   store.StoreName,
		Slug:        store.Slug,
		Description: store.Description,
		LogoURL:     store.LogoURL,
		IsVerified:  store.IsVerified,
		Rating:      store.Rating,
		CreatedAt:   store.CreatedAt,
	}
}

func toStoreResponses(stores []*entity.Store) []*storeResponse {
	out := make([]*storeResponse, 0, len(stores))
	for _, store := range stores {
		out = append(out, toStoreResponse(store))
	}

	return out
}

type productImageResponse struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	IsMain   bool   `json:"is_main"`
}

type productResponse struct {
	ID            int64                   `json:"id"`
	StoreID       int64                   `json:"store_id"`
	CategoryID    *int64                  `json:"category_id,omitempty"`
	Name          string                  `json:"name"`
	Slug          string                  `json:"slug"`
	Description   string                  `json:"description,omitempty"`
	Price         float64                 `json:"price"`
	DiscountPrice *float64                `json:"discount_price,omitempty"`
	Stock         int                     `json:"stock"`
	Rating        float64                 `json:"rating"`
	IsActive      bool                    `json:"is_active"`
	Images        []*productImageResponse `json:"images,omitempty"`
	Reviews       []*reviewResponse       `json:"reviews,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

func toProductResponse(product *entity.Product) *productResponse {
	if product == nil {
		return nil
	}

	out := &productResponse{
		ID:            product.ID,
		StoreID:       product.StoreID,
		CategoryID:    product.CategoryID,
		Name:          product.Name,
		Slug:          product.Slug,
		Description:   product.Description,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Stock:         product.Stock,
		Rating:        product.Rating,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
	}

	for _, image := range product.Images {
		out.Images = append(out.Images, &productImageResponse{
			ID:       image.ID,
			ImageURL: image.ImageURL,
			IsMain:   image.IsMain,
		})
	}
	for _, review := range product.Reviews {
		out.Reviews = append(out.Reviews, toReviewResponse(review))
	}

	return out
}

func toProductResponses(products []*entity.Product) []*productResponse {
	out := make([]*productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

type categoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

func toCategoryResponse(category *entity.Category) *categoryResponse {
	if category == nil {
		return nil
	}

	return &categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ParentID:    category.ParentID,
	}
}

func toCategoryResponses(categories []*entity.Category) []*categoryResponse {
	out := make([]*categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}

	return out
}

type reviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toReviewResponse(review *entity.Review) *reviewResponse {
	if review == nil {
		return nil
	}

	return &reviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*reviewResponse {
	out := make([]*reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return out
}

type cartItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	AddedAt   time.Time        `json:"added_at"`
	Product   *productResponse `json:"product,omitempty"`
}

func toCartItemResponse(item *entity.CartItem) *cartItemResponse {
	if item == nil {
		return nil
	}

	return &cartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		AddedAt:   item.AddedAt,
		Product:   toProductResponse(item.Product),
	}
}

func toCartItemResponses(items []*entity.CartItem) []*cartItemResponse {
	out := make([]*cartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toCartItemResponse(item))
	}

	return out
}

type wishlistItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	AddedAt   time.Time        `json:"added_at"`
	Product   *productResponse `json:"product,omitempty"`
}

func toWishlistItemResponses(items []*entity.WishlistItem) []*wishlistItemResponse {
	out := make([]*wishlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &wishlistItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			AddedAt:   item.AddedAt,
			Product:   toProductResponse(item.Product),
		})
	}

	return out
}

type orderItemResponse struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type orderResponse struct {
	ID                int64                `json:"id"`
	StoreID           int64                `json:"store_id"`
	Status            string               `json:"status"`
	Subtotal          float64              `json:"subtotal"`
	ShippingFee       float64              `json:"shipping_fee"`
	Discount          float64              `json:"discount"`
	Tax               float64              `json:"tax"`
	TotalAmount       float64              `json:"total_amount"`
	ShippingAddressID *int64               `json:"shipping_address_id,omitempty"`
	Items             []*orderItemResponse `json:"items,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

func toOrderResponse(order *entity.Order) *orderResponse {
	if order == nil {
		return nil
	}

	out := &orderResponse{
		ID:                order.ID,
		StoreID:           order.StoreID,
		Status:            string(order.Status),
		Subtotal:          order.Subtotal,
		ShippingFee:       order.ShippingFee,
		Discount:          order.Discount,
		Tax:               order.Tax,
		TotalAmount:       order.TotalAmount,
		ShippingAddressID: order.ShippingAddressID,
		CreatedAt:         order.CreatedAt,
	}

	for _, item := range order.Items {
		out.Items = append(out.Items, &orderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	return out
}

func toOrderResponses(orders []*entity.Order) []*orderResponse {
	out := make([]*orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

type cartPricingResponse struct {
	Subtotal    float64           `json:"subtotal"`
	ShippingFee float64           `json:"shipping_fee"`
	Tax         float64           `json:"tax"`
	Total       float64           `json:"total"`
	PerStore    map[int64]float64 `json:"per_store"`
	// Distances is kept for client compatibility; no distance computation
	// exists yet, so it is always empty.
	Distances []float64 `json:"distances"`
}

func toCartPricingResponse(pricing *usecase.CartPricing) *cartPricingResponse {
	if pricing == nil {
		return nil
	}

	return &cartPricingResponse{
		Subtotal:    pricing.Subtotal,
		ShippingFee: pricing.ShippingFee,
		Tax:         pricing.Tax,
		Total:       pricing.Total,
		PerStore:    pricing.PerStore,
		Distances:   []float64{},
	}
}
