// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/middleware"
	"github.com/AZHIK/africa-soko-backend/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AddressHandler *handler.AddressHandler
	VendorHandler  *handler.VendorHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	UploadHandler  *handler.UploadHandler
	SocialHandler  *handler.SocialHandler
	OnlineHandler  *handler.OnlineHandler

	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate
	admin := p.AuthMiddleware.RequireAdmin

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", p.MetricsMiddleware.Handler())

	// One endpoint for google, email and refresh authentication.
	e.POST("/authenticate", p.AuthHandler.Authenticate)

	// Profile
	userGroup := e.Group("/users", authed)
	{
		userGroup.GET("/me", p.UserHandler.GetProfile)
		userGroup.PATCH("/me", p.UserHandler.UpdateProfile)
		userGroup.POST("/me/password", p.UserHandler.ChangePassword)
	}

	// Address book
	addressGroup := e.Group("/addresses", authed)
	{
		addressGroup.POST("", p.AddressHandler.CreateAddress)
		addressGroup.GET("", p.AddressHandler.ListAddresses)
		addressGroup.GET("/:id", p.AddressHandler.GetAddress)
		addressGroup.PUT("/:id", p.AddressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", p.AddressHandler.DeleteAddress)
		addressGroup.POST("/:id/default", p.AddressHandler.SetDefaultAddress)
	}

	// Vendors
	vendorGroup := e.Group("/vendors")
	{
		vendorGroup.POST("", p.VendorHandler.RegisterVendor, authed)
		vendorGroup.GET("", p.VendorHandler.ListVendors)
		vendorGroup.GET("/me", p.VendorHandler.GetOwnVendor, authed)
		vendorGroup.PATCH("/me", p.VendorHandler.UpdateVendor, authed)
		vendorGroup.GET("/:id", p.VendorHandler.GetVendor)
	}

	// Stores
	storeGroup := e.Group("/stores")
	{
		storeGroup.POST("", p.VendorHandler.CreateStore, authed)
		storeGroup.GET("", p.VendorHandler.ListStores)
		storeGroup.GET("/mine", p.VendorHandler.ListOwnStores, authed)
		storeGroup.GET("/slug/:slug", p.VendorHandler.GetStoreBySlug)
		storeGroup.GET("/:id", p.VendorHandler.GetStore)
		storeGroup.PUT("/:id", p.VendorHandler.UpdateStore, authed)
		storeGroup.DELETE("/:id", p.VendorHandler.DeleteStore, authed)
		storeGroup.GET("/:id/orders", p.OrderHandler.ListStoreOrders, authed)
	}

	// Catalog
	productGroup := e.Group("/products")
	{
		productGroup.POST("", p.ProductHandler.CreateProduct, authed)
		productGroup.GET("", p.ProductHandler.ListProducts)
		productGroup.GET("/slug/:slug", p.ProductHandler.GetProductBySlug)
		productGroup.GET("/:id", p.ProductHandler.GetProduct)
		productGroup.PUT("/:id", p.ProductHandler.UpdateProduct, authed)
		productGroup.DELETE("/:id", p.ProductHandler.DeleteProduct, authed)
		productGroup.POST("/:id/reviews", p.ProductHandler.CreateReview, authed)
		productGroup.GET("/:id/reviews", p.ProductHandler.ListReviews)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", p.ProductHandler.ListCategories)
		categoryGroup.POST("", p.ProductHandler.CreateCategory, authed, admin)
		categoryGroup.PUT("/:id", p.ProductHandler.UpdateCategory, authed, admin)
		categoryGroup.DELETE("/:id", p.ProductHandler.DeleteCategory, authed, admin)
	}

	// Cart and wishlist
	cartGroup := e.Group("/cart", authed)
	{
		cartGroup.POST("/items", p.CartHandler.AddToCart)
		cartGroup.GET("/items", p.CartHandler.ListCart)
		cartGroup.DELETE("/items/:productId", p.CartHandler.RemoveFromCart)
		cartGroup.DELETE("/items", p.CartHandler.ClearCart)
	}

	wishlistGroup := e.Group("/wishlist", authed)
	{
		wishlistGroup.POST("/:productId", p.CartHandler.AddToWishlist)
		wishlistGroup.GET("", p.CartHandler.ListWishlist)
		wishlistGroup.DELETE("/:productId", p.CartHandler.RemoveFromWishlist)
	}

	// Checkout and orders
	checkoutGroup := e.Group("/checkout", authed)
	{
		checkoutGroup.GET("/price", p.OrderHandler.PriceCart)
		checkoutGroup.POST("/confirm", p.OrderHandler.ConfirmCheckout)
		checkoutGroup.POST("/place", p.OrderHandler.PlaceOrder)
	}

	orderGroup := e.Group("/orders", authed)
	{
		orderGroup.GET("", p.OrderHandler.ListOwnOrders)
		orderGroup.GET("/:id", p.OrderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", p.OrderHandler.UpdateOrderStatus)
	}

	// Uploads
	uploadGroup := e.Group("/uploads")
	{
		uploadGroup.POST("", p.UploadHandler.Upload, authed)
		uploadGroup.GET("/:key", p.UploadHandler.Download)
	}

	// Stories and chats are placeholder surfaces.
	e.GET("/stories", p.SocialHandler.ListStories, authed)
	e.POST("/stories", p.SocialHandler.CreateStory, authed)
	e.GET("/chats", p.SocialHandler.ListChats, authed)
	e.POST("/chats", p.SocialHandler.SendChat, authed)

	// Online status
	e.GET("/ws/online", p.OnlineHandler.Connect, authed)
	e.GET("/online", p.OnlineHandler.Snapshot, authed)
}
