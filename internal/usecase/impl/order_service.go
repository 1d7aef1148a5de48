package impl

import (
	"context"
	"log/slog"

	"github.com/AZHIK/africa-soko-backend/config"
	deliverycontext "github.com/AZHIK/africa-soko-backend/internal/delivery/context"
	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager           repository.TransactionManager
	orderRepo           repository.OrderRepository
	cartRepo            repository.CartRepository
	addressRepo         repository.AddressRepository
	vendorRepo          repository.VendorRepository
	shippingFeePerStore float64
	taxRate             float64
	logger              *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	CartRepo    repository.CartRepository
	AddressRepo repository.AddressRepository
	VendorRepo  repository.VendorRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var shippingFee, taxRate float64
	if params.Config != nil && params.Config.Checkout != nil {
		shippingFee = params.Config.Checkout.ShippingFeePerStore
		taxRate = params.Config.Checkout.TaxRate
	}

	return &orderService{
		txManager:           params.TxManager,
		orderRepo:           params.OrderRepo,
		cartRepo:            params.CartRepo,
		addressRepo:         params.AddressRepo,
		vendorRepo:          params.VendorRepo,
		shippingFeePerStore: shippingFee,
		taxRate:             taxRate,
		logger:              params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// unitPrice is the effective price of a product at checkout time.
func unitPrice(product *entity.Product) float64 {
	if product.DiscountPrice != nil {
		return *product.DiscountPrice
	}

	return product.Price
}

// PriceCart prices the current cart without mutating anything.
func (srv *orderService) PriceCart(ctx context.Context, userID int64) (*usecase.CartPricing, error) {
	items, err := srv.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.price(items), nil
}

// ConfirmCheckout prices the cart and hands back an opaque reference the
// client echoes when placing the order.
func (srv *orderService) ConfirmCheckout(ctx context.Context, userID int64) (*usecase.CheckoutConfirmation, error) {
	items, err := srv.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	pricing := srv.price(items)
	reference := uuid.NewString()

	srv.log(ctx).Info("Checkout confirmed", slog.Int64("userID", userID), slog.String("reference", reference))

	return &usecase.CheckoutConfirmation{
		Reference: reference,
		Total:     pricing.Total,
	}, nil
}

// PlaceOrder turns the cart into one order per store. Stock checks, stock
// decrements, order rows, payment and delivery records and the cart clear all
// run inside a single transaction, so a failed checkout leaves nothing behind.
func (srv *orderService) PlaceOrder(ctx context.Context, userID int64, input *usecase.PlaceOrderInput) ([]*entity.Order, error) {
	addressID, err := srv.resolveShippingAddress(ctx, userID, input.AddressID)
	if err != nil {
		return nil, err
	}

	method := entity.PaymentMethod(input.PaymentMethod)
	if method == "" {
		method = entity.PaymentMethodCashOnDelivery
	}

	var orders []*entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		catalogRepo := repoFactory.CatalogRepo()
		orderRepo := repoFactory.OrderRepo()

		items, listErr := cartRepo.FindCartItemsByUser(ctx, userID)
		if listErr != nil {
			return errors.Wrap(listErr, "failed to load cart")
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		byStore := groupByStore(items)

		for storeID, storeItems := range byStore {
			order, buildErr := srv.buildOrder(ctx, catalogRepo, userID, storeID, addressID, storeItems)
			if buildErr != nil {
				return buildErr
			}

			if createErr := orderRepo.CreateOrder(ctx, order); createErr != nil {
				return errors.Wrap(createErr, "failed to create order")
			}

			for _, item := range order.Items {
				item.OrderID = order.ID
			}
			if itemsErr := orderRepo.CreateOrderItems(ctx, order.Items); itemsErr != nil {
				return errors.Wrap(itemsErr, "failed to create order items")
			}

			payment := &entity.Payment{
				OrderID: order.ID,
				Amount:  order.TotalAmount,
				Method:  method,
				Status:  entity.PaymentStatusPending,
			}
			if payErr := orderRepo.CreatePayment(ctx, payment); payErr != nil {
				return errors.Wrap(payErr, "failed to create payment")
			}

			delivery := &entity.Delivery{
				OrderID: order.ID,
				Status:  entity.DeliveryStatusPending,
			}
			if delErr := orderRepo.CreateDelivery(ctx, delivery); delErr != nil {
				return errors.Wrap(delErr, "failed to create delivery")
			}

			orders = append(orders, order)
		}

		if clearErr := cartRepo.ClearCart(ctx, userID); clearErr != nil {
			return errors.Wrap(clearErr, "failed to clear cart")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmptyCart) || errors.Is(err, domainerrors.ErrProductNotFound) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to place order", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.log(ctx).Info("Order placed", slog.Int64("userID", userID), slog.Int("orders", len(orders)))

	return orders, nil
}

// buildOrder prices one store's slice of the cart and decrements stock.
func (srv *orderService) buildOrder(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	userID int64,
	storeID int64,
	addressID *int64,
	items []*entity.CartItem,
) (*entity.Order, error) {
	order := &entity.Order{
		UserID:            userID,
		StoreID:           storeID,
		Status:            entity.OrderStatusPending,
		ShippingFee:       srv.shippingFeePerStore,
		ShippingAddressID: addressID,
	}

	for _, item := range items {
		// Re-read the product inside the transaction so the stock check and
		// decrement see a consistent row.
		product, err := catalogRepo.FindProductByID(ctx, item.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load product for order")
		}

		if !product.IsActive || product.Stock < item.Quantity {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product unavailable in requested quantity")
		}

		price := unitPrice(product)
		lineSubtotal := price * float64(item.Quantity)

		order.Items = append(order.Items, &entity.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: price,
			Subtotal:  lineSubtotal,
		})
		order.Subtotal += lineSubtotal

		product.Stock -= item.Quantity
		if err := catalogRepo.UpdateProduct(ctx, product); err != nil {
			return nil, errors.Wrap(err, "failed to decrement stock")
		}
	}

	order.Tax = order.Subtotal * srv.taxRate
	order.TotalAmount = order.Subtotal + order.ShippingFee + order.Tax - order.Discount

	return order, nil
}

// GetOrder loads an order the caller placed.
func (srv *orderService) GetOrder(ctx context.Context, userID int64, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != userID && !deliverycontext.IsAdmin(ctx) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListUserOrders returns the caller's order history, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = 20
	}

	orders, err := srv.orderRepo.ListOrdersByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListStoreOrders returns a store's incoming orders for its owner.
func (srv *orderService) ListStoreOrders(ctx context.Context, userID int64, storeID int64, offset, limit int) ([]*entity.Order, error) {
	if err := srv.requireStoreOwner(ctx, userID, storeID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	orders, err := srv.orderRepo.ListOrdersByStore(ctx, storeID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store orders")
	}

	return orders, nil
}

// UpdateOrderStatus lets the store owner move an order through its lifecycle.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, userID int64, orderID int64, status entity.OrderStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find order")
	}

	if !deliverycontext.IsAdmin(ctx) {
		if ownerErr := srv.requireStoreOwner(ctx, userID, order.StoreID); ownerErr != nil {
			return ownerErr
		}
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Int64("orderID", orderID), slog.String("status", string(status)))

	return nil
}

// loadCart returns the user's cart or ErrEmptyCart.
func (srv *orderService) loadCart(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.FindCartItemsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	return items, nil
}

// price computes the cart totals from items with preloaded products.
func (srv *orderService) price(items []*entity.CartItem) *usecase.CartPricing {
	pricing := &usecase.CartPricing{
		PerStore: make(map[int64]float64),
	}

	for _, item := range items {
		if item.Product == nil {
			continue
		}
		lineSubtotal := unitPrice(item.Product) * float64(item.Quantity)
		pricing.Subtotal += lineSubtotal
		pricing.PerStore[item.Product.StoreID] += lineSubtotal
	}

	pricing.ShippingFee = srv.shippingFeePerStore * float64(len(pricing.PerStore))
	pricing.Tax = pricing.Subtotal * srv.taxRate
	pricing.Total = pricing.Subtotal + pricing.ShippingFee + pricing.Tax

	return pricing
}

// resolveShippingAddress picks the explicit address when given, otherwise the
// user's default. No address at all is allowed: the order ships address-less
// and the seller arranges delivery out of band.
func (srv *orderService) resolveShippingAddress(ctx context.Context, userID int64, addressID *int64) (*int64, error) {
	if addressID != nil {
		address, err := srv.addressRepo.FindAddressByID(ctx, userID, *addressID)
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find shipping address")
		}

		return &address.ID, nil
	}

	address, err := srv.addressRepo.FindDefaultAddressByUser(ctx, userID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find default address")
	}

	return &address.ID, nil
}

// requireStoreOwner verifies the caller's vendor account owns the store.
func (srv *orderService) requireStoreOwner(ctx context.Context, userID int64, storeID int64) error {
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

// groupByStore splits cart items by the owning store of each product.
func groupByStore(items []*entity.CartItem) map[int64][]*entity.CartItem {
	byStore := make(map[int64][]*entity.CartItem)
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		byStore[item.Product.StoreID] = append(byStore[item.Product.StoreID], item)
	}

	return byStore
}
