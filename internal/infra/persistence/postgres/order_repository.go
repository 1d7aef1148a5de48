package postgres

import (
	"context"

	"github.com/AZHIK/africa-soko-backend/internal/domain/entity"
	domainerrors "github.com/AZHIK/africa-soko-backend/internal/domain/errors"
	"github.com/AZHIK/africa-soko-backend/internal/domain/repository"
	"github.com/AZHIK/africa-soko-backend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order and fills in its generated ID.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references a missing record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateOrderItems persists the line items of an order.
func (repo *orderRepository) CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]model.OrderItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, model.OrderItemModel{
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i, item := range items {
		item.ID = models[i].ID
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		First(&orderM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrdersByUser retrieves orders placed by a user, newest first.
func (repo *orderRepository) ListOrdersByUser(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error) {
	var models []model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderDomainSlice(models), nil
}

// ListOrdersByStore retrieves orders of a store, newest first.
func (repo *orderRepository) ListOrdersByStore(ctx context.Context, storeID int64, offset, limit int) ([]*entity.Order, error) {
	var models []model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by store")
	}

	return toOrderDomainSlice(models), nil
}

// UpdateOrderStatus transitions an order to the given status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CreatePayment persists the payment record of an order.
func (repo *orderRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		OrderID:       payment.OrderID,
		Amount:        payment.Amount,
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		PaidAt:        payment.PaidAt,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order already has a payment")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// CreateDelivery persists the shipment record of an order.
func (repo *orderRepository) CreateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := &model.DeliveryModel{
		OrderID:        delivery.OrderID,
		CourierName:    delivery.CourierName,
		TrackingNumber: delivery.TrackingNumber,
		Status:         string(delivery.Status),
		DispatchedAt:   delivery.DispatchedAt,
		DeliveredAt:    delivery.DeliveredAt,
		DeliveryNote:   delivery.DeliveryNote,
	}

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order already has a delivery")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                data.ID,
		UserID:            data.UserID,
		StoreID:           data.StoreID,
		Status:            entity.OrderStatus(data.Status),
		Subtotal:          data.Subtotal,
		ShippingFee:       data.ShippingFee,
		Discount:          data.Discount,
		Tax:               data.Tax,
		TotalAmount:       data.TotalAmount,
		ShippingAddressID: data.ShippingAddressID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	for i := range data.Items {
		item := &data.Items[i]
		order.Items = append(order.Items, &entity.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                data.ID,
		UserID:            data.UserID,
		StoreID:           data.StoreID,
		Status:            string(data.Status),
		Subtotal:          data.Subtotal,
		ShippingFee:       data.ShippingFee,
		Discount:          data.Discount,
		Tax:               data.Tax,
		TotalAmount:       data.TotalAmount,
		ShippingAddressID: data.ShippingAddressID,
	}
}

func toOrderDomainSlice(models []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders
}
