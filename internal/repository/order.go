package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shopcart-backend/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is the Order Store collaborator. Orders are written once;
// MarkPaid is the only post-creation mutation, driven by payment webhooks.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	FindRecent(ctx context.Context, email string, limit int) ([]*model.Order, error)
	MarkPaid(ctx context.Context, orderID string) (*model.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindRecent(ctx context.Context, email string, limit int) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// MarkPaid moves a pending_payment order to confirmed once the provider
// reports the capture. Already-confirmed orders pass through unchanged so
// webhook redelivery stays harmless.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.Status == model.OrderStatusConfirmed {
			return nil
		}

		order.Status = model.OrderStatusConfirmed
		order.Payment.Status = model.PaymentStatusCompleted
		order.UpdatedAt = time.Now().UTC()

		return tx.Model(&order).
			Updates(map[string]interface{}{
				"status":     order.Status,
				"payment":    order.Payment,
				"updated_at": order.UpdatedAt,
			}).Error
	})

	if err != nil {
		return nil, err
	}

	return &order, nil
}
