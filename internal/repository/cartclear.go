package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shopcart-backend/internal/model"
)

// CartClearRepository queues compensating cart clears for orders whose
// post-persistence clear step failed. Order id is the idempotency key.
type CartClearRepository interface {
	Enqueue(ctx context.Context, orderID, email, reason string) error
	Pending(ctx context.Context, limit int) ([]*model.CartClearTask, error)
	MarkDone(ctx context.Context, orderID string) error
	RecordFailure(ctx context.Context, orderID, reason string) error
}

type cartClearRepoImpl struct {
	db *gorm.DB
}

func NewCartClearRepository(db *gorm.DB) CartClearRepository {
	return &cartClearRepoImpl{
		db: db,
	}
}

func (r *cartClearRepoImpl) Enqueue(ctx context.Context, orderID, email, reason string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CartClearTask{
			OrderID:   orderID,
			Email:     email,
			Attempts:  1,
			LastError: reason,
		}).Error
}

func (r *cartClearRepoImpl) Pending(ctx context.Context, limit int) ([]*model.CartClearTask, error) {
	var tasks []*model.CartClearTask
	err := r.db.WithContext(ctx).
		Where("done_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *cartClearRepoImpl) MarkDone(ctx context.Context, orderID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.CartClearTask{}).
		Where("order_id = ?", orderID).
		Update("done_at", &now).Error
}

func (r *cartClearRepoImpl) RecordFailure(ctx context.Context, orderID, reason string) error {
	return r.db.WithContext(ctx).Model(&model.CartClearTask{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error
}
