package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopcart-backend/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository is the User Store collaborator: user + cart reads, the cart
// clear step, and saved card management.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ClearCart(ctx context.Context, email string) error
	ListSavedCards(ctx context.Context, email string) ([]model.SavedCard, error)
	AddCard(ctx context.Context, email string, card model.SavedCard) error
	RemoveCard(ctx context.Context, email, cardID string) error
	SetDefaultCard(ctx context.Context, email, cardID string) error
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{
		db: db,
	}
}

func (r *userRepoImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// ClearCart empties the user's cart. Clearing an already-empty cart is a
// no-op, which keeps the compensating retry idempotent.
func (r *userRepoImpl) ClearCart(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Update("cart", []model.CartLine{})

	if result.Error != nil {
		return fmt.Errorf("clear cart: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepoImpl) ListSavedCards(ctx context.Context, email string) ([]model.SavedCard, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return user.Cards, nil
}

func (r *userRepoImpl) AddCard(ctx context.Context, email string, card model.SavedCard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.Cards = append(user.Cards, card)
		return tx.Model(&user).Update("cards", user.Cards).Error
	})
}

func (r *userRepoImpl) RemoveCard(ctx context.Context, email, cardID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		kept := user.Cards[:0]
		for _, c := range user.Cards {
			if c.CardID != cardID {
				kept = append(kept, c)
			}
		}
		return tx.Model(&user).Update("cards", kept).Error
	})
}

func (r *userRepoImpl) SetDefaultCard(ctx context.Context, email, cardID string) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Update("default_card", cardID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
