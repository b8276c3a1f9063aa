package service

import (
	"context"

	"github.com/google/uuid"

	"shopcart-backend/internal/dto"
	"shopcart-backend/internal/model"
	"shopcart-backend/internal/repository"
)

// CardService manages the saved-card list the card payment strategy
// resolves stored references against.
type CardService interface {
	AddCard(ctx context.Context, email string, req *dto.AddCardRequest) (*model.SavedCard, error)
	RemoveCard(ctx context.Context, email, cardID string) error
	ListCards(ctx context.Context, email string) ([]model.SavedCard, error)
	SetDefaultCard(ctx context.Context, email, cardID string) error
}

type cardServiceImpl struct {
	userRepo repository.UserRepository
}

func NewCardService(userRepo repository.UserRepository) CardService {
	return &cardServiceImpl{
		userRepo: userRepo,
	}
}

func (s *cardServiceImpl) AddCard(ctx context.Context, email string, req *dto.AddCardRequest) (*model.SavedCard, error) {
	card := model.SavedCard{
		CardID: uuid.NewString(),
		Last4:  req.Last4,
		Brand:  req.Brand,
		Expiry: req.Expiry,
	}

	if err := s.userRepo.AddCard(ctx, email, card); err != nil {
		return nil, err
	}

	return &card, nil
}

func (s *cardServiceImpl) RemoveCard(ctx context.Context, email, cardID string) error {
	return s.userRepo.RemoveCard(ctx, email, cardID)
}

func (s *cardServiceImpl) ListCards(ctx context.Context, email string) ([]model.SavedCard, error) {
	return s.userRepo.ListSavedCards(ctx, email)
}

func (s *cardServiceImpl) SetDefaultCard(ctx context.Context, email, cardID string) error {
	return s.userRepo.SetDefaultCard(ctx, email, cardID)
}
