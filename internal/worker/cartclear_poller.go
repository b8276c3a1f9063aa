package worker

import (
	"context"
	"errors"
	"log"
	"time"

	"shopcart-backend/internal/repository"
)

const pendingBatchSize = 50

// CartClearPoller drains the compensating cart-clear queue: carts that
// survived order persistence because the inline clear failed. Retries are
// idempotent (clearing an empty cart is a no-op) and keyed by order id.
type CartClearPoller struct {
	tick          time.Duration
	userRepo      repository.UserRepository
	cartClearRepo repository.CartClearRepository
}

func NewCartClearPoller(userRepo repository.UserRepository, cartClearRepo repository.CartClearRepository) *CartClearPoller {
	return &CartClearPoller{
		tick:          5 * time.Second,
		userRepo:      userRepo,
		cartClearRepo: cartClearRepo,
	}
}

func (p *CartClearPoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.processPending(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *CartClearPoller) processPending(ctx context.Context) {
	tasks, err := p.cartClearRepo.Pending(ctx, pendingBatchSize)
	if err != nil {
		log.Printf("failed to fetch pending cart clears: %v", err)
		return
	}

	for _, task := range tasks {
		err := p.userRepo.ClearCart(ctx, task.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("cart clear retry failed for order %s: %v", task.OrderID, err)
			if rErr := p.cartClearRepo.RecordFailure(ctx, task.OrderID, err.Error()); rErr != nil {
				log.Printf("record cart clear failure for order %s: %v", task.OrderID, rErr)
			}
			continue
		}

		// a vanished user means nothing left to clear
		if mErr := p.cartClearRepo.MarkDone(ctx, task.OrderID); mErr != nil {
			log.Printf("mark cart clear done for order %s: %v", task.OrderID, mErr)
			continue
		}

		log.Printf("cart cleared for order %s after retry", task.OrderID)
	}
}
