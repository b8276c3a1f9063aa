package service

import (
	"context"
	"time"

	"shopcart-backend/internal/dto"
	"shopcart-backend/internal/repository"
)

const recentOrdersLimit = 5

// OrderQueryService serves a user's order history reads.
type OrderQueryService interface {
	RecentOrders(ctx context.Context, email string) ([]*dto.OrderSummary, error)
	OrderDetail(ctx context.Context, email, orderID string) (*dto.OrderDetailResponse, error)
}

type orderQueryServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderQueryService(orderRepo repository.OrderRepository) OrderQueryService {
	return &orderQueryServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderQueryServiceImpl) RecentOrders(ctx context.Context, email string) ([]*dto.OrderSummary, error) {
	orders, err := s.orderRepo.FindRecent(ctx, email, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.OrderSummary, len(orders))
	for i, order := range orders {
		summaries[i] = &dto.OrderSummary{
			OrderID:   order.OrderID,
			Status:    string(order.Status),
			Total:     order.Pricing.Total,
			CreatedAt: order.CreatedAt.Format(time.RFC3339),
			UpdatedAt: order.UpdatedAt.Format(time.RFC3339),
		}
	}

	return summaries, nil
}

func (s *orderQueryServiceImpl) OrderDetail(ctx context.Context, email, orderID string) (*dto.OrderDetailResponse, error) {
	order, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// orders are only visible to their owner
	if order.Email != email {
		return nil, repository.ErrOrderNotFound
	}

	return &dto.OrderDetailResponse{
		OrderID:           order.OrderID,
		Items:             order.Items,
		CustomerInfo:      order.CustomerInfo,
		ShippingAddress:   order.ShippingAddress,
		Pricing:           order.Pricing,
		Status:            string(order.Status),
		TrackingID:        order.Shipping.TrackingID,
		EstimatedDelivery: order.Shipping.EstimatedDelivery,
		PaymentStatus:     string(order.Payment.Status),
		CreatedAt:         order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         order.UpdatedAt.Format(time.RFC3339),
	}, nil
}
