package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"shopcart-backend/internal/dto"
	"shopcart-backend/internal/model"
	"shopcart-backend/internal/repository"
)

// priceTolerance absorbs rounding drift between the client's quote and the
// recomputed total. Anything beyond it means the client's cart view is
// stale and checkout must stop before any payment action.
var priceTolerance = decimal.NewFromInt(1)

// CheckoutService converts a user's cart into a persisted order: validate,
// reprice, dispatch payment, persist, clear the cart.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, email string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	userRepo      repository.UserRepository
	orderRepo     repository.OrderRepository
	cartClearRepo repository.CartClearRepository
	pricing       *PricingService
	payment       PaymentService
}

func NewCheckoutService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	cartClearRepo repository.CartClearRepository,
	pricing *PricingService,
	payment PaymentService,
) CheckoutService {
	return &checkoutServiceImpl{
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		cartClearRepo: cartClearRepo,
		pricing:       pricing,
		payment:       payment,
	}
}

func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, email string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if len(user.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	if !req.DeliveryOption.Valid() {
		return nil, ErrInvalidDeliveryOption
	}

	orderID := upperRef("ORD")
	trackingID := upperRef("TRK")
	estimatedDelivery := time.Now().UTC().
		AddDate(0, 0, req.DeliveryOption.LeadTimeDays()).
		Format("2006-01-02")

	// Reconcile the client's quote against a recomputation over the live
	// cart before touching any payment path.
	calculated := s.pricing.CalculateFromCart(user.Cart, req.DeliveryOption)
	if calculated.Total.Sub(req.Pricing.Total).Abs().GreaterThan(priceTolerance) {
		return nil, ErrPriceMismatch
	}

	outcome, err := s.payment.Process(ctx, orderID, req.PaymentMethod, req.PaymentData,
		req.Pricing.Total, req.CustomerInfo, user)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.Order{
		OrderID:         orderID,
		Email:           user.Email,
		CustomerInfo:    req.CustomerInfo,
		ShippingAddress: req.ShippingAddress,
		Items:           user.Cart,
		Pricing:         req.Pricing,
		DeliveryOption:  req.DeliveryOption,
		PaymentMethod:   req.PaymentMethod,
		Payment: model.PaymentRecord{
			Status:        outcome.Status,
			PaymentID:     outcome.PaymentID,
			TransactionID: outcome.TransactionID,
			PaymentURL:    outcome.PaymentURL,
		},
		Shipping: model.ShippingInfo{
			TrackingID:        trackingID,
			EstimatedDelivery: estimatedDelivery,
			Status:            model.ShippingStatusPending,
		},
		Status:    outcome.OrderStatus,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	// Past this point the order stands. The clear step is best effort: on
	// failure a compensating retry is queued, keyed by order id, and the
	// caller still gets a success response.
	if outcome.Status.ClearsCart() {
		if err := s.userRepo.ClearCart(ctx, user.Email); err != nil {
			log.Printf("cart clear failed for order %s: %v", orderID, err)
			if qErr := s.cartClearRepo.Enqueue(ctx, orderID, user.Email, err.Error()); qErr != nil {
				log.Printf("enqueue cart clear retry for order %s: %v", orderID, qErr)
			}
		}
	}

	return &dto.CheckoutResponse{
		Success:             true,
		OrderID:             orderID,
		Message:             outcome.Message,
		PaymentID:           outcome.PaymentID,
		PaymentURL:          outcome.PaymentURL,
		QRCodeURL:           outcome.QRCodeURL,
		TrackingID:          trackingID,
		EstimatedDelivery:   estimatedDelivery,
		Status:              string(outcome.OrderStatus),
		PaymentInstructions: outcome.Instructions,
		PaymentStatus:       string(outcome.Status),
		CreatedAt:           order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           order.UpdatedAt.Format(time.RFC3339),
	}, nil
}
