package service

import (
	"github.com/shopspring/decimal"

	"shopcart-backend/internal/model"
)

// PricingService derives a pricing summary from cart lines and a delivery
// option. Pure computation, safe to call repeatedly and concurrently.
type PricingService struct{}

func NewPricingService() *PricingService {
	return &PricingService{}
}

// CalculateFromCart returns subtotal = Σ(price × quantity), the fixed fee
// for the delivery option, and their sum. The caller validates the option
// and rejects empty carts before invoking.
func (s *PricingService) CalculateFromCart(cart []model.CartLine, option model.DeliveryOption) model.PricingSummary {
	subtotal := decimal.Zero
	for _, line := range cart {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	fee := option.Fee()

	return model.PricingSummary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}
