package dto

import (
	"github.com/shopspring/decimal"

	"shopcart-backend/internal/model"
)

type AddCardRequest struct {
	Last4  string `json:"last4"`
	Brand  string `json:"brand"`
	Expiry string `json:"expiry,omitempty"`
}

type RemoveCardRequest struct {
	CardID string `json:"card_id"`
}

type DefaultCardRequest struct {
	CardID string `json:"card_id"`
}

// WebhookEvent is a payment provider callback. The raw body is
// HMAC-signed; the signature travels in the X-Webhook-Signature header.
type WebhookEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id,omitempty"`
}

type OrderSummary struct {
	OrderID   string          `json:"order_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type OrderDetailResponse struct {
	OrderID           string                `json:"order_id"`
	Items             []model.CartLine      `json:"items"`
	CustomerInfo      model.CustomerInfo    `json:"customer_info"`
	ShippingAddress   model.ShippingAddress `json:"shipping_address"`
	Pricing           model.PricingSummary  `json:"pricing"`
	Status            string                `json:"status"`
	TrackingID        string                `json:"tracking_id,omitempty"`
	EstimatedDelivery string                `json:"estimated_delivery,omitempty"`
	PaymentStatus     string                `json:"payment_status"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`
}
