package model

import "github.com/shopspring/decimal"

type DeliveryOption string

const (
	DeliveryStandard DeliveryOption = "standard"
	DeliveryExpress  DeliveryOption = "express"
	DeliverySameDay  DeliveryOption = "same-day"
)

// Valid reports whether the option is one of the supported codes. Unknown
// codes are rejected at the checkout boundary, never defaulted.
func (d DeliveryOption) Valid() bool {
	switch d {
	case DeliveryStandard, DeliveryExpress, DeliverySameDay:
		return true
	}
	return false
}

// Fee is total over valid options; callers must validate first.
func (d DeliveryOption) Fee() decimal.Decimal {
	switch d {
	case DeliveryExpress:
		return decimal.NewFromInt(80)
	case DeliverySameDay:
		return decimal.NewFromInt(120)
	default:
		return decimal.NewFromInt(40)
	}
}

func (d DeliveryOption) LeadTimeDays() int {
	switch d {
	case DeliveryExpress:
		return 3
	case DeliverySameDay:
		return 1
	default:
		return 7
	}
}

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodCOD        PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetbanking, PaymentMethodCOD:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusCompleted    PaymentStatus = "completed"
	PaymentStatusPending      PaymentStatus = "pending"
	PaymentStatusCODConfirmed PaymentStatus = "cod_confirmed"
)

// ClearsCart reports whether a checkout that produced this status consumes
// the cart. A pending payment still clears: the cart is treated as
// submitted, not paid.
func (s PaymentStatus) ClearsCart() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusPending, PaymentStatusCODConfirmed:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPendingPayment OrderStatus = "pending_payment"
)

type ShippingStatus string

const (
	ShippingStatusPending ShippingStatus = "pending"
)

// CartLine is one product entry in a user's cart. Lines are copied verbatim
// into the order at checkout; prices are not re-fetched from the catalog.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type PricingSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingAddress struct {
	FullName     string `json:"full_name"`
	Mobile       string `json:"mobile"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark,omitempty"`
	AddressType  string `json:"address_type,omitempty"`
}

type SavedCard struct {
	CardID string `json:"card_id"`
	Last4  string `json:"last4"`
	Brand  string `json:"brand"`
	Expiry string `json:"expiry,omitempty"`
}

// PaymentOutcome is the normalized result of one payment strategy run,
// independent of the underlying rail.
type PaymentOutcome struct {
	Status        PaymentStatus `json:"status"`
	OrderStatus   OrderStatus   `json:"order_status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	PaymentID     string        `json:"payment_id"`
	PaymentURL    string        `json:"payment_url,omitempty"`
	QRCodeURL     string        `json:"qr_code_url,omitempty"`
	Instructions  string        `json:"instructions,omitempty"`
	Message       string        `json:"message"`
}
