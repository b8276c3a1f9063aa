package dto

import (
	"encoding/json"
	"fmt"
	"regexp"

	"shopcart-backend/internal/model"
)

var (
	mobileRe  = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
)

// CheckoutRequest is the order-placement payload. PaymentData is kept raw
// and decoded against PaymentMethod, one payload shape per method.
type CheckoutRequest struct {
	CustomerInfo    model.CustomerInfo    `json:"customer_info"`
	ShippingAddress model.ShippingAddress `json:"shipping_address"`
	Pricing         model.PricingSummary  `json:"pricing"`
	DeliveryOption  model.DeliveryOption  `json:"delivery_option"`
	PaymentMethod   model.PaymentMethod   `json:"payment_method"`
	PaymentData     json.RawMessage       `json:"payment_data"`
}

type CardPaymentData struct {
	CardID string `json:"card_id,omitempty"`
}

type UPIPaymentData struct {
	UPIID string `json:"upi_id,omitempty"`
}

type NetBankingPaymentData struct {
	BankCode string `json:"bank_code"`
	BankName string `json:"bank_name"`
}

type CODPaymentData struct {
	Confirm bool `json:"confirm"`
}

func (r *CheckoutRequest) Validate() error {
	if r.CustomerInfo.Name == "" || r.CustomerInfo.Email == "" {
		return fmt.Errorf("customer name and email are required")
	}

	addr := &r.ShippingAddress
	if addr.FullName == "" || addr.AddressLine1 == "" || addr.City == "" ||
		addr.State == "" {
		return fmt.Errorf("incomplete shipping address")
	}
	if !mobileRe.MatchString(addr.Mobile) {
		return fmt.Errorf("mobile number must be 10 digits")
	}
	if !pincodeRe.MatchString(addr.Pincode) {
		return fmt.Errorf("PIN code must be 6 digits")
	}
	switch addr.AddressType {
	case "":
		addr.AddressType = "home"
	case "home", "work", "other":
	default:
		return fmt.Errorf("address_type must be one of home, work, other")
	}

	return nil
}

// CheckoutResponse summarizes the placed order for the caller.
type CheckoutResponse struct {
	Success             bool   `json:"success"`
	OrderID             string `json:"order_id"`
	Message             string `json:"message"`
	PaymentID           string `json:"payment_id,omitempty"`
	PaymentURL          string `json:"payment_url,omitempty"`
	QRCodeURL           string `json:"qr_code_url,omitempty"`
	TrackingID          string `json:"tracking_id,omitempty"`
	EstimatedDelivery   string `json:"estimated_delivery,omitempty"`
	Status              string `json:"status"`
	PaymentInstructions string `json:"payment_instructions,omitempty"`
	PaymentStatus       string `json:"payment_status"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature,omitempty"`
}

type VerifyPaymentResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
