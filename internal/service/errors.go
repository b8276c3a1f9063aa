package service

import "errors"

var (
	ErrEmptyCart                = errors.New("cart is empty")
	ErrInvalidDeliveryOption    = errors.New("invalid delivery option")
	ErrPriceMismatch            = errors.New("price mismatch, please refresh cart and try again")
	ErrInvalidPaymentCard       = errors.New("invalid payment card")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrInvalidPaymentData       = errors.New("invalid payment data")
	ErrPaymentVerification      = errors.New("payment verification failed")
	ErrInvalidSignature         = errors.New("invalid webhook signature")
)
