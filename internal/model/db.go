package model

import "time"

// User is the User Store document. Cart and cards live inside the user row
// as JSON sub-documents, mirroring the upstream document layout.
type User struct {
	Email       string      `gorm:"primaryKey;size:255;not null"`
	Name        string      `gorm:"size:255"`
	Cart        []CartLine  `gorm:"serializer:json"`
	Cards       []SavedCard `gorm:"serializer:json"`
	DefaultCard string      `gorm:"size:64"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order is the persisted checkout aggregate. Items and pricing are immutable
// after creation; only Status and Shipping.Status change later.
type Order struct {
	OrderID         string          `gorm:"primaryKey;size:64;not null"`
	Email           string          `gorm:"size:255;index;not null"`
	CustomerInfo    CustomerInfo    `gorm:"serializer:json"`
	ShippingAddress ShippingAddress `gorm:"serializer:json"`
	Items           []CartLine      `gorm:"serializer:json"`
	Pricing         PricingSummary  `gorm:"serializer:json"`
	DeliveryOption  DeliveryOption  `gorm:"size:16;not null"`
	PaymentMethod   PaymentMethod   `gorm:"size:16;not null"`
	Payment         PaymentRecord   `gorm:"serializer:json"`
	Shipping        ShippingInfo    `gorm:"serializer:json"`
	Status          OrderStatus     `gorm:"size:32;index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PaymentRecord is the payment sub-document embedded in an order.
type PaymentRecord struct {
	Status        PaymentStatus `json:"status"`
	PaymentID     string        `json:"payment_id,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
	PaymentURL    string        `json:"payment_url,omitempty"`
}

type ShippingInfo struct {
	TrackingID        string         `json:"tracking_id"`
	EstimatedDelivery string         `json:"estimated_delivery"`
	Status            ShippingStatus `json:"status"`
}

// WebhookEvent dedups payment provider callbacks by event id.
type WebhookEvent struct {
	EventID     string `gorm:"primaryKey;size:128;uniqueIndex;not null"`
	EventType   string `gorm:"size:64;index"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

// CartClearTask is a compensating-retry row for carts that survived order
// persistence because the clear step failed. Keyed by order id so retries
// stay idempotent.
type CartClearTask struct {
	OrderID   string `gorm:"primaryKey;size:64;not null"`
	Email     string `gorm:"size:255;index;not null"`
	Attempts  int    `gorm:"not null"`
	LastError string `gorm:"size:512"`
	DoneAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
