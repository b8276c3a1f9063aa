package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/url"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"shopcart-backend/internal/config"
	"shopcart-backend/internal/dto"
	"shopcart-backend/internal/model"
	"shopcart-backend/internal/repository"
)

// PaymentService dispatches a checkout payment to the handler for its
// method and normalizes the result. It is a deterministic simulator: no
// branch contacts an external gateway, and no branch writes to storage.
type PaymentService interface {
	Process(ctx context.Context, orderID string, method model.PaymentMethod, paymentData json.RawMessage,
		amount decimal.Decimal, customer model.CustomerInfo, user *model.User) (*model.PaymentOutcome, error)
	Verify(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
	HandleWebhook(ctx context.Context, signature string, body []byte) error
}

type paymentServiceImpl struct {
	cfg              config.Payment
	orderRepo        repository.OrderRepository
	webhookEventRepo repository.WebhookEventRepository
}

func NewPaymentService(
	cfg config.Payment,
	orderRepo repository.OrderRepository,
	webhookEventRepo repository.WebhookEventRepository,
) PaymentService {
	return &paymentServiceImpl{
		cfg:              cfg,
		orderRepo:        orderRepo,
		webhookEventRepo: webhookEventRepo,
	}
}

func (s *paymentServiceImpl) Process(ctx context.Context, orderID string, method model.PaymentMethod,
	paymentData json.RawMessage, amount decimal.Decimal, customer model.CustomerInfo,
	user *model.User) (*model.PaymentOutcome, error) {

	log.Printf("processing payment for order %s via %s", orderID, method)

	switch method {
	case model.PaymentMethodCard:
		var data dto.CardPaymentData
		if err := decodePaymentData(paymentData, &data); err != nil {
			return nil, err
		}
		return s.processCardPayment(orderID, &data, user)
	case model.PaymentMethodUPI:
		var data dto.UPIPaymentData
		if err := decodePaymentData(paymentData, &data); err != nil {
			return nil, err
		}
		return s.processUPIPayment(orderID, amount)
	case model.PaymentMethodNetbanking:
		var data dto.NetBankingPaymentData
		if err := decodePaymentData(paymentData, &data); err != nil {
			return nil, err
		}
		return s.processNetbankingPayment(&data)
	case model.PaymentMethodCOD:
		return s.processCODPayment(amount)
	default:
		// unreachable with validated input, reachable via raw deserialization
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPaymentMethod, method)
	}
}

func decodePaymentData(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPaymentData, err)
	}
	return nil
}

func (s *paymentServiceImpl) processCardPayment(orderID string, data *dto.CardPaymentData,
	user *model.User) (*model.PaymentOutcome, error) {

	if data.CardID == "" {
		// no stored reference: redirect for out-of-band completion, the
		// webhook moves the order to confirmed later
		return &model.PaymentOutcome{
			Status:        model.PaymentStatusPending,
			OrderStatus:   model.OrderStatusPendingPayment,
			TransactionID: refID("txn_card_"),
			PaymentID:     refID("pay_card_"),
			PaymentURL:    fmt.Sprintf("%s/pay/%s", s.cfg.GatewayBaseURL, orderID),
			Message:       "Please complete payment on secure payment page",
			Instructions:  "You will be redirected to complete your card payment",
		}, nil
	}

	var card *model.SavedCard
	for i := range user.Cards {
		if user.Cards[i].CardID == data.CardID {
			card = &user.Cards[i]
			break
		}
	}
	if card == nil {
		return nil, ErrInvalidPaymentCard
	}

	return &model.PaymentOutcome{
		Status:        model.PaymentStatusCompleted,
		OrderStatus:   model.OrderStatusConfirmed,
		TransactionID: refID("txn_card_"),
		PaymentID:     refID("pay_card_"),
		Message:       fmt.Sprintf("Payment successful using %s card ending in %s", card.Brand, card.Last4),
	}, nil
}

func (s *paymentServiceImpl) processUPIPayment(orderID string, amount decimal.Decimal) (*model.PaymentOutcome, error) {
	paymentID := refID("upi_")

	deepLink := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=Order-%s",
		s.cfg.MerchantVPA,
		url.QueryEscape(s.cfg.MerchantName),
		amount.StringFixed(2),
		orderID,
	)

	qrDataURL, err := renderQRCode(deepLink)
	if err != nil {
		return nil, fmt.Errorf("render upi qr code: %w", err)
	}

	return &model.PaymentOutcome{
		Status:       model.PaymentStatusPending,
		OrderStatus:  model.OrderStatusPendingPayment,
		PaymentID:    paymentID,
		PaymentURL:   fmt.Sprintf("%s/upi/%s", s.cfg.GatewayBaseURL, paymentID),
		QRCodeURL:    qrDataURL,
		Message:      "Scan QR code or use UPI app to complete payment",
		Instructions: fmt.Sprintf("Pay ₹%s using any UPI app by scanning the QR code", amount.StringFixed(2)),
	}, nil
}

func (s *paymentServiceImpl) processNetbankingPayment(data *dto.NetBankingPaymentData) (*model.PaymentOutcome, error) {
	if data.BankCode == "" || data.BankName == "" {
		return nil, fmt.Errorf("%w: bank_code and bank_name are required", ErrInvalidPaymentData)
	}

	paymentID := refID("nb_")

	return &model.PaymentOutcome{
		Status:       model.PaymentStatusPending,
		OrderStatus:  model.OrderStatusPendingPayment,
		PaymentID:    paymentID,
		PaymentURL:   fmt.Sprintf("%s/netbanking/%s/%s", s.cfg.GatewayBaseURL, data.BankCode, paymentID),
		Message:      fmt.Sprintf("Complete payment using %s net banking", data.BankName),
		Instructions: fmt.Sprintf("You will be redirected to %s secure banking page", data.BankName),
	}, nil
}

func (s *paymentServiceImpl) processCODPayment(amount decimal.Decimal) (*model.PaymentOutcome, error) {
	return &model.PaymentOutcome{
		Status:       model.PaymentStatusCODConfirmed,
		OrderStatus:  model.OrderStatusConfirmed,
		PaymentID:    refID("cod_"),
		Message:      fmt.Sprintf("Order confirmed! Pay ₹%s when delivered", amount.StringFixed(2)),
		Instructions: "Please keep exact change ready for delivery",
	}, nil
}

func renderQRCode(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Verify checks a client-reported payment against the stored order. The
// simulator accepts an empty signature; a non-empty one must match the
// HMAC the provider would have sent.
func (s *paymentServiceImpl) Verify(ctx context.Context, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	order, err := s.orderRepo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Payment.PaymentID == "" || order.Payment.PaymentID != req.PaymentID {
		return nil, ErrPaymentVerification
	}

	if req.Signature != "" {
		expected := signPayload(s.cfg.WebhookSecret, []byte(req.OrderID+"|"+req.PaymentID))
		if !hmac.Equal([]byte(req.Signature), []byte(expected)) {
			return nil, ErrPaymentVerification
		}
	}

	return &dto.VerifyPaymentResponse{
		Message: "Payment verified",
		Status:  string(model.PaymentStatusCompleted),
	}, nil
}

// HandleWebhook is the modeled pending_payment → confirmed transition for
// the redirect-based methods. Events are deduped by id; redelivery is a
// no-op.
func (s *paymentServiceImpl) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	expected := signPayload(s.cfg.WebhookSecret, body)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}

	var event dto.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	seen, err := s.webhookEventRepo.Exists(ctx, event.EventID)
	if err != nil {
		return fmt.Errorf("check webhook event: %w", err)
	}
	if seen {
		log.Printf("skipping duplicate webhook event %s", event.EventID)
		return nil
	}

	switch event.EventType {
	case "payment.captured":
		if _, err := s.orderRepo.MarkPaid(ctx, event.OrderID); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
	default:
		log.Printf("ignoring webhook event type %s", event.EventType)
	}

	return s.webhookEventRepo.MarkProcessed(ctx, event.EventID, event.EventType)
}

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
