package service

import (
	"context"

	"shopcart-backend/internal/model"
	"shopcart-backend/internal/repository"
)

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	User     *model.User
	FindErr  error
	ClearErr error

	ClearedEmails []string
}

func (m *MockUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	if m.User == nil || m.User.Email != email {
		return nil, repository.ErrUserNotFound
	}
	return m.User, nil
}

func (m *MockUserRepository) ClearCart(_ context.Context, email string) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.ClearedEmails = append(m.ClearedEmails, email)
	if m.User != nil && m.User.Email == email {
		m.User.Cart = nil
	}
	return nil
}

func (m *MockUserRepository) ListSavedCards(_ context.Context, email string) ([]model.SavedCard, error) {
	if m.User == nil || m.User.Email != email {
		return nil, repository.ErrUserNotFound
	}
	return m.User.Cards, nil
}

func (m *MockUserRepository) AddCard(_ context.Context, _ string, card model.SavedCard) error {
	m.User.Cards = append(m.User.Cards, card)
	return nil
}

func (m *MockUserRepository) RemoveCard(_ context.Context, _, cardID string) error {
	kept := m.User.Cards[:0]
	for _, c := range m.User.Cards {
		if c.CardID != cardID {
			kept = append(kept, c)
		}
	}
	m.User.Cards = kept
	return nil
}

func (m *MockUserRepository) SetDefaultCard(_ context.Context, _, cardID string) error {
	m.User.DefaultCard = cardID
	return nil
}

// MockOrderRepository implements repository.OrderRepository for testing
type MockOrderRepository struct {
	CreateErr error
	FindErr   error

	CreatedOrder *model.Order // captures the order passed to Create
	Orders       map[string]*model.Order
	PaidOrderIDs []string
}

func (m *MockOrderRepository) Create(_ context.Context, order *model.Order) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.CreatedOrder = order
	return nil
}

func (m *MockOrderRepository) FindByOrderID(_ context.Context, orderID string) (*model.Order, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	order, ok := m.Orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

func (m *MockOrderRepository) FindRecent(_ context.Context, email string, limit int) ([]*model.Order, error) {
	var orders []*model.Order
	for _, o := range m.Orders {
		if o.Email == email && len(orders) < limit {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *MockOrderRepository) MarkPaid(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := m.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusConfirmed
	order.Payment.Status = model.PaymentStatusCompleted
	m.PaidOrderIDs = append(m.PaidOrderIDs, orderID)
	return order, nil
}

// MockCartClearRepository implements repository.CartClearRepository for testing
type MockCartClearRepository struct {
	EnqueueErr error

	EnqueuedOrderIDs []string
	DoneOrderIDs     []string
}

func (m *MockCartClearRepository) Enqueue(_ context.Context, orderID, _, _ string) error {
	if m.EnqueueErr != nil {
		return m.EnqueueErr
	}
	m.EnqueuedOrderIDs = append(m.EnqueuedOrderIDs, orderID)
	return nil
}

func (m *MockCartClearRepository) Pending(_ context.Context, _ int) ([]*model.CartClearTask, error) {
	return nil, nil
}

func (m *MockCartClearRepository) MarkDone(_ context.Context, orderID string) error {
	m.DoneOrderIDs = append(m.DoneOrderIDs, orderID)
	return nil
}

func (m *MockCartClearRepository) RecordFailure(_ context.Context, _, _ string) error {
	return nil
}

// MockWebhookEventRepository implements repository.WebhookEventRepository for testing
type MockWebhookEventRepository struct {
	Seen map[string]bool

	ProcessedEventIDs []string
}

func (m *MockWebhookEventRepository) Exists(_ context.Context, eventID string) (bool, error) {
	return m.Seen[eventID], nil
}

func (m *MockWebhookEventRepository) MarkProcessed(_ context.Context, eventID, _ string) error {
	m.ProcessedEventIDs = append(m.ProcessedEventIDs, eventID)
	return nil
}
