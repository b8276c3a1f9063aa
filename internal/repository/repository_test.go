package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopcart-backend/internal/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Order{},
		&model.WebhookEvent{},
		&model.CartClearTask{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := &model.User{
		Email: "buyer@example.com",
		Name:  "Test Buyer",
		Cart: []model.CartLine{
			{ProductID: "P1", Name: "Phone", Price: decimal.NewFromInt(10000), Quantity: 1},
		},
		Cards: []model.SavedCard{
			{CardID: "card-1", Last4: "4242", Brand: "Visa"},
		},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := testDB(t)
	seedUser(t, db)
	repo := NewUserRepository(db)

	user, err := repo.FindByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Test Buyer", user.Name)
	require.Len(t, user.Cart, 1)
	assert.True(t, user.Cart[0].Price.Equal(decimal.NewFromInt(10000)))

	_, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_ClearCart(t *testing.T) {
	db := testDB(t)
	seedUser(t, db)
	repo := NewUserRepository(db)

	require.NoError(t, repo.ClearCart(context.Background(), "buyer@example.com"))

	user, err := repo.FindByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	assert.Empty(t, user.Cart)

	// clearing twice is a no-op, not an error
	assert.NoError(t, repo.ClearCart(context.Background(), "buyer@example.com"))

	assert.ErrorIs(t, repo.ClearCart(context.Background(), "nobody@example.com"), ErrUserNotFound)
}

func TestUserRepository_Cards(t *testing.T) {
	db := testDB(t)
	seedUser(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AddCard(ctx, "buyer@example.com",
		model.SavedCard{CardID: "card-2", Last4: "1881", Brand: "Mastercard"}))

	cards, err := repo.ListSavedCards(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	require.NoError(t, repo.SetDefaultCard(ctx, "buyer@example.com", "card-2"))
	user, err := repo.FindByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "card-2", user.DefaultCard)

	require.NoError(t, repo.RemoveCard(ctx, "buyer@example.com", "card-1"))
	cards, err = repo.ListSavedCards(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "card-2", cards[0].CardID)
}

func testOrder(orderID, email string, createdAt time.Time) *model.Order {
	return &model.Order{
		OrderID: orderID,
		Email:   email,
		Items: []model.CartLine{
			{ProductID: "P1", Name: "Phone", Price: decimal.NewFromInt(10000), Quantity: 1},
		},
		Pricing: model.PricingSummary{
			Subtotal:    decimal.NewFromInt(10000),
			DeliveryFee: decimal.NewFromInt(40),
			Total:       decimal.NewFromInt(10040),
		},
		DeliveryOption: model.DeliveryStandard,
		PaymentMethod:  model.PaymentMethodUPI,
		Payment: model.PaymentRecord{
			Status:    model.PaymentStatusPending,
			PaymentID: "upi_abc12345",
		},
		Shipping: model.ShippingInfo{
			TrackingID:        "TRK" + orderID,
			EstimatedDelivery: createdAt.AddDate(0, 0, 7).Format("2006-01-02"),
			Status:            model.ShippingStatusPending,
		},
		Status:    model.OrderStatusPendingPayment,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("ORDAAA11111", "buyer@example.com", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.FindByOrderID(ctx, "ORDAAA11111")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", got.Email)
	assert.True(t, got.Pricing.Total.Equal(decimal.NewFromInt(10040)))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Phone", got.Items[0].Name)

	_, err = repo.FindByOrderID(ctx, "ORDMISSING1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderRepository_FindRecent(t *testing.T) {
	db := testDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		order := testOrder(
			"ORD0000000"+string(rune('A'+i)),
			"buyer@example.com",
			base.Add(time.Duration(i)*time.Minute),
		)
		require.NoError(t, repo.Create(ctx, order))
	}
	require.NoError(t, repo.Create(ctx, testOrder("ORDOTHER111", "other@example.com", base)))

	orders, err := repo.FindRecent(ctx, "buyer@example.com", 5)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	// newest first
	assert.Equal(t, "ORD0000000G", orders[0].OrderID)
	for _, o := range orders {
		assert.Equal(t, "buyer@example.com", o.Email)
	}
}

func TestOrderRepository_MarkPaid(t *testing.T) {
	db := testDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testOrder("ORDAAA11111", "buyer@example.com", time.Now().UTC())))

	order, err := repo.MarkPaid(ctx, "ORDAAA11111")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, order.Status)
	assert.Equal(t, model.PaymentStatusCompleted, order.Payment.Status)

	got, err := repo.FindByOrderID(ctx, "ORDAAA11111")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, got.Status)
	assert.Equal(t, model.PaymentStatusCompleted, got.Payment.Status)

	// redelivered webhook: second MarkPaid passes through unchanged
	again, err := repo.MarkPaid(ctx, "ORDAAA11111")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, again.Status)

	_, err = repo.MarkPaid(ctx, "ORDMISSING1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestWebhookEventRepository(t *testing.T) {
	db := testDB(t)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	seen, err := repo.Exists(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, repo.MarkProcessed(ctx, "evt-1", "payment.captured"))

	seen, err = repo.Exists(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestCartClearRepository(t *testing.T) {
	db := testDB(t)
	repo := NewCartClearRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Enqueue(ctx, "ORDAAA11111", "buyer@example.com", "store unavailable"))
	// re-enqueueing the same order id is a no-op
	require.NoError(t, repo.Enqueue(ctx, "ORDAAA11111", "buyer@example.com", "again"))

	tasks, err := repo.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "ORDAAA11111", tasks[0].OrderID)
	assert.Equal(t, 1, tasks[0].Attempts)

	require.NoError(t, repo.RecordFailure(ctx, "ORDAAA11111", "still down"))
	tasks, err = repo.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].Attempts)
	assert.Equal(t, "still down", tasks[0].LastError)

	require.NoError(t, repo.MarkDone(ctx, "ORDAAA11111"))
	tasks, err = repo.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
