package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamerecharge/internal/domain/entity"
	apperrors "gamerecharge/pkg/errors"
)

type orderFixture struct {
	uc             *OrderUseCase
	cartRepo       *memCartRepo
	orderRepo      *memOrderRepo
	commissionRepo *memCommissionRepo
	gateway        *fakeSyncGateway
}

func newOrderFixture() *orderFixture {
	cartRepo := newMemCartRepo()
	orderRepo := newMemOrderRepo()
	commissionRepo := newMemCommissionRepo()
	gateway := &fakeSyncGateway{}

	return &orderFixture{
		uc:             NewOrderUseCase(orderRepo, cartRepo, commissionRepo, gateway, 0, "USD"),
		cartRepo:       cartRepo,
		orderRepo:      orderRepo,
		commissionRepo: commissionRepo,
		gateway:        gateway,
	}
}

func (f *orderFixture) fillCart(t *testing.T, sessionID string, items ...entity.CartItem) {
	t.Helper()
	cart := entity.NewCart(sessionID)
	for _, item := range items {
		cart.AddItem(item.ProductID, item.Name, item.UnitPrice, item.Quantity)
	}
	require.NoError(t, f.cartRepo.Save(context.Background(), cart))
}

func validCustomer() entity.Customer {
	return entity.Customer{
		Name:   "Carlos",
		Email:  "carlos@example.com",
		Phone:  "+58 412 0000000",
		GameID: "987654321",
	}
}

func TestSubmitOrderComputesTotalAndProfit(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 2})
	require.NoError(t, f.commissionRepo.SetRate(ctx, "lords-mobile", "lm_2", "David", 2.25))

	order, err := f.uc.Submit(ctx, "s1", SubmitOrderInput{
		Customer:      validCustomer(),
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})

	require.NoError(t, err)
	assert.InDelta(t, 9.98, order.Total, 0.0001)
	assert.InDelta(t, 4.50, order.Profit, 0.0001)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "USD", order.Currency)
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, 1, f.orderRepo.count())
}

func TestSubmitEmptyCartFails(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.Submit(context.Background(), "empty-session", SubmitOrderInput{
		Customer:      validCustomer(),
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})

	assert.True(t, apperrors.Is(err, "EMPTY_CART"))
	assert.Equal(t, 0, f.orderRepo.count())
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	f := newOrderFixture()

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 1})

	customer := validCustomer()
	customer.Email = "not-an-email"

	_, err := f.uc.Submit(context.Background(), "s1", SubmitOrderInput{
		Customer:      customer,
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})

	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
	assert.Equal(t, 0, f.orderRepo.count())
}

func TestSubmitClearsCartOnce(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 1})

	_, err := f.uc.Submit(ctx, "s1", SubmitOrderInput{
		Customer:      validCustomer(),
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})
	require.NoError(t, err)

	cart, err := f.cartRepo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestSubmitSnapshotsItemsByValue(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 2})

	order, err := f.uc.Submit(ctx, "s1", SubmitOrderInput{
		Customer:      validCustomer(),
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})
	require.NoError(t, err)

	// Later cart activity must not touch the submitted order
	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_5", Name: "6480 Diamonds", UnitPrice: 99.99, Quantity: 9})

	stored, err := f.uc.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "lm_2", stored.Items[0].ProductID)
	assert.Equal(t, 2, stored.Items[0].Quantity)
}

func TestSubmitSucceedsWhenSyncPushFails(t *testing.T) {
	f := newOrderFixture()
	f.gateway.fail = true

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 1})

	order, err := f.uc.Submit(context.Background(), "s1", SubmitOrderInput{
		Customer:      validCustomer(),
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})

	// Local success is independent of remote success
	require.NoError(t, err)
	assert.Equal(t, 1, f.orderRepo.count())

	stored, err := f.uc.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestProfitIsNotRecomputedAfterRateChange(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 2})
	require.NoError(t, f.commissionRepo.SetRate(ctx, "lords-mobile", "lm_2", "David", 2.25))

	order, err := f.uc.Submit(ctx, "s1", SubmitOrderInput{
		Customer:      validCustomer(),
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})
	require.NoError(t, err)

	require.NoError(t, f.commissionRepo.SetRate(ctx, "lords-mobile", "lm_2", "David", 100))

	stored, err := f.uc.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.50, stored.Profit, 0.0001)
}

func TestUpdateStatusUnknownOrderFails(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.UpdateStatus(context.Background(), "ORD-123", entity.OrderStatusCompleted)

	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
	assert.Equal(t, 0, f.orderRepo.count())
}

func TestUpdateStatusOverwrites(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 1})
	order, err := f.uc.Submit(ctx, "s1", SubmitOrderInput{
		Customer:      validCustomer(),
		Game:          "lords-mobile",
		PaymentMethod: "paypal",
		Vendor:        "David",
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateStatus(ctx, order.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, updated.Status)

	// Current policy is permissive: completed may go back to processing
	updated, err = f.uc.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.UpdateStatus(context.Background(), "ORD-123", entity.OrderStatus("shipped"))
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestQueryFiltersAndLedgerOrder(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	submit := func(session, vendor string) *entity.Order {
		f.fillCart(t, session, entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 1})
		order, err := f.uc.Submit(ctx, session, SubmitOrderInput{
			Customer:      validCustomer(),
			Game:          "lords-mobile",
			PaymentMethod: "paypal",
			Vendor:        vendor,
		})
		require.NoError(t, err)
		return order
	}

	first := submit("s1", "David")
	second := submit("s2", "Ernesto")
	third := submit("s3", "David")

	_, err := f.uc.UpdateStatus(ctx, second.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)

	byVendor, _, err := f.uc.Query(ctx, OrderFilter{Vendor: "David"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, byVendor, 2)
	assert.Equal(t, first.ID, byVendor[0].ID)
	assert.Equal(t, third.ID, byVendor[1].ID)

	byBoth, _, err := f.uc.Query(ctx, OrderFilter{Status: "completed", Vendor: "Ernesto"}, 0, 0)
	require.NoError(t, err)
	require.Len(t, byBoth, 1)
	assert.Equal(t, second.ID, byBoth[0].ID)

	none, _, err := f.uc.Query(ctx, OrderFilter{Status: "cancelled"}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAggregates(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	require.NoError(t, f.commissionRepo.SetRate(ctx, "lords-mobile", "lm_2", "David", 2.25))
	require.NoError(t, f.commissionRepo.SetRate(ctx, "free-fire", "ff_1", "Satoru", 0.70))

	f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 2})
	_, err := f.uc.Submit(ctx, "s1", SubmitOrderInput{
		Customer: validCustomer(), Game: "lords-mobile", PaymentMethod: "paypal", Vendor: "David",
	})
	require.NoError(t, err)

	f.fillCart(t, "s2", entity.CartItem{ProductID: "ff_1", Name: "100 Diamonds", UnitPrice: 1.99, Quantity: 3})
	_, err = f.uc.Submit(ctx, "s2", SubmitOrderInput{
		Customer: validCustomer(), Game: "free-fire", PaymentMethod: "zelle", Vendor: "Satoru",
	})
	require.NoError(t, err)

	revenue, err := f.uc.AggregateByGame(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 9.98, revenue["lords-mobile"], 0.0001)
	assert.InDelta(t, 5.97, revenue["free-fire"], 0.0001)

	profit, err := f.uc.AggregateByVendor(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 4.50, profit["David"], 0.0001)
	assert.InDelta(t, 2.10, profit["Satoru"], 0.0001)

	counts, err := f.uc.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["pending"])
}

func TestOrderIDsAreUnique(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		f.fillCart(t, "s1", entity.CartItem{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 1})
		order, err := f.uc.Submit(ctx, "s1", SubmitOrderInput{
			Customer: validCustomer(), Game: "lords-mobile", PaymentMethod: "paypal", Vendor: "David",
		})
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}
