package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamerecharge/internal/domain/entity"
	apperrors "gamerecharge/pkg/errors"
)

func TestPushOrderSendsSheetEnvelope(t *testing.T) {
	var captured syncRequest
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	svc := NewSheetsSyncService(server.URL, "test-key", 2*time.Second)

	order := &entity.Order{
		ID:       "ORD-1700000000000-abc",
		Customer: entity.Customer{Name: "Carlos", Email: "carlos@example.com", GameID: "987"},
		Game:     "lords-mobile",
		Items:    []entity.CartItem{{ProductID: "lm_2", Name: "300 Diamonds", UnitPrice: 4.99, Quantity: 2}},
		Total:    9.98,
		Currency: "USD",
		Vendor:   "David",
		Status:   entity.OrderStatusPending,
		Profit:   4.50,
	}

	require.NoError(t, svc.PushOrder(context.Background(), order))

	assert.Equal(t, "/orders", capturedPath)
	assert.Equal(t, "addOrder", captured.Action)
	assert.NotEmpty(t, captured.Timestamp)

	row := captured.Data.(map[string]interface{})
	assert.Equal(t, "ORD-1700000000000-abc", row["orderId"])
	assert.Equal(t, "David", row["vendor"])
	assert.Equal(t, "pending", row["status"])
	// Items travel as a JSON string, one sheet cell
	assert.Contains(t, row["items"], "lm_2")
}

func TestPushStatusNonSuccessIsSyncError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sheet quota exceeded", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewSheetsSyncService(server.URL, "", 2*time.Second)

	err := svc.PushOrderStatus(context.Background(), "ORD-1", entity.OrderStatusCompleted)
	assert.True(t, apperrors.Is(err, "SYNC_ERROR"))
}

func TestPushTransportFailureIsSyncError(t *testing.T) {
	svc := NewSheetsSyncService("http://127.0.0.1:1", "", 500*time.Millisecond)

	err := svc.PushProfits(context.Background(), entity.CommissionTable{})
	assert.True(t, apperrors.Is(err, "SYNC_ERROR"))
}

func TestFetchExchangeRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchange-rates", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"USD":1,"EUR":0.91,"VES":40.2}`))
	}))
	defer server.Close()

	svc := NewSheetsSyncService(server.URL, "", 2*time.Second)

	rates, err := svc.FetchExchangeRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.91, rates["EUR"])
	assert.Equal(t, 40.2, rates["VES"])
}

func TestFetchExchangeRatesFallsBackOnFailure(t *testing.T) {
	svc := NewSheetsSyncService("http://127.0.0.1:1", "", 500*time.Millisecond)

	rates, err := svc.FetchExchangeRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.FallbackExchangeRates(), rates)
}

func TestFetchStatistics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-01-31", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalOrders":12,"totalRevenue":119.88,"totalProfit":54,"salesByGame":{"lords-mobile":119.88},"profitByVendor":{"David":54}}`))
	}))
	defer server.Close()

	svc := NewSheetsSyncService(server.URL, "", 2*time.Second)

	stats, err := svc.FetchStatistics(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, 54.0, stats.ProfitByVendor["David"])
}
