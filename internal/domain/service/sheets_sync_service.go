package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/pkg/errors"
	"gamerecharge/pkg/logger"
)

// SheetsSyncService mirrors local state to the Google Sheets backend (an
// Apps Script web app). Every call is best-effort: the local store is the
// source of truth and a failed push is logged by the caller, never retried
// here and never fatal to the mutation that triggered it.
type SheetsSyncService struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewSheetsSyncService(apiURL, apiKey string, timeout time.Duration) *SheetsSyncService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &SheetsSyncService{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// syncRequest is the wire envelope the sheet expects for every push.
type syncRequest struct {
	Action    string      `json:"action"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type orderRow struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Game          string  `json:"game"`
	Items         string  `json:"items"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	Vendor        string  `json:"vendor"`
	Status        string  `json:"status"`
	Country       string  `json:"country"`
	PaymentMethod string  `json:"paymentMethod"`
	Profit        float64 `json:"profit"`
}

// Statistics is the sheet's aggregate report shape.
type Statistics struct {
	TotalOrders    int64              `json:"totalOrders"`
	TotalRevenue   float64            `json:"totalRevenue"`
	TotalProfit    float64            `json:"totalProfit"`
	SalesByGame    map[string]float64 `json:"salesByGame"`
	ProfitByVendor map[string]float64 `json:"profitByVendor"`
}

func (s *SheetsSyncService) PushOrder(ctx context.Context, order *entity.Order) error {
	// Items go over as a JSON string, one sheet cell
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return errors.SyncFailed("addOrder", err)
	}

	row := orderRow{
		OrderID:       order.ID,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		CustomerPhone: order.Customer.Phone,
		Game:          order.Game,
		Items:         string(itemsJSON),
		Total:         order.Total,
		Currency:      order.Currency,
		Vendor:        order.Vendor,
		Status:        string(order.Status),
		Country:       order.Country,
		PaymentMethod: order.PaymentMethod,
		Profit:        order.Profit,
	}

	return s.post(ctx, "/orders", "addOrder", row)
}

func (s *SheetsSyncService) PushOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	return s.post(ctx, "/orders", "updateStatus", map[string]interface{}{
		"orderId": orderID,
		"status":  string(status),
	})
}

func (s *SheetsSyncService) PushProfits(ctx context.Context, table entity.CommissionTable) error {
	return s.post(ctx, "/profits", "updateProfits", table)
}

func (s *SheetsSyncService) PushRates(ctx context.Context, rates entity.ExchangeRates) error {
	return s.post(ctx, "/exchange-rates", "updateRates", rates)
}

// FetchExchangeRates reads the sheet's rate table. Any failure falls back to
// the hardcoded default table so price display keeps working offline.
func (s *SheetsSyncService) FetchExchangeRates(ctx context.Context) (entity.ExchangeRates, error) {
	body, err := s.get(ctx, "/exchange-rates")
	if err != nil {
		logger.Warn("Falling back to default exchange rates: %v", err)
		return entity.FallbackExchangeRates(), nil
	}

	var rates entity.ExchangeRates
	if err := json.Unmarshal(body, &rates); err != nil {
		logger.Warn("Falling back to default exchange rates: %v", err)
		return entity.FallbackExchangeRates(), nil
	}

	return rates, nil
}

func (s *SheetsSyncService) FetchStatistics(ctx context.Context, from, to string) (*Statistics, error) {
	path := "/statistics"
	if from != "" && to != "" {
		path = fmt.Sprintf("/statistics?from=%s&to=%s", from, to)
	}

	body, err := s.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var stats Statistics
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, errors.SyncFailed("getStatistics", err)
	}

	return &stats, nil
}

func (s *SheetsSyncService) post(ctx context.Context, path, action string, data interface{}) error {
	payload := syncRequest{
		Action:    action,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return errors.SyncFailed(action, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.apiURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return errors.SyncFailed(action, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return errors.SyncFailed(action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return errors.SyncFailed(action, fmt.Errorf("sheets API returned %d: %s", resp.StatusCode, string(body)))
	}

	return nil
}

func (s *SheetsSyncService) get(ctx context.Context, path string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", s.apiURL+path, nil)
	if err != nil {
		return nil, errors.SyncFailed("get", err)
	}

	if s.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.SyncFailed("get", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.SyncFailed("get", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.SyncFailed("get", fmt.Errorf("sheets API returned %d: %s", resp.StatusCode, string(body)))
	}

	return body, nil
}
