package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/repository"
	"gamerecharge/internal/domain/service"
	"gamerecharge/pkg/errors"
	"gamerecharge/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	commissionRepo repository.CommissionRepository
	syncGateway    SyncGateway
	syncTimeout    time.Duration
	baseCurrency   string
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	commissionRepo repository.CommissionRepository,
	syncGateway SyncGateway,
	syncTimeout time.Duration,
	baseCurrency string,
) *OrderUseCase {
	if syncTimeout <= 0 {
		syncTimeout = 5 * time.Second
	}
	if baseCurrency == "" {
		baseCurrency = "USD"
	}

	return &OrderUseCase{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		commissionRepo: commissionRepo,
		syncGateway:    syncGateway,
		syncTimeout:    syncTimeout,
		baseCurrency:   baseCurrency,
	}
}

type SubmitOrderInput struct {
	Customer      entity.Customer
	Game          string
	Currency      string
	Country       string
	PaymentMethod string
	Notes         string
	Vendor        string
}

type OrderFilter struct {
	Status string
	Vendor string
	// Date matches the order's creation day, formatted 2006-01-02
	Date string
}

// Submit turns the session's cart into a persisted order: validates the
// checkout, snapshots the items by value, computes total and vendor profit,
// appends to the ledger, clears the cart, and fires a best-effort addOrder
// push. The order is returned even when the push fails.
func (uc *OrderUseCase) Submit(ctx context.Context, sessionID string, input SubmitOrderInput) (*entity.Order, error) {
	cart, err := uc.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, errors.EmptyCart()
	}

	if !emailPattern.MatchString(input.Customer.Email) {
		return nil, errors.Validation("email", "must be a valid email address")
	}
	if input.Customer.GameID == "" {
		return nil, errors.Validation("game_id", "in-game id is required")
	}
	if input.PaymentMethod == "" {
		return nil, errors.Validation("payment_method", "payment method is required")
	}

	currency := input.Currency
	if currency == "" {
		currency = uc.baseCurrency
	}

	items := cart.SnapshotItems()

	table, err := uc.commissionRepo.GetTable(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:            generateOrderID(now),
		Customer:      input.Customer,
		Game:          input.Game,
		Items:         items,
		Total:         cart.Total(),
		Currency:      currency,
		Country:       input.Country,
		Vendor:        input.Vendor,
		Status:        entity.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		Profit:        table.OrderProfit(items, input.Vendor, input.Game),
		CreatedAt:     now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Cart is consumed exactly once, on successful checkout
	if err := uc.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Warn("Failed to clear cart after checkout: session=%s, error=%v", sessionID, err)
	}

	uc.pushAsync("addOrder", order.ID, func(pushCtx context.Context) error {
		return uc.syncGateway.PushOrder(pushCtx, order)
	})

	return order, nil
}

// UpdateStatus overwrites the order's status and mirrors the change to the
// sheet. Transition policy lives in entity.CanTransition.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, newStatus entity.OrderStatus) (*entity.Order, error) {
	if !entity.ValidOrderStatus(newStatus) {
		return nil, errors.Validation("status", "unknown order status "+string(newStatus))
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(order.Status, newStatus) {
		return nil, errors.BadRequest(fmt.Sprintf("cannot move order from %s to %s", order.Status, newStatus), nil)
	}

	order.Status = newStatus
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.pushAsync("updateStatus", order.ID, func(pushCtx context.Context) error {
		return uc.syncGateway.PushOrderStatus(pushCtx, order.ID, newStatus)
	})

	return order, nil
}

func (uc *OrderUseCase) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, orderID)
}

// Query returns orders matching all provided filters, in ledger order.
func (uc *OrderUseCase) Query(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, int64, error) {
	repoFilter := map[string]interface{}{}
	if filter.Status != "" {
		repoFilter["status"] = filter.Status
	}
	if filter.Vendor != "" {
		repoFilter["vendor"] = filter.Vendor
	}

	// Date is a day match on creation time, filtered after the fetch
	if filter.Date == "" {
		return uc.orderRepo.List(ctx, repoFilter, limit, offset)
	}

	orders, _, err := uc.orderRepo.List(ctx, repoFilter, 0, 0)
	if err != nil {
		return nil, 0, err
	}

	var matched []*entity.Order
	for _, order := range orders {
		if order.CreatedAt.Format("2006-01-02") == filter.Date {
			matched = append(matched, order)
		}
	}

	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return []*entity.Order{}, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

// AggregateByGame sums order totals per game over the full ledger.
func (uc *OrderUseCase) AggregateByGame(ctx context.Context) (map[string]float64, error) {
	orders, _, err := uc.orderRepo.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	revenue := map[string]float64{}
	for _, order := range orders {
		revenue[order.Game] += order.Total
	}
	return revenue, nil
}

// AggregateByVendor sums order profits per vendor over the full ledger.
// Profit was fixed at creation time, so rate changes never shift history.
func (uc *OrderUseCase) AggregateByVendor(ctx context.Context) (map[string]float64, error) {
	orders, _, err := uc.orderRepo.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	profit := map[string]float64{}
	for _, order := range orders {
		vendor := order.Vendor
		if vendor == "" {
			vendor = "unassigned"
		}
		profit[vendor] += order.Profit
	}
	return profit, nil
}

// CountByStatus breaks the ledger down for the admin dashboard.
func (uc *OrderUseCase) CountByStatus(ctx context.Context) (map[string]int64, error) {
	orders, _, err := uc.orderRepo.List(ctx, nil, 0, 0)
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	for _, order := range orders {
		counts[string(order.Status)]++
	}
	return counts, nil
}

// SheetStatistics reads the aggregate report the sheet computes over the
// synced rows. Unlike the local aggregates this reflects only what made it
// through the pushes.
func (uc *OrderUseCase) SheetStatistics(ctx context.Context, from, to string) (*service.Statistics, error) {
	if uc.syncGateway == nil {
		return nil, errors.SyncFailed("getStatistics", fmt.Errorf("no sync gateway configured"))
	}

	return uc.syncGateway.FetchStatistics(ctx, from, to)
}

func (uc *OrderUseCase) pushAsync(action, ref string, fn func(context.Context) error) {
	if uc.syncGateway == nil {
		return
	}

	// Observed only for logging; the mutation already committed locally
	go func() {
		pushCtx, cancel := context.WithTimeout(context.Background(), uc.syncTimeout)
		defer cancel()

		if err := fn(pushCtx); err != nil {
			logger.LogSyncError(action, ref, err)
		}
	}()
}

func generateOrderID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
