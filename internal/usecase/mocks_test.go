package usecase

import (
	"context"
	"sync"

	"gamerecharge/internal/domain/entity"
	"gamerecharge/internal/domain/service"
	"gamerecharge/pkg/errors"
)

// In-memory repositories backing the usecase tests. They mirror the
// Firestore adapters' observable behavior: not-found mapping, empty carts
// for unknown sessions, ledger ordering by insertion.

type memCartRepo struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]*entity.Cart{}}
}

func (r *memCartRepo) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.carts[sessionID]
	if !ok {
		return entity.NewCart(sessionID), nil
	}
	clone := *stored
	clone.Items = append([]entity.CartItem{}, stored.Items...)
	return &clone, nil
}

func (r *memCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *cart
	clone.Items = append([]entity.CartItem{}, cart.Items...)
	r.carts[cart.SessionID] = &clone
	return nil
}

func (r *memCartRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{}
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	r.orders = append(r.orders, &clone)
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == id {
			clone := *order
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *memOrderRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Order
	for _, order := range r.orders {
		if status, ok := filter["status"]; ok && string(order.Status) != status {
			continue
		}
		if vendor, ok := filter["vendor"]; ok && order.Vendor != vendor {
			continue
		}
		clone := *order
		matched = append(matched, &clone)
	}

	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *memOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, stored := range r.orders {
		if stored.ID == order.ID {
			clone := *order
			r.orders[idx] = &clone
			return nil
		}
	}
	return errors.NotFound("Order", nil)
}

func (r *memOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

type memCommissionRepo struct {
	mu    sync.Mutex
	table entity.CommissionTable
}

func newMemCommissionRepo() *memCommissionRepo {
	return &memCommissionRepo{table: entity.CommissionTable{}}
}

func (r *memCommissionRepo) GetTable(ctx context.Context) (entity.CommissionTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := entity.CommissionTable{}
	for game, skus := range r.table {
		for sku, vendors := range skus {
			for vendor, amount := range vendors {
				clone.Set(game, sku, vendor, amount)
			}
		}
	}
	return clone, nil
}

func (r *memCommissionRepo) GetRates(ctx context.Context, game, sku string) (map[string]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rates := map[string]float64{}
	if skus, ok := r.table[game]; ok {
		for vendor, amount := range skus[sku] {
			rates[vendor] = amount
		}
	}
	return rates, nil
}

func (r *memCommissionRepo) SetRate(ctx context.Context, game, sku, vendor string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table.Set(game, sku, vendor, amount)
	return nil
}

func (r *memCommissionRepo) SaveTable(ctx context.Context, table entity.CommissionTable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for game, skus := range table {
		for sku, vendors := range skus {
			for vendor, amount := range vendors {
				r.table.Set(game, sku, vendor, amount)
			}
		}
	}
	return nil
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = "p-" + product.Name
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	clone := *stored
	return &clone, nil
}

func (r *memProductRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if game, ok := filter["game"]; ok && product.Game != game {
			continue
		}
		if category, ok := filter["category"]; ok && product.Category != category {
			continue
		}
		if enabled, ok := filter["enabled"]; ok && product.Enabled != enabled {
			continue
		}
		clone := *product
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) SetEnabled(ctx context.Context, id string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	stored.Enabled = enabled
	return nil
}

type memVendorRepo struct {
	mu      sync.Mutex
	vendors map[string]*entity.Vendor
}

func newMemVendorRepo() *memVendorRepo {
	return &memVendorRepo{vendors: map[string]*entity.Vendor{}}
}

func (r *memVendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if vendor.ID == "" {
		vendor.ID = "v-" + vendor.Name
	}
	clone := *vendor
	r.vendors[vendor.ID] = &clone
	return nil
}

func (r *memVendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.vendors[id]
	if !ok {
		return nil, errors.NotFound("Vendor", nil)
	}
	clone := *stored
	return &clone, nil
}

func (r *memVendorRepo) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, vendor := range r.vendors {
		if vendor.Name == name {
			clone := *vendor
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Vendor", nil)
}

func (r *memVendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var vendors []*entity.Vendor
	for _, vendor := range r.vendors {
		clone := *vendor
		vendors = append(vendors, &clone)
	}
	return vendors, nil
}

func (r *memVendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vendors[vendor.ID]; !ok {
		return errors.NotFound("Vendor", nil)
	}
	clone := *vendor
	r.vendors[vendor.ID] = &clone
	return nil
}

func (r *memVendorRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vendors, id)
	return nil
}

type memRateRepo struct {
	mu    sync.Mutex
	rates entity.ExchangeRates
}

func newMemRateRepo() *memRateRepo {
	return &memRateRepo{}
}

func (r *memRateRepo) Get(ctx context.Context) (entity.ExchangeRates, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rates == nil {
		return nil, errors.NotFound("Exchange rates", nil)
	}
	clone := entity.ExchangeRates{}
	for code, rate := range r.rates {
		clone[code] = rate
	}
	return clone, nil
}

func (r *memRateRepo) Save(ctx context.Context, rates entity.ExchangeRates) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates = rates
	return nil
}

// fakeSyncGateway records pushes and can be forced to fail, standing in for
// an unreachable sheets backend.
type fakeSyncGateway struct {
	mu         sync.Mutex
	fail       bool
	orderIDs   []string
	statusRefs []string
	rates      entity.ExchangeRates
	rateErr    error
}

func (g *fakeSyncGateway) fakeErr(action string) error {
	if g.fail {
		return errors.SyncFailed(action, nil)
	}
	return nil
}

func (g *fakeSyncGateway) PushOrder(ctx context.Context, order *entity.Order) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orderIDs = append(g.orderIDs, order.ID)
	return g.fakeErr("addOrder")
}

func (g *fakeSyncGateway) PushOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statusRefs = append(g.statusRefs, orderID)
	return g.fakeErr("updateStatus")
}

func (g *fakeSyncGateway) PushProfits(ctx context.Context, table entity.CommissionTable) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fakeErr("updateProfits")
}

func (g *fakeSyncGateway) PushRates(ctx context.Context, rates entity.ExchangeRates) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fakeErr("updateRates")
}

func (g *fakeSyncGateway) FetchExchangeRates(ctx context.Context) (entity.ExchangeRates, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rateErr != nil {
		return nil, g.rateErr
	}
	return g.rates, nil
}

func (g *fakeSyncGateway) FetchStatistics(ctx context.Context, from, to string) (*service.Statistics, error) {
	return &service.Statistics{}, nil
}
