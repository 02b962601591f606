package entity

// CommissionTable is the canonical nested commission mapping:
// game -> sku -> vendor -> unit profit in the base currency. Missing entries
// read as 0 so an unconfigured combination never blocks a checkout.
type CommissionTable map[string]map[string]map[string]float64

// Rate returns the stored unit profit, or 0 when any level of the key path
// is absent. Never fails.
func (t CommissionTable) Rate(game, sku, vendor string) float64 {
	skus, ok := t[game]
	if !ok {
		return 0
	}
	vendors, ok := skus[sku]
	if !ok {
		return 0
	}
	return vendors[vendor]
}

// Set upserts a cell, creating intermediate levels as needed.
func (t CommissionTable) Set(game, sku, vendor string, amount float64) {
	skus, ok := t[game]
	if !ok {
		skus = make(map[string]map[string]float64)
		t[game] = skus
	}
	vendors, ok := skus[sku]
	if !ok {
		vendors = make(map[string]float64)
		skus[sku] = vendors
	}
	vendors[vendor] = amount
}

// OrderProfit sums the vendor's unit profit times quantity over the order's
// items. Items with no commission entry contribute 0.
func (t CommissionTable) OrderProfit(items []CartItem, vendor, game string) float64 {
	profit := 0.0
	for _, item := range items {
		profit += t.Rate(game, item.ProductID, vendor) * float64(item.Quantity)
	}
	return profit
}

// FlatView derives the legacy productId-keyed map ("game/sku" id) for
// consumers that still speak the flat shape. It is a view, not a second
// source of truth.
func (t CommissionTable) FlatView() map[string]map[string]float64 {
	flat := make(map[string]map[string]float64)
	for game, skus := range t {
		for sku, vendors := range skus {
			cell := make(map[string]float64, len(vendors))
			for vendor, amount := range vendors {
				cell[vendor] = amount
			}
			flat[game+"/"+sku] = cell
		}
	}
	return flat
}

// DefaultCommissionTable seeds a fresh install with the storefront's
// standing incentive structure.
func DefaultCommissionTable() CommissionTable {
	return CommissionTable{
		"lords-mobile": {
			"lm_1": {"XJoseDharckX": 0.50, "David": 0.45, "Ernesto": 0.40, "Satoru": 0.35},
			"lm_2": {"XJoseDharckX": 2.50, "David": 2.25, "Ernesto": 2.00, "Satoru": 1.75},
			"lm_3": {"XJoseDharckX": 8.00, "David": 7.50, "Ernesto": 7.00, "Satoru": 6.50},
			"lm_4": {"XJoseDharckX": 15.00, "David": 14.00, "Ernesto": 13.00, "Satoru": 12.00},
			"lm_5": {"XJoseDharckX": 25.00, "David": 23.00, "Ernesto": 21.00, "Satoru": 19.00},
		},
		"free-fire": {
			"ff_1": {"XJoseDharckX": 1.00, "David": 0.90, "Ernesto": 0.80, "Satoru": 0.70},
			"ff_2": {"XJoseDharckX": 3.00, "David": 2.75, "Ernesto": 2.50, "Satoru": 2.25},
			"ff_3": {"XJoseDharckX": 5.00, "David": 4.50, "Ernesto": 4.00, "Satoru": 3.50},
		},
		"blood-strike": {
			"bs_1": {"XJoseDharckX": 0.60, "David": 0.55, "Ernesto": 0.50, "Satoru": 0.45},
			"bs_2": {"XJoseDharckX": 3.00, "David": 2.75, "Ernesto": 2.50, "Satoru": 2.25},
		},
		"genshin-impact": {
			"gi_1": {"XJoseDharckX": 1.00, "David": 0.90, "Ernesto": 0.80, "Satoru": 0.70},
			"gi_2": {"XJoseDharckX": 5.00, "David": 4.50, "Ernesto": 4.00, "Satoru": 3.50},
		},
	}
}
