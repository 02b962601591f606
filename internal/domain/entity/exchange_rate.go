package entity

// ExchangeRates maps a currency code to its multiplier relative to the base
// currency (USD = 1). Rates are display-only: every persisted amount stays
// in the base currency.
type ExchangeRates map[string]float64

// Multiplier returns the rate for the code, defaulting to 1 when the code
// is missing so an unknown currency renders as base-currency amounts.
func (r ExchangeRates) Multiplier(code string) float64 {
	if rate, ok := r[code]; ok && rate > 0 {
		return rate
	}
	return 1
}

func (r ExchangeRates) Convert(amount float64, code string) float64 {
	return amount * r.Multiplier(code)
}

// FallbackExchangeRates is the hardcoded table used when the sheets backend
// cannot be reached.
func FallbackExchangeRates() ExchangeRates {
	return ExchangeRates{
		"USD": 1,
		"EUR": 0.85,
		"GBP": 0.73,
		"CAD": 1.25,
	}
}

// DefaultExchangeRates seeds a fresh install with the storefront's usual
// markets before the first sheet sync.
func DefaultExchangeRates() ExchangeRates {
	return ExchangeRates{
		"USD": 1,
		"VES": 36.5,
		"COP": 4200,
		"MXN": 17.5,
		"ARS": 350,
	}
}
