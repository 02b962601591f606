package entity

import (
	"time"
)

// CartItem is one line of a shopper's cart. UnitPrice is always in the base
// currency; display conversion happens only at read time.
type CartItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	UnitPrice float64 `json:"unit_price" firestore:"unitPrice"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Cart is the ordered collection of lines owned by one shopper session.
// It holds at most one line per product id; adding an existing id merges
// into the line instead of duplicating it.
type Cart struct {
	SessionID string     `json:"session_id" firestore:"sessionId"`
	Items     []CartItem `json:"items" firestore:"items"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
}

func NewCart(sessionID string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Items:     []CartItem{},
	}
}

// AddItem merges into an existing line when the product is already in the
// cart, otherwise appends a new line. The cart does not check the catalog:
// enablement is enforced by the caller, not here.
func (c *Cart) AddItem(productID, name string, unitPrice float64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity += quantity
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
}

// RemoveItem drops the line for the product. No-op if the product is absent.
func (c *Cart) RemoveItem(productID string) {
	filtered := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	c.Items = filtered
}

// SetQuantity sets the line quantity exactly. A quantity of zero or less
// removes the line, same as RemoveItem.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return
		}
	}
}

// Total sums unit price times quantity over all lines, in the base currency.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// TotalInCurrency converts the total for display. An unknown currency code
// falls back to a multiplier of 1.
func (c *Cart) TotalInCurrency(rates ExchangeRates, code string) float64 {
	return c.Total() * rates.Multiplier(code)
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// SnapshotItems copies the lines by value so a submitted order is not
// affected by later cart mutation.
func (c *Cart) SnapshotItems() []CartItem {
	snapshot := make([]CartItem, len(c.Items))
	copy(snapshot, c.Items)
	return snapshot
}
