package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition is the single choke point for status-transition policy.
// The current policy is permissive: any known status may follow any other.
// Tightening it (e.g. making cancelled terminal) is a change here only.
func CanTransition(from, to OrderStatus) bool {
	return ValidOrderStatus(to)
}

// Customer captures the buyer's contact and in-game identity at checkout.
type Customer struct {
	Name   string `json:"name" firestore:"name"`
	Email  string `json:"email" firestore:"email"`
	Phone  string `json:"phone,omitempty" firestore:"phone,omitempty"`
	GameID string `json:"game_id" firestore:"gameId"`
}

// Order is one row of the ledger. Items are a value snapshot of the cart at
// checkout; Profit is computed once at creation from the commission table
// and is intentionally not recomputed when rates change later.
type Order struct {
	ID            string      `json:"id" firestore:"id"`
	Customer      Customer    `json:"customer" firestore:"customer"`
	Game          string      `json:"game" firestore:"game"`
	Items         []CartItem  `json:"items" firestore:"items"`
	Total         float64     `json:"total" firestore:"total"`
	Currency      string      `json:"currency" firestore:"currency"`
	Country       string      `json:"country,omitempty" firestore:"country,omitempty"`
	Vendor        string      `json:"vendor" firestore:"vendor"`
	Status        OrderStatus `json:"status" firestore:"status"`
	PaymentMethod string      `json:"payment_method" firestore:"paymentMethod"`
	Notes         string      `json:"notes,omitempty" firestore:"notes,omitempty"`
	Profit        float64     `json:"profit" firestore:"profit"`
	CreatedAt     time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time   `json:"updated_at" firestore:"updatedAt"`
}
