package entity

import (
	"time"
)

const (
	CategoryNormal      = "normal"
	CategoryPromotional = "promotional"
)

// Product is a purchasable currency bundle within a game's catalog. The ID
// doubles as the SKU key into the commission table for that game.
type Product struct {
	ID        string    `json:"id" firestore:"id"`
	Game      string    `json:"game" firestore:"game"`
	Name      string    `json:"name" firestore:"name"`
	Price     float64   `json:"price" firestore:"price"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	Category  string    `json:"category" firestore:"category"`
	Enabled   bool      `json:"enabled" firestore:"enabled"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
