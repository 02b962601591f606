package entity

import (
	"time"
)

// Vendor is the human agent who fulfills orders. The name is the join key
// into the commission table and the owner of completed orders in reports.
type Vendor struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Contact   string    `json:"contact,omitempty" firestore:"contact,omitempty"`
	Avatar    string    `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
