package entity

import (
	"time"
)

type CartItem struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ProductID string    `json:"product_id" firestore:"productId"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	AddedAt   time.Time `json:"added_at" firestore:"addedAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type CartLine struct {
	Item    *CartItem `json:"item"`
	Product *Product  `json:"product"`
}

// CartSummary totals are always derived from the lines, never stored.
type CartSummary struct {
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	Subtotal  float64    `json:"subtotal"`
}
