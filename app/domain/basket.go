package domain

import (
	"github.com/google/uuid"
)

// BasketLine is one (user, item, quantity) record. At most one line exists
// per (user, item) pair; adding the same item again merges quantities.
type BasketLine struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// BasketItem is a basket line joined with the current catalog details of
// its item. Prices are always read live, never snapshotted at add time.
type BasketItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ItemID      uuid.UUID `json:"item_id"`
	Quantity    int       `json:"quantity"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

// Subtotal returns the line's contribution to the basket total
func (b *BasketItem) Subtotal() float64 {
	return b.Price * float64(b.Quantity)
}
