package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Item represents a catalog item
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
}

// NewItem creates a new catalog item
func NewItem(name, description string, price float64, imageURL *string) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("item price must not be negative")
	}

	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}, nil
}
