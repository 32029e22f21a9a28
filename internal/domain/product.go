// Package domain defines the shop's entities and the ports its services
// depend on.
package domain

import (
	"time"
)

// Product is a listed catalog item. Products are immutable once listed;
// there is no update operation in this API.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProductInput carries the caller-supplied fields of a product to create.
type NewProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    *string
}

// Validate checks the invariants of a product to be listed.
func (in NewProductInput) Validate() error {
	if in.Name == "" {
		return ErrValidation("product name must not be empty")
	}
	if in.Price < 0 {
		return ErrValidation("product price must not be negative")
	}
	if in.Stock < 0 {
		return ErrValidation("product stock must not be negative")
	}
	return nil
}
