package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Currency    string    `json:"currency"`
	CategoryID  *string   `json:"categoryId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stock is the authoritative available-quantity counter for one product.
// There is exactly one row per product; only the order placement transaction
// decrements it.
type Stock struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// StockResidue is the export view of remaining stock, joined with the
// product name for reporting.
type StockResidue struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}
