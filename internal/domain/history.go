package domain

import "time"

// PurchaseHistory is an append-only per-line-item record of a completed
// purchase. Rows are created only inside the order placement transaction and
// never mutated afterwards.
type PurchaseHistory struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	OrderID     string    `json:"orderId"`
	Quantity    int       `json:"quantity"`
	PurchasedAt time.Time `json:"purchasedAt"`
}
