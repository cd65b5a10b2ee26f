package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation indicates malformed caller input; wrap it with detail.
	ErrValidation = errors.New("validation failed")
	// ErrPermissionDenied indicates the caller does not own the target entity.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrEmptyCart indicates an order placement on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrTransientConflict indicates a concurrent-modification failure the
	// caller may retry.
	ErrTransientConflict = errors.New("transient conflict, retry")
)

// InsufficientStockError reports a line item that over-subscribes stock.
// It carries enough detail for user-facing display.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

// StockNotFoundError reports a product with no stock row, a data-integrity
// gap distinct from an unknown product.
type StockNotFoundError struct {
	ProductID string
}

func (e *StockNotFoundError) Error() string {
	return fmt.Sprintf("no stock record for product %s", e.ProductID)
}
