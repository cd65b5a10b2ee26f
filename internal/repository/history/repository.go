package history

import (
	"context"

	"storefront/internal/domain"
)

// Repository is read-only: purchase history rows are written exclusively by
// the order placement transaction.
type Repository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.PurchaseHistory, error)
}
