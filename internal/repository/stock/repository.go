package stock

import (
	"context"

	"storefront/internal/domain"
)

// Repository reads and administers stock counters. Decrements happen only
// inside the order placement transaction, never through this interface.
type Repository interface {
	Get(ctx context.Context, productID string) (*domain.Stock, error)
	Set(ctx context.Context, productID string, quantity int) error
	Residue(ctx context.Context) ([]domain.StockResidue, error)
}
