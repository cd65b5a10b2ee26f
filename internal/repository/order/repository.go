package order

import (
	"context"
	"time"

	"storefront/internal/domain"
)

// PlaceInput carries everything the placement transaction needs. The cart
// ownership check runs inside the transaction so it cannot race with a
// concurrent placement of the same cart.
type PlaceInput struct {
	CustomerID string
	CartID     string
	DeliveryAt *time.Time
}

type Repository interface {
	// Place atomically validates stock for every cart item, decrements it,
	// creates the order, appends purchase history and deletes the cart.
	// It returns domain.ErrTransientConflict for lock/serialization failures
	// the caller may retry.
	Place(ctx context.Context, in PlaceInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
