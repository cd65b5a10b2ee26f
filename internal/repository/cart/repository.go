package cart

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, customerID string) (*domain.Cart, error)
	// ListByCustomer returns every cart owned by the customer, earliest first.
	// More than one row is a data-integrity anomaly the service repairs.
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, ids ...string) error
	// UpsertItem adds quantity to the (cart, product) item, creating it if
	// absent. The increment is atomic.
	UpsertItem(ctx context.Context, cartID, productID string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID string) error
}
