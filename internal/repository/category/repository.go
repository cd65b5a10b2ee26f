package category

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Ensure(ctx context.Context, name string) (*domain.Category, error)
}
