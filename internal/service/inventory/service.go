package inventory

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	stockrepo "storefront/internal/repository/stock"
)

type Service struct {
	repo stockRepo
}

type stockRepo interface {
	Get(ctx context.Context, productID string) (*domain.Stock, error)
	Set(ctx context.Context, productID string, quantity int) error
	Residue(ctx context.Context) ([]domain.StockResidue, error)
}

func New(repo stockrepo.Repository) *Service {
	return &Service{repo: repo}
}

// StockFor returns the available quantity for a product.
func (s *Service) StockFor(ctx context.Context, productID string) (int, error) {
	st, err := s.repo.Get(ctx, productID)
	if err != nil {
		return 0, err
	}
	return st.Quantity, nil
}

// SetStock writes an absolute quantity. Import/seed path only; order
// placement decrements stock inside its own transaction.
func (s *Service) SetStock(ctx context.Context, productID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	return s.repo.Set(ctx, productID, quantity)
}

// Residue lists remaining stock per product for reporting.
func (s *Service) Residue(ctx context.Context) ([]domain.StockResidue, error) {
	return s.repo.Residue(ctx)
}
