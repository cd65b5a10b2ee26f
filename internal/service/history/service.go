package history

import (
	"context"

	"storefront/internal/domain"
	historyrepo "storefront/internal/repository/history"
)

type Service struct {
	repo historyrepo.Repository
}

func New(repo historyrepo.Repository) *Service {
	return &Service{repo: repo}
}

// ListByCustomer returns the customer's purchases, newest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.PurchaseHistory, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}
