package inventory

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

type stubRepo struct {
	stock      *domain.Stock
	getErr     error
	setErr     error
	lastSetID  string
	lastSetQty int
	residue    []domain.StockResidue
}

func (s *stubRepo) Get(_ context.Context, _ string) (*domain.Stock, error) {
	return s.stock, s.getErr
}

func (s *stubRepo) Set(_ context.Context, productID string, quantity int) error {
	s.lastSetID = productID
	s.lastSetQty = quantity
	return s.setErr
}

func (s *stubRepo) Residue(_ context.Context) ([]domain.StockResidue, error) {
	return s.residue, nil
}

func TestStockFor(t *testing.T) {
	svc := &Service{repo: &stubRepo{stock: &domain.Stock{ProductID: "p1", Quantity: 7}}}
	qty, err := svc.StockFor(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qty != 7 {
		t.Fatalf("expected 7, got %d", qty)
	}
}

func TestStockForMissingRow(t *testing.T) {
	svc := &Service{repo: &stubRepo{getErr: &domain.StockNotFoundError{ProductID: "p1"}}}
	_, err := svc.StockFor(context.Background(), "p1")
	var snf *domain.StockNotFoundError
	if !errors.As(err, &snf) || snf.ProductID != "p1" {
		t.Fatalf("expected stock-not-found for p1, got %v", err)
	}
}

func TestSetStockRejectsNegative(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	err := svc.SetStock(context.Background(), "p1", -1)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetStockWritesThrough(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	if err := svc.SetStock(context.Background(), "p1", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastSetID != "p1" || repo.lastSetQty != 0 {
		t.Fatalf("set not called as expected: %s %d", repo.lastSetID, repo.lastSetQty)
	}
}
