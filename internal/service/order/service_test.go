package order

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type stubRepo struct {
	results []error
	order   *domain.Order
	calls   int
	lastIn  orderrepo.PlaceInput
}

func (s *stubRepo) Place(_ context.Context, in orderrepo.PlaceInput) (*domain.Order, error) {
	s.lastIn = in
	idx := s.calls
	s.calls++
	if idx < len(s.results) && s.results[idx] != nil {
		return nil, s.results[idx]
	}
	return s.order, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, nil
}

func newService(repo *stubRepo) *Service {
	return &Service{repo: repo, logger: log.New(io.Discard, "", 0)}
}

func TestPlaceHappyPath(t *testing.T) {
	want := &domain.Order{ID: "o1", CustomerID: "cust", Status: domain.StatusProcessing}
	repo := &stubRepo{order: want}
	svc := newService(repo)

	got, err := svc.Place(context.Background(), "cust", "cart", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.Status != domain.StatusProcessing {
		t.Fatalf("expected PROCESSING, got %s", got.Status)
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", repo.calls)
	}
	if repo.lastIn.CustomerID != "cust" || repo.lastIn.CartID != "cart" {
		t.Fatalf("unexpected input: %+v", repo.lastIn)
	}
}

func TestPlacePassesDeliveryTimestamp(t *testing.T) {
	repo := &stubRepo{order: &domain.Order{ID: "o1"}}
	svc := newService(repo)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if _, err := svc.Place(context.Background(), "cust", "cart", &at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastIn.DeliveryAt == nil || !repo.lastIn.DeliveryAt.Equal(at) {
		t.Fatalf("delivery timestamp not forwarded: %+v", repo.lastIn.DeliveryAt)
	}
}

func TestPlaceDoesNotRetryBusinessFailures(t *testing.T) {
	stockErr := &domain.InsufficientStockError{ProductID: "p1", Requested: 5, Available: 2}
	repo := &stubRepo{results: []error{stockErr}}
	svc := newService(repo)

	_, err := svc.Place(context.Background(), "cust", "cart", nil)
	var ise *domain.InsufficientStockError
	if !errors.As(err, &ise) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
	if ise.Requested != 5 || ise.Available != 2 {
		t.Fatalf("expected requested/available preserved, got %+v", ise)
	}
	if repo.calls != 1 {
		t.Fatalf("business failure must not be retried, got %d attempts", repo.calls)
	}
}

func TestPlacePermissionDenied(t *testing.T) {
	repo := &stubRepo{results: []error{domain.ErrPermissionDenied}}
	svc := newService(repo)
	_, err := svc.Place(context.Background(), "other", "cart", nil)
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestPlaceEmptyCart(t *testing.T) {
	repo := &stubRepo{results: []error{domain.ErrEmptyCart}}
	svc := newService(repo)
	_, err := svc.Place(context.Background(), "cust", "cart", nil)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestPlaceRetriesTransientConflictThenSucceeds(t *testing.T) {
	want := &domain.Order{ID: "o1", Status: domain.StatusProcessing}
	repo := &stubRepo{
		results: []error{domain.ErrTransientConflict, domain.ErrTransientConflict, nil},
		order:   want,
	}
	svc := newService(repo)

	got, err := svc.Place(context.Background(), "cust", "cart", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected order: %+v", got)
	}
	if repo.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", repo.calls)
	}
}

func TestPlaceSurfacesConflictAfterRetriesExhausted(t *testing.T) {
	repo := &stubRepo{
		results: []error{domain.ErrTransientConflict, domain.ErrTransientConflict, domain.ErrTransientConflict},
	}
	svc := newService(repo)

	_, err := svc.Place(context.Background(), "cust", "cart", nil)
	if !errors.Is(err, domain.ErrTransientConflict) {
		t.Fatalf("expected transient conflict, got %v", err)
	}
	if repo.calls != maxPlaceAttempts {
		t.Fatalf("expected %d attempts, got %d", maxPlaceAttempts, repo.calls)
	}
}

func TestPlaceStopsOnCanceledContext(t *testing.T) {
	repo := &stubRepo{
		results: []error{domain.ErrTransientConflict, domain.ErrTransientConflict, domain.ErrTransientConflict},
	}
	svc := newService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Place(ctx, "cust", "cart", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single attempt before cancellation, got %d", repo.calls)
	}
}
