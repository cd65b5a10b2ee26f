package order

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

const (
	maxPlaceAttempts = 3
	retryBackoff     = 50 * time.Millisecond
)

type Service struct {
	repo   placeRepo
	logger *log.Logger
}

type placeRepo interface {
	Place(ctx context.Context, in orderrepo.PlaceInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

func New(repo orderrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Place converts the customer's cart into an order. The repository executes
// the whole conversion as one transaction; this layer retries transient
// lock/serialization conflicts a bounded number of times before surfacing
// them to the caller.
func (s *Service) Place(ctx context.Context, customerID, cartID string, deliveryAt *time.Time) (*domain.Order, error) {
	in := orderrepo.PlaceInput{
		CustomerID: customerID,
		CartID:     cartID,
		DeliveryAt: deliveryAt,
	}

	var lastErr error
	for attempt := 1; attempt <= maxPlaceAttempts; attempt++ {
		ord, err := s.repo.Place(ctx, in)
		if err == nil {
			return ord, nil
		}
		if !errors.Is(err, domain.ErrTransientConflict) {
			return nil, err
		}
		lastErr = err
		s.logger.Printf("order service: transient conflict placing cart=%s attempt=%d", cartID, attempt)
		if attempt < maxPlaceAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}
	}
	return nil, lastErr
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}
