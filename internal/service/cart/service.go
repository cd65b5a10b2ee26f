package cart

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	Create(ctx context.Context, customerID string) (*domain.Cart, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, ids ...string) error
	UpsertItem(ctx context.Context, cartID, productID string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID string) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// AddItem adds quantity of a product to the customer's single cart, creating
// the cart on first use. Re-adding a product accumulates onto the existing
// item instead of duplicating it.
func (s *Service) AddItem(ctx context.Context, customerID, productID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", domain.ErrValidation)
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.ensureSingleCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.repo.UpsertItem(ctx, cart.ID, productID, quantity)
}

// RemoveItem deletes one cart item unconditionally.
func (s *Service) RemoveItem(ctx context.Context, itemID string) error {
	return s.repo.RemoveItem(ctx, itemID)
}

// Get returns the customer's cart with its items.
func (s *Service) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	carts, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, carts[0].ID)
}

// ensureSingleCart enforces the one-cart-per-customer invariant: it keeps the
// earliest-created cart, deletes any duplicates, and creates a cart if the
// customer has none.
func (s *Service) ensureSingleCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	carts, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return s.repo.Create(ctx, customerID)
	}
	if len(carts) > 1 {
		extra := make([]string, 0, len(carts)-1)
		for _, c := range carts[1:] {
			extra = append(extra, c.ID)
		}
		if err := s.repo.Delete(ctx, extra...); err != nil {
			return nil, err
		}
	}
	return &carts[0], nil
}
