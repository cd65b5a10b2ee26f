package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Quantity    int
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Demo Teapot",
			Description: "Ceramic teapot for demo purposes",
			PriceCents:  2599,
			Category:    "Kitchen",
			Quantity:    10,
		},
		{
			Name:        "Demo Lamp",
			Description: "Desk lamp with demo shade",
			PriceCents:  4999,
			Category:    "Lighting",
			Quantity:    5,
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := ensureCustomer(ctx, pool, "demo@example.com", "Demo", "Customer"); err != nil {
		return fmt.Errorf("ensure demo customer: %w", err)
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const categoryQ = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var categoryID string
	if err := pool.QueryRow(ctx, categoryQ, p.Category).Scan(&categoryID); err != nil {
		return err
	}

	const productQ = `
INSERT INTO products (name, description, price_cents, category_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    category_id = EXCLUDED.category_id
RETURNING id::text
`
	var productID string
	if err := pool.QueryRow(ctx, productQ, p.Name, p.Description, p.PriceCents, categoryID).Scan(&productID); err != nil {
		return err
	}

	const stockQ = `
INSERT INTO stock (product_id, quantity)
VALUES ($1, $2)
ON CONFLICT (product_id) DO NOTHING
`
	_, err := pool.Exec(ctx, stockQ, productID, p.Quantity)
	return err
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool, email, first, last string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO customers (email, first_name, last_name, password_hash)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, first, last, string(hashed))
	return err
}
