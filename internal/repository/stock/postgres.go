package stock

import (
	"context"
	"errors"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, productID string) (*domain.Stock, error) {
	const q = `
SELECT product_id::text, quantity
FROM stock
WHERE product_id = $1
`
	var s domain.Stock
	err := r.pool.QueryRow(ctx, q, productID).Scan(&s.ProductID, &s.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.StockNotFoundError{ProductID: productID}
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Set(ctx context.Context, productID string, quantity int) error {
	const q = `
INSERT INTO stock (product_id, quantity)
VALUES ($1, $2)
ON CONFLICT (product_id) DO UPDATE SET quantity = EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, productID, quantity)
	return err
}

func (r *postgresRepo) Residue(ctx context.Context) ([]domain.StockResidue, error) {
	const q = `
SELECT s.product_id::text, p.name, s.quantity
FROM stock s
JOIN products p ON p.id = s.product_id
ORDER BY p.name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StockResidue
	for rows.Next() {
		var s domain.StockResidue
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.Quantity); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
