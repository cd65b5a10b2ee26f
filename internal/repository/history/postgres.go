package history

import (
	"context"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.PurchaseHistory, error) {
	const q = `
SELECT h.id::text, h.customer_id::text, h.product_id::text, p.name, h.order_id::text, h.quantity, h.purchased_at
FROM purchase_history h
JOIN products p ON p.id = h.product_id
WHERE h.customer_id = $1
ORDER BY h.purchased_at DESC, h.id DESC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PurchaseHistory
	for rows.Next() {
		var h domain.PurchaseHistory
		if err := rows.Scan(&h.ID, &h.CustomerID, &h.ProductID, &h.ProductName, &h.OrderID, &h.Quantity, &h.PurchasedAt); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
