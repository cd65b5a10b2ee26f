package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

type lineItem struct {
	productID string
	quantity  int
}

func (r *postgresRepo) Place(ctx context.Context, in PlaceInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Bound lock waits so a stuck competitor cannot block this call forever.
	if _, err := tx.Exec(ctx, `SET LOCAL lock_timeout = '3s'`); err != nil {
		return nil, err
	}

	// Lock the cart row up front. A double-submit of the same cart queues
	// here and finds the cart gone once the winner commits, instead of
	// tripping over the orders.cart_id FK later in the transaction.
	var ownerID string
	err = tx.QueryRow(ctx, `
SELECT customer_id::text
FROM carts
WHERE id = $1
FOR UPDATE
`, in.CartID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, translateConflict(err)
	}
	if ownerID != in.CustomerID {
		return nil, domain.ErrPermissionDenied
	}

	// Product-id order keeps the stock lock acquisition deterministic across
	// concurrent multi-item placements.
	rows, err := tx.Query(ctx, `
SELECT product_id::text, quantity
FROM cart_items
WHERE cart_id = $1
ORDER BY product_id ASC
`, in.CartID)
	if err != nil {
		return nil, translateConflict(err)
	}
	var items []lineItem
	for rows.Next() {
		var it lineItem
		if err := rows.Scan(&it.productID, &it.quantity); err != nil {
			rows.Close()
			return nil, err
		}
		items = append(items, it)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// Lock and validate every line before touching anything, so a failure on
	// the last item cannot leave earlier ones decremented.
	available := make(map[string]int, len(items))
	for _, it := range items {
		var qty int
		err := tx.QueryRow(ctx, `
SELECT quantity
FROM stock
WHERE product_id = $1
FOR UPDATE
`, it.productID).Scan(&qty)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &domain.StockNotFoundError{ProductID: it.productID}
			}
			return nil, translateConflict(err)
		}
		available[it.productID] = qty
	}
	for _, it := range items {
		if it.quantity > available[it.productID] {
			return nil, &domain.InsufficientStockError{
				ProductID: it.productID,
				Requested: it.quantity,
				Available: available[it.productID],
			}
		}
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
UPDATE stock
SET quantity = quantity - $2
WHERE product_id = $1
`, it.productID, it.quantity); err != nil {
			return nil, translateConflict(err)
		}
	}

	var ord domain.Order
	ord.CustomerID = in.CustomerID
	ord.DeliveryAt = in.DeliveryAt
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, cart_id, status, delivery_date)
VALUES ($1, $2, $3, $4)
RETURNING id::text, order_date
`, in.CustomerID, in.CartID, domain.StatusPending, in.DeliveryAt).Scan(&ord.ID, &ord.OrderDate)
	if err != nil {
		return nil, translateConflict(err)
	}
	ord.Status = domain.StatusPending

	// Explicit PENDING -> PROCESSING write: the order is accepted and stock
	// is reserved, distinct from "just created".
	next := domain.StatusProcessing
	if !ord.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("order repo: illegal transition %s -> %s", ord.Status, next)
	}
	if _, err := tx.Exec(ctx, `
UPDATE orders
SET status = $2
WHERE id = $1
`, ord.ID, next); err != nil {
		return nil, translateConflict(err)
	}
	ord.Status = next

	purchasedAt := ord.OrderDate
	if in.DeliveryAt != nil {
		purchasedAt = *in.DeliveryAt
	}
	for _, it := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO purchase_history (customer_id, product_id, order_id, quantity, purchased_at)
VALUES ($1, $2, $3, $4, $5)
`, in.CustomerID, it.productID, ord.ID, it.quantity, purchasedAt); err != nil {
			return nil, translateConflict(err)
		}
	}

	// Cart items cascade with the cart; the order's cart_id FK is SET NULL.
	if _, err := tx.Exec(ctx, `
DELETE FROM carts
WHERE id = $1
`, in.CartID); err != nil {
		return nil, translateConflict(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, translateConflict(err)
	}
	r.logger.Printf("order repo: placed order id=%s customer=%s items=%d", ord.ID, in.CustomerID, len(items))
	return &ord, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer_id::text, cart_id::text, status, order_date, delivery_date
FROM orders
WHERE id = $1
`
	var ord domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(&ord.ID, &ord.CustomerID, &ord.CartID, &ord.Status, &ord.OrderDate, &ord.DeliveryAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ord, nil
}

// translateConflict maps serialization failures, deadlocks and lock timeouts
// to the retryable conflict error.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return domain.ErrTransientConflict
		}
	}
	return err
}
