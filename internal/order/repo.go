package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/marketplace-api/internal/apperr"
)

var (
	ErrItemNotFound = fmt.Errorf("order item %w", apperr.ErrNotFound)
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	DeleteItem(ctx context.Context, orderID, itemID string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// Create inserts the order and all of its items in one transaction and fills
// in the server-side timestamps.
func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
    INSERT INTO orders (id, user_id, total, status, created_at)
    VALUES ($1,$2,$3::numeric,$4,NOW())
    RETURNING created_at
  `, o.ID, o.UserID, o.Total.String(), o.Status).Scan(&o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, it := range o.Items {
		batch.Queue(`
      INSERT INTO order_items (id, order_id, product_id, quantity, price)
      VALUES ($1,$2,$3,$4,$5::numeric)
    `, it.ID, o.ID, it.ProductID, it.Quantity, it.Price.String())
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// ListByUser returns the user's orders oldest first, each with its items.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id,user_id,total::text,status,created_at
    FROM orders WHERE user_id=$1
    ORDER BY created_at, id
  `, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := []Order{}
	index := map[string]int{}
	ids := []string{}
	for rows.Next() {
		var (
			o     Order
			total string
		)
		if err := rows.Scan(&o.ID, &o.UserID, &total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("order %s total: %w", o.ID, err)
		}
		o.Items = []Item{}
		index[o.ID] = len(out)
		ids = append(ids, o.ID)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		o := &out[index[it.OrderID]]
		o.Items = append(o.Items, it)
	}
	return out, nil
}

func (r *PGRepo) itemsFor(ctx context.Context, orderIDs []string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, quantity, price::text
    FROM order_items
    WHERE order_id = ANY($1)
    ORDER BY order_id, id
  `, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			it    Item
			price string
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &price); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("item %s price: %w", it.ID, err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteItem removes the item only when it belongs to orderID. It reports
// false when no such (order, item) pair exists.
func (r *PGRepo) DeleteItem(ctx context.Context, orderID, itemID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    DELETE FROM order_items
    WHERE id = $1 AND order_id = $2
  `, itemID, orderID)
	if err != nil {
		return false, fmt.Errorf("delete order item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
