package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrUnknownProduct  = errors.New("one or more products do not exist")
	ErrInvalidQuantity = errors.New("quantities must be greater than zero")
)

type Repository interface {
	Create(ctx context.Context, input *CreateInput) (int64, error)
	GetSummary(ctx context.Context, id int64) (*Summary, error)
}

type sqliteRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &sqliteRepository{db: db}
}

// Create persists an order and its line items in one transaction. The
// product-existence and quantity checks run inside the same transaction,
// before any write, so every committed line references a product that
// exists at commit time. Any failure after the header insert rolls the
// whole order back; no partial order is ever observable.
func (r *sqliteRepository) Create(ctx context.Context, input *CreateInput) (orderID int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("repository: failed to rollback transaction after panic")
			}
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("repository: failed to rollback transaction")
			}
			orderID = 0
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("repository: failed to commit transaction: %w", commitErr)
			orderID = 0
		}
	}()

	if err = resolveProducts(ctx, tx, input.Items); err != nil {
		return 0, err
	}

	// Unknown products are reported before bad quantities, so a doubly
	// invalid cart always surfaces the product failure first.
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			err = fmt.Errorf("%w: product %d", ErrInvalidQuantity, line.ProductID)
			return 0, err
		}
	}

	createdAt := time.Now().UTC().Format(timestampLayout)
	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (customer_name, email, phone, address, status, verification_code, created_at)
		VALUES (?, ?, ?, ?, ?, '', ?)
	`, input.CustomerName, input.Email, input.Phone, input.Address, StatusReceived, createdAt)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert order: %w", err)
	}

	orderID, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("repository: failed to read inserted order id: %w", err)
	}

	for _, line := range input.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity) VALUES (?, ?, ?)
		`, orderID, line.ProductID, line.Quantity)
		if err != nil {
			return 0, fmt.Errorf("repository: failed to insert order item for order %d: %w", orderID, err)
		}
	}

	return orderID, nil
}

// resolveProducts fails with ErrUnknownProduct unless every distinct
// product id in items exists.
func resolveProducts(ctx context.Context, tx *sqlx.Tx, items []CartLine) error {
	distinct := make(map[int64]bool, len(items))
	ids := make([]int64, 0, len(items))
	for _, line := range items {
		if distinct[line.ProductID] {
			continue
		}
		distinct[line.ProductID] = true
		ids = append(ids, line.ProductID)
	}

	query, args, err := sqlx.In(`SELECT COUNT(*) FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("repository: failed to build product lookup query: %w", err)
	}

	var resolved int
	if err := tx.GetContext(ctx, &resolved, query, args...); err != nil {
		return fmt.Errorf("repository: failed to resolve cart products: %w", err)
	}

	if resolved != len(ids) {
		return ErrUnknownProduct
	}
	return nil
}

// GetSummary returns the order joined to current product names and prices,
// with computed totals, or ErrOrderNotFound.
func (r *sqliteRepository) GetSummary(ctx context.Context, id int64) (*Summary, error) {
	var ord Order
	err := r.db.GetContext(ctx, &ord, `
		SELECT id, customer_name, email, phone, address, status, created_at
		FROM orders
		WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to select order %d: %w", id, err)
	}

	lines := make([]SummaryLine, 0)
	err = r.db.SelectContext(ctx, &lines, `
		SELECT products.name AS name,
		       products.price AS price,
		       order_items.quantity AS quantity,
		       products.price * order_items.quantity AS line_total
		FROM order_items
		JOIN products ON order_items.product_id = products.id
		WHERE order_items.order_id = ?
		ORDER BY order_items.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to select items for order %d: %w", id, err)
	}

	summary := &Summary{
		ID:           ord.ID,
		CustomerName: ord.CustomerName,
		Email:        ord.Email,
		Phone:        ord.Phone,
		Address:      ord.Address,
		Status:       ord.Status,
		CreatedAt:    ord.CreatedAt,
		Items:        lines,
	}
	for _, line := range lines {
		summary.Total += line.LineTotal
	}

	return summary, nil
}
