package order_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadsupplies/storefront/internal/db"
	"github.com/ziadsupplies/storefront/internal/order"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "store.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`INSERT INTO categories (id, slug, name, description, image_url) VALUES (1, 'test', 'Test', '', '')`)
	require.NoError(t, err)
	_, err = conn.Exec(`
		INSERT INTO products (id, category_id, subcategory, name, description, unit, price, image_url) VALUES
		(7, 1, 'Chlorine', 'Chlorine 4L', '', 'Jerrycan 4L', 4.00, ''),
		(9, 1, 'Dishwashing', 'Dishwashing 22L', '', 'Jerrycan 22L', 12.50, '')
	`)
	require.NoError(t, err)

	return conn
}

func validInput() *order.CreateInput {
	return &order.CreateInput{
		CustomerName: "Amal Haddad",
		Email:        "amal@example.com",
		Phone:        "0791234567",
		Address:      "12 Rainbow St, Amman",
		Items: []order.CartLine{
			{ProductID: 7, Quantity: 2},
			{ProductID: 9, Quantity: 1},
		},
	}
}

func countRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()
	var count int
	require.NoError(t, conn.Get(&count, "SELECT COUNT(*) FROM "+table))
	return count
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_with_summary_total", func(t *testing.T) {
		conn := newTestDB(t)
		repo := order.NewRepository(conn)

		orderID, err := repo.Create(ctx, validInput())
		require.NoError(t, err)
		assert.Greater(t, orderID, int64(0))

		summary, err := repo.GetSummary(ctx, orderID)
		require.NoError(t, err)

		assert.Equal(t, orderID, summary.ID)
		assert.Equal(t, "Amal Haddad", summary.CustomerName)
		assert.Equal(t, order.StatusReceived, summary.Status)
		assert.NotEmpty(t, summary.CreatedAt)
		require.Len(t, summary.Items, 2)
		assert.InDelta(t, 8.00, summary.Items[0].LineTotal, 1e-9)
		assert.InDelta(t, 12.50, summary.Items[1].LineTotal, 1e-9)
		assert.InDelta(t, 20.50, summary.Total, 1e-9)
	})

	t.Run("unknown_product_rolls_back_everything", func(t *testing.T) {
		conn := newTestDB(t)
		repo := order.NewRepository(conn)

		input := validInput()
		input.Items = append(input.Items, order.CartLine{ProductID: 424242, Quantity: 1})

		_, err := repo.Create(ctx, input)
		assert.ErrorIs(t, err, order.ErrUnknownProduct)

		assert.Equal(t, 0, countRows(t, conn, "orders"))
		assert.Equal(t, 0, countRows(t, conn, "order_items"))
	})

	t.Run("zero_quantity_writes_nothing", func(t *testing.T) {
		conn := newTestDB(t)
		repo := order.NewRepository(conn)

		input := validInput()
		input.Items[1].Quantity = 0

		_, err := repo.Create(ctx, input)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)

		assert.Equal(t, 0, countRows(t, conn, "orders"))
		assert.Equal(t, 0, countRows(t, conn, "order_items"))
	})

	t.Run("negative_quantity_writes_nothing", func(t *testing.T) {
		conn := newTestDB(t)
		repo := order.NewRepository(conn)

		input := validInput()
		input.Items[0].Quantity = -2

		_, err := repo.Create(ctx, input)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)

		assert.Equal(t, 0, countRows(t, conn, "orders"))
	})

	t.Run("unknown_product_reported_before_bad_quantity", func(t *testing.T) {
		conn := newTestDB(t)
		repo := order.NewRepository(conn)

		input := validInput()
		input.Items = []order.CartLine{
			{ProductID: 424242, Quantity: 1},
			{ProductID: 7, Quantity: 0},
		}

		_, err := repo.Create(ctx, input)
		assert.ErrorIs(t, err, order.ErrUnknownProduct)
		assert.Equal(t, 0, countRows(t, conn, "orders"))
	})

	t.Run("duplicate_product_ids_resolve_once", func(t *testing.T) {
		conn := newTestDB(t)
		repo := order.NewRepository(conn)

		input := validInput()
		input.Items = []order.CartLine{
			{ProductID: 7, Quantity: 1},
			{ProductID: 7, Quantity: 3},
		}

		orderID, err := repo.Create(ctx, input)
		require.NoError(t, err)

		summary, err := repo.GetSummary(ctx, orderID)
		require.NoError(t, err)
		require.Len(t, summary.Items, 2)
		assert.InDelta(t, 16.00, summary.Total, 1e-9)
	})
}

func TestRepository_GetSummary_NotFound(t *testing.T) {
	conn := newTestDB(t)
	repo := order.NewRepository(conn)

	summary, err := repo.GetSummary(context.Background(), 999)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.Nil(t, summary)
}
