package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

type Repository interface {
	GetCatalog(ctx context.Context) ([]CategoryView, error)
	Reconcile(ctx context.Context, canonical []CategorySeed) error
}

type sqliteRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &sqliteRepository{db: db}
}

// GetCatalog returns the full catalog: categories ordered by name, each
// carrying its products grouped by subcategory and ordered by
// (subcategory, name). Read-only; any storage error propagates whole, so
// the caller never sees a partial catalog.
func (r *sqliteRepository) GetCatalog(ctx context.Context) ([]CategoryView, error) {
	queryCategories := `
		SELECT id, slug, name, COALESCE(description, '') AS description, COALESCE(image_url, '') AS image_url
		FROM categories
		ORDER BY name
	`

	var categories []Category
	if err := r.db.SelectContext(ctx, &categories, queryCategories); err != nil {
		return nil, fmt.Errorf("repository: failed to select categories: %w", err)
	}

	queryProducts := `
		SELECT id, category_id, subcategory, name, COALESCE(description, '') AS description,
		       COALESCE(unit, '') AS unit, price, COALESCE(image_url, '') AS image_url
		FROM products
		WHERE category_id = ?
		ORDER BY subcategory, name
	`

	catalog := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		var products []Product
		if err := r.db.SelectContext(ctx, &products, queryProducts, category.ID); err != nil {
			return nil, fmt.Errorf("repository: failed to select products for category %d: %w", category.ID, err)
		}

		view := CategoryView{
			ID:            category.ID,
			Slug:          category.Slug,
			Name:          category.Name,
			Description:   category.Description,
			ImageURL:      category.ImageURL,
			Subcategories: make([]SubcategoryView, 0),
		}

		// Products arrive ordered by subcategory, so groups form in order.
		for _, product := range products {
			item := ProductView{
				ID:          product.ID,
				Name:        product.Name,
				Description: product.Description,
				Unit:        product.Unit,
				Price:       product.Price,
				ImageURL:    product.ImageURL,
			}

			n := len(view.Subcategories)
			if n == 0 || view.Subcategories[n-1].Subcategory != product.Subcategory {
				view.Subcategories = append(view.Subcategories, SubcategoryView{
					Subcategory: product.Subcategory,
					Items:       []ProductView{item},
				})
				continue
			}
			view.Subcategories[n-1].Items = append(view.Subcategories[n-1].Items, item)
		}

		catalog = append(catalog, view)
	}

	return catalog, nil
}

// Reconcile brings persisted categories and products in line with the
// canonical definition. Categories whose slug left the canonical set are
// deleted with their products only when no order item references any of
// those products; otherwise they stay to preserve order history. Then
// every canonical category and product is upserted. Idempotent.
func (r *sqliteRepository) Reconcile(ctx context.Context, canonical []CategorySeed) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: failed to begin reconcile transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("repository: failed to rollback reconcile transaction")
			}
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("repository: failed to commit reconcile transaction: %w", commitErr)
		}
	}()

	if err = pruneStaleCategories(ctx, tx, canonical); err != nil {
		return err
	}

	for _, category := range canonical {
		var categoryID int64
		categoryID, err = upsertCategory(ctx, tx, category)
		if err != nil {
			return err
		}

		for _, item := range category.Items {
			if err = upsertProduct(ctx, tx, categoryID, item); err != nil {
				return err
			}
		}
	}

	return nil
}

func pruneStaleCategories(ctx context.Context, tx *sqlx.Tx, canonical []CategorySeed) error {
	canonicalSlugs := make(map[string]bool, len(canonical))
	for _, category := range canonical {
		canonicalSlugs[category.Slug] = true
	}

	var existing []Category
	err := tx.SelectContext(ctx, &existing, `SELECT id, slug FROM categories`)
	if err != nil {
		return fmt.Errorf("repository: failed to select existing categories: %w", err)
	}

	for _, category := range existing {
		if canonicalSlugs[category.Slug] {
			continue
		}

		var referencing int
		err = tx.GetContext(ctx, &referencing, `
			SELECT COUNT(*)
			FROM order_items
			WHERE product_id IN (SELECT id FROM products WHERE category_id = ?)
		`, category.ID)
		if err != nil {
			return fmt.Errorf("repository: failed to count order references for category %q: %w", category.Slug, err)
		}

		if referencing > 0 {
			// An order still points at this category's products.
			log.Warn().Str("slug", category.Slug).Int("order_item_refs", referencing).
				Msg("repository: keeping retired category referenced by order history")
			continue
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM products WHERE category_id = ?`, category.ID); err != nil {
			return fmt.Errorf("repository: failed to delete products for retired category %q: %w", category.Slug, err)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, category.ID); err != nil {
			return fmt.Errorf("repository: failed to delete retired category %q: %w", category.Slug, err)
		}
		log.Info().Str("slug", category.Slug).Msg("repository: removed retired category")
	}

	return nil
}

func upsertCategory(ctx context.Context, tx *sqlx.Tx, category CategorySeed) (int64, error) {
	var existingID int64
	err := tx.GetContext(ctx, &existingID, `SELECT id FROM categories WHERE slug = ?`, category.Slug)
	if err == nil {
		_, err = tx.ExecContext(ctx, `
			UPDATE categories SET name = ?, description = ?, image_url = ? WHERE id = ?
		`, category.Name, category.Description, category.ImageURL, existingID)
		if err != nil {
			return 0, fmt.Errorf("repository: failed to update category %q: %w", category.Slug, err)
		}
		return existingID, nil
	}
	if !isNoRows(err) {
		return 0, fmt.Errorf("repository: failed to look up category %q: %w", category.Slug, err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO categories (slug, name, description, image_url) VALUES (?, ?, ?, ?)
	`, category.Slug, category.Name, category.Description, category.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert category %q: %w", category.Slug, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("repository: failed to read inserted category id for %q: %w", category.Slug, err)
	}
	return id, nil
}

func upsertProduct(ctx context.Context, tx *sqlx.Tx, categoryID int64, item ProductSeed) error {
	var existingID int64
	err := tx.GetContext(ctx, &existingID,
		`SELECT id FROM products WHERE category_id = ? AND name = ?`, categoryID, item.Name)
	if err == nil {
		_, err = tx.ExecContext(ctx, `
			UPDATE products SET subcategory = ?, description = ?, unit = ?, price = ?, image_url = ?
			WHERE id = ?
		`, item.Subcategory, item.Description, item.Unit, item.Price, item.ImageURL, existingID)
		if err != nil {
			return fmt.Errorf("repository: failed to update product %q: %w", item.Name, err)
		}
		return nil
	}
	if !isNoRows(err) {
		return fmt.Errorf("repository: failed to look up product %q: %w", item.Name, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (category_id, subcategory, name, description, unit, price, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, categoryID, item.Subcategory, item.Name, item.Description, item.Unit, item.Price, item.ImageURL)
	if err != nil {
		return fmt.Errorf("repository: failed to insert product %q: %w", item.Name, err)
	}
	return nil
}
