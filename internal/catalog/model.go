package catalog

// Category is the persisted categories row. Slug is the stable identity
// used by reconciliation; id is internal.
type Category struct {
	ID          int64  `db:"id"`
	Slug        string `db:"slug"`
	Name        string `db:"name"`
	Description string `db:"description"`
	ImageURL    string `db:"image_url"`
}

// Product is the persisted products row. Subcategory is a free-text
// grouping label, not a separate entity.
type Product struct {
	ID          int64   `db:"id"`
	CategoryID  int64   `db:"category_id"`
	Subcategory string  `db:"subcategory"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Unit        string  `db:"unit"`
	Price       float64 `db:"price"`
	ImageURL    string  `db:"image_url"`
}

// CategoryView is a category with its products grouped by subcategory,
// shaped for the /api/catalog response.
type CategoryView struct {
	ID            int64             `json:"id"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"imageUrl"`
	Subcategories []SubcategoryView `json:"subcategories"`
}

type SubcategoryView struct {
	Subcategory string        `json:"subcategory"`
	Items       []ProductView `json:"items"`
}

type ProductView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// CategorySeed and ProductSeed describe the canonical catalog definition
// consumed by Reconcile. Pricing is input data; the core attaches no
// meaning to any particular value.
type CategorySeed struct {
	Slug        string
	Name        string
	Description string
	ImageURL    string
	Items       []ProductSeed
}

type ProductSeed struct {
	Subcategory string
	Name        string
	Description string
	Unit        string
	Price       float64
	ImageURL    string
}
