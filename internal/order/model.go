package order

// StatusReceived is the only status the store writes. Orders are created
// exactly once at checkout and never mutated afterwards.
const StatusReceived = "received"

// timestampLayout is UTC second precision, matching the created_at TEXT
// column of existing database files.
const timestampLayout = "2006-01-02T15:04:05"

// Order is the persisted orders row.
type Order struct {
	ID           int64  `db:"id"`
	CustomerName string `db:"customer_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	Status       string `db:"status"`
	CreatedAt    string `db:"created_at"`
}

// OrderItem is the persisted order_items row. Price is captured by
// reference to the product, not copied.
type OrderItem struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

// CartLine is one checkout line as submitted by the client.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// CreateInput is the validated checkout payload handed to the store.
type CreateInput struct {
	CustomerName string
	Email        string
	Phone        string
	Address      string
	Items        []CartLine
}

// Summary is the order read model: the order joined to current product
// names and prices, with line and order totals computed at read time.
// Both the HTTP response and the confirmation email consume this shape.
type Summary struct {
	ID           int64         `json:"id"`
	CustomerName string        `json:"customerName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	Status       string        `json:"status"`
	CreatedAt    string        `json:"createdAt"`
	Items        []SummaryLine `json:"items"`
	Total        float64       `json:"total"`
}

type SummaryLine struct {
	Name      string  `json:"name" db:"name"`
	Price     float64 `json:"price" db:"price"`
	Quantity  int     `json:"quantity" db:"quantity"`
	LineTotal float64 `json:"lineTotal" db:"line_total"`
}
