package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a completed sale as reported by the API. Reference is the
// human-readable code printed on receipts, distinct from the numeric ID.
type Order struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	UserID    int64           `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderItem is one line of an order. Price is the unit price captured at the
// time of sale, decoupled from the live Product price. Product is attached
// only when the caller resolved it; display code falls back to ProductID.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *Product        `json:"product,omitempty"`
}

// NewOrder is the order submission payload: the operator's user id plus the
// cart lines reduced to (product id, quantity) pairs. The wire field for the
// item list is "orders", matching the POS API.
type NewOrder struct {
	UserID int64          `json:"user_id"`
	Items  []NewOrderItem `json:"orders"`
}

type NewOrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
