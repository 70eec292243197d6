package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item as served by the POS API. The client never
// mutates a Product in place; edits go through explicit API calls.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductDraft carries the writable product fields for create/update calls.
// ImagePath, when set, points at a local file that is attached to the
// multipart request as the "image" field.
type ProductDraft struct {
	Name        string
	Price       decimal.Decimal
	CategoryID  int64
	Description string
	ImagePath   string
}
