package models

import "github.com/shopspring/decimal"

// CartLine pairs a product snapshot with a quantity. A cart holds at most
// one line per product id, and a line never exists with Quantity < 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price multiplied by quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
