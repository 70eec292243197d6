// Package receipt renders customer receipts as plain text, sized for a
// standard thermal printer roll.
package receipt

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/postill/internal/models"
)

// Receipt is the local projection built after a successful checkout or
// reconstructed from a past order. Item prices are snapshots taken at the
// time of sale, not live catalog prices.
type Receipt struct {
	OrderID   int64
	Reference string
	Items     []models.OrderItem
	Total     decimal.Decimal
	CreatedAt time.Time
}

// StoreInfo is the header block printed on every receipt.
type StoreInfo struct {
	Name    string
	Address []string
	Phone   string
}

// DefaultStore is the header used when no store details are configured.
var DefaultStore = StoreInfo{
	Name:    "Print Perfect POS",
	Address: []string{"123 Main Street", "Anytown, ST 12345"},
	Phone:   "(123) 456-7890",
}

const width = 42

func center(s string) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// Render writes the receipt to w: store header, reference and date, a
// fixed-column item table, the total, and a thank-you footer.
func Render(w io.Writer, store StoreInfo, r *Receipt) error {
	var b strings.Builder

	b.WriteString(center(store.Name) + "\n")
	for _, line := range store.Address {
		b.WriteString(center(line) + "\n")
	}
	if store.Phone != "" {
		b.WriteString(center("Tel: "+store.Phone) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Receipt: #%s\n", r.Reference))
	b.WriteString(fmt.Sprintf("Date:    %s\n", r.CreatedAt.Format("02 Jan 2006 15:04")))
	b.WriteString(strings.Repeat("-", width) + "\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Item\tQty\tPrice\tTotal\t")
	for _, item := range r.Items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t\n",
			itemName(item), item.Quantity, item.Price.StringFixed(2), lineTotal.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to render item table: %w", err)
	}

	b.WriteString(strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("%*s\n", width, "Total: "+r.Total.StringFixed(2)))
	b.WriteString("\n")
	b.WriteString(center("Thank you for your purchase!") + "\n")
	b.WriteString(center("Please come again") + "\n")
	b.WriteString(center(time.Now().Format(time.RFC3339)) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return nil
}

// itemName prefers the resolved product name and falls back to the product id.
func itemName(item models.OrderItem) string {
	if item.Product != nil && item.Product.Name != "" {
		return item.Product.Name
	}
	return fmt.Sprintf("Product #%d", item.ProductID)
}
