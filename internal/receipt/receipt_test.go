package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postill/internal/models"
)

func TestRender_FullReceipt(t *testing.T) {
	espresso := &models.Product{ID: 1, Name: "Espresso"}

	r := &Receipt{
		OrderID:   55,
		Reference: "ORD-55",
		Items: []models.OrderItem{
			{ProductID: 1, Product: espresso, Quantity: 2, Price: decimal.RequireFromString("2.50")},
			{ProductID: 9, Quantity: 1, Price: decimal.RequireFromString("3.75")},
		},
		Total:     decimal.RequireFromString("8.75"),
		CreatedAt: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, DefaultStore, r))
	out := buf.String()

	assert.Contains(t, out, "Print Perfect POS")
	assert.Contains(t, out, "Receipt: #ORD-55")
	assert.Contains(t, out, "01 Jun 2025 14:30")
	assert.Contains(t, out, "Espresso")
	assert.Contains(t, out, "Product #9", "unresolved products fall back to their id")
	assert.Contains(t, out, "2.50")
	assert.Contains(t, out, "5.00", "line total is price times quantity")
	assert.Contains(t, out, "Total: 8.75")
	assert.Contains(t, out, "Thank you for your purchase!")
}

func TestRender_NoItems(t *testing.T) {
	r := &Receipt{
		Reference: "ORD-1",
		Total:     decimal.Zero,
		CreatedAt: time.Now(),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, DefaultStore, r))
	assert.Contains(t, buf.String(), "Total: 0.00")
}
