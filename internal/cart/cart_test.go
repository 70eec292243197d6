package cart

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/logging"
	"github.com/dmitrijs2005/postill/internal/models"
	"github.com/dmitrijs2005/postill/internal/storage"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*Store, storage.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE state (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	repo := storage.NewSQLiteRepository(db)
	return NewStore(repo, logging.NewDefault()), repo
}

func product(id int64, name, price string) models.Product {
	return models.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func TestAddLine_SameProductAccumulates(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()
	espresso := product(1, "Espresso", "2.50")

	require.NoError(t, s.AddLine(ctx, espresso, 1))
	require.NoError(t, s.AddLine(ctx, espresso, 2))

	lines := s.Lines()
	require.Len(t, lines, 1, "same product must not duplicate the line")
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, s.TotalItems())
}

func TestAddLine_DifferentProductsAppend(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 1))
	require.NoError(t, s.AddLine(ctx, product(2, "Latte", "3.75"), 1))

	assert.Len(t, s.Lines(), 2)
}

func TestAddLine_NonPositiveQtyIsNoOp(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 0))
	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), -3))

	assert.Empty(t, s.Lines())
}

func TestSetQuantity_ZeroOrBelowRemovesLine(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 2))
	require.NoError(t, s.SetQuantity(ctx, 1, 0))
	assert.Empty(t, s.Lines())

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 2))
	require.NoError(t, s.SetQuantity(ctx, 1, -5))
	assert.Empty(t, s.Lines())
}

func TestSetQuantity_PositiveReplaces(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 2))
	require.NoError(t, s.SetQuantity(ctx, 1, 7))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestSetQuantity_UnknownProductIsNoOp(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.SetQuantity(context.Background(), 42, 3))
	assert.Empty(t, s.Lines())
}

func TestSubtotal_SumOfPriceTimesQuantity(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 2)) // 5.00
	require.NoError(t, s.AddLine(ctx, product(2, "Latte", "3.75"), 1))    // 3.75

	assert.True(t, s.Subtotal().Equal(decimal.RequireFromString("8.75")),
		"got %s", s.Subtotal())
	assert.Equal(t, 3, s.TotalItems())

	require.NoError(t, s.RemoveLine(ctx, 2))
	assert.True(t, s.Subtotal().Equal(decimal.RequireFromString("5.00")))
}

func TestMutationsPersistSynchronously(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 1))

	raw, err := repo.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity":1`)

	require.NoError(t, s.Clear(ctx))
	raw, err = repo.Get(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestRestore_RoundTrip(t *testing.T) {
	s1, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s1.AddLine(ctx, product(1, "Espresso", "2.50"), 2))
	require.NoError(t, s1.AddLine(ctx, product(2, "Latte", "3.75"), 1))

	s2 := NewStore(repo, logging.NewDefault())
	require.NoError(t, s2.Restore(ctx))

	assert.Len(t, s2.Lines(), 2)
	assert.True(t, s2.Subtotal().Equal(decimal.RequireFromString("8.75")))
}

func TestRestore_MalformedSlotResetsEmpty(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, storage.KeyCart, []byte("[{broken")))

	require.NoError(t, s.Restore(ctx))
	assert.Empty(t, s.Lines())

	_, err := repo.Get(ctx, storage.KeyCart)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	calls := 0
	s.Subscribe(func() { calls++ })

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 1))
	require.NoError(t, s.SetQuantity(ctx, 1, 4))
	require.NoError(t, s.RemoveLine(ctx, 1))
	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, 4, calls)
}

func TestReset_DropsLinesWithoutTouchingSlot(t *testing.T) {
	s, repo := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLine(ctx, product(1, "Espresso", "2.50"), 1))
	require.NoError(t, repo.Delete(ctx, storage.KeyCart))

	notified := 0
	s.Subscribe(func() { notified++ })
	s.Reset()

	assert.Empty(t, s.Lines())
	assert.Equal(t, 1, notified)
	_, err := repo.Get(ctx, storage.KeyCart)
	assert.ErrorIs(t, err, common.ErrNotFound, "Reset must not re-create the slot")
}

func TestLines_ReturnsCopy(t *testing.T) {
	s, _ := setupStore(t)
	require.NoError(t, s.AddLine(context.Background(), product(1, "Espresso", "2.50"), 1))

	lines := s.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, s.Lines()[0].Quantity)
}
