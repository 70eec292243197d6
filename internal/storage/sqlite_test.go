package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/postill/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestPutAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, KeyToken, []byte("abc")))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)
}

func TestGet_MissingKeyReturnsNotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Nil(t, v)
}

func TestPut_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, KeyCart, []byte("old")))
	require.NoError(t, r.Put(ctx, KeyCart, []byte("new")))

	v, err := r.Get(ctx, KeyCart)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestDelete_MultipleKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, KeyToken, []byte("t")))
	require.NoError(t, r.Put(ctx, KeyUser, []byte("u")))
	require.NoError(t, r.Put(ctx, KeyCart, []byte("c")))

	require.NoError(t, r.Delete(ctx, KeyToken, KeyUser, KeyCart))

	for _, k := range []string{KeyToken, KeyUser, KeyCart} {
		_, err := r.Get(ctx, k)
		assert.ErrorIs(t, err, common.ErrNotFound)
	}
}

func TestDelete_MissingKeysAndEmptyList(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "nope"))
	require.NoError(t, r.Delete(ctx))
}

func TestGet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	require.NoError(t, db.Close())

	_, err := r.Get(context.Background(), KeyToken)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to get state[token]")
}

func TestInitDatabase_MigratesAndWorks(t *testing.T) {
	ctx := context.Background()

	db, repo, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repo.Put(ctx, KeyUser, []byte(`{"id":1}`)))
	v, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(v))
}
