package sqlitestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aigenie/genie-server/store/sqlitestore"
)

func openTestStore(t *testing.T) *sqlitestore.SQLiteStore {
	t.Helper()

	st, err := sqlitestore.Open(filepath.Join(t.TempDir(), "genie.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStore_SetGetRemove(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	_, ok, err := st.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.Set(ctx, "key", "value"))

	v, ok, err := st.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "value", v)

	// Upsert replaces in place.
	require.NoError(t, st.Set(ctx, "key", "replaced"))
	v, _, err = st.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, "replaced", v)

	require.NoError(t, st.Remove(ctx, "key"))
	_, ok, err = st.Get(ctx, "key")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteStore_RemoveMissingKey(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.Remove(context.Background(), "never-set"))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genie.db")
	ctx := context.Background()

	st, err := sqlitestore.Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, "session", `{"id":"user_1"}`))
	require.NoError(t, st.Close())

	reopened, err := sqlitestore.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "session")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"id":"user_1"}`, v)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "genie.db")

	st, err := sqlitestore.Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())
}
