package persist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"inventory-checker/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())
	ctx := context.Background()

	entries := []ledger.Entry{
		{ID: "id-1", Barcode: "A1", Quantity: 5},
		{ID: "id-2", Barcode: "B2", Quantity: 1},
		{ID: "id-3", Barcode: "C3", Quantity: 12},
	}
	require.NoError(t, store.Save(ctx, entries))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded, "round-trip must preserve ids, barcodes, quantities and order")
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir())

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ledger.RecordKey+".json"), []byte("{not json"), 0o644))

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_Erase(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []ledger.Entry{{ID: "id-1", Barcode: "A1", Quantity: 1}}))
	require.NoError(t, store.Erase(ctx))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Erasing again is a no-op.
	assert.NoError(t, store.Erase(ctx))
}

func TestFileStore_LedgerRoundTrip(t *testing.T) {
	dir := t.TempDir()

	l := ledger.New(NewFileStore(dir), zap.NewNop())
	_, err := l.Commit("A1", 5)
	require.NoError(t, err)
	_, err = l.Commit("B2", 3)
	require.NoError(t, err)
	_, err = l.Commit("A1", 2)
	require.NoError(t, err)

	// A fresh session against the same directory sees the identical ledger.
	restored := ledger.New(NewFileStore(dir), zap.NewNop())
	assert.Equal(t, l.Snapshot(), restored.Snapshot())
}

func TestOpen_SelectsDriver(t *testing.T) {
	logger := zap.NewNop()

	t.Run("FileDefault", func(t *testing.T) {
		store, err := Open(Config{Driver: "", Dir: t.TempDir()}, Deps{}, logger)
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, store)
	})

	t.Run("ObjectWithoutClient", func(t *testing.T) {
		_, err := Open(Config{Driver: DriverObject}, Deps{}, logger)
		assert.Error(t, err)
	})

	t.Run("DBWithoutConnection", func(t *testing.T) {
		_, err := Open(Config{Driver: DriverDB}, Deps{}, logger)
		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Open(Config{Driver: "redis"}, Deps{}, logger)
		assert.Error(t, err)
	})
}
