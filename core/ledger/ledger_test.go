package ledger_test

import (
	"context"
	"errors"
	"testing"

	"inventory-checker/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memStore is an in-memory Store for testing.
type memStore struct {
	entries []ledger.Entry
	loadErr error
	saves   int
	erased  bool
}

func (s *memStore) Load(ctx context.Context) ([]ledger.Entry, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.entries, nil
}

func (s *memStore) Save(ctx context.Context, entries []ledger.Entry) error {
	s.entries = entries
	s.saves++
	return nil
}

func (s *memStore) Erase(ctx context.Context) error {
	s.entries = nil
	s.erased = true
	return nil
}

func TestLedger_CommitAggregatesByBarcode(t *testing.T) {
	l := ledger.New(&memStore{}, zap.NewNop())

	first, err := l.Commit("  A1  ", 3)
	require.NoError(t, err)
	assert.Equal(t, "A1", first.Barcode)
	assert.Equal(t, 3, first.Quantity)
	assert.NotEmpty(t, first.ID)

	second, err := l.Commit("A1", 2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "identity must be preserved on update")
	assert.Equal(t, 5, second.Quantity)

	snap := l.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, ledger.Entry{ID: first.ID, Barcode: "A1", Quantity: 5}, snap[0])
}

func TestLedger_CommitRejectsInvalidInput(t *testing.T) {
	l := ledger.New(&memStore{}, zap.NewNop())

	_, err := l.Commit("", 3)
	require.Error(t, err)
	assert.True(t, ledger.IsInvalidInput(err))

	_, err = l.Commit("   ", 3)
	require.Error(t, err)
	assert.True(t, ledger.IsInvalidInput(err))

	_, err = l.Commit("A1", 0)
	require.Error(t, err)
	assert.True(t, ledger.IsInvalidInput(err))

	_, err = l.Commit("A1", -2)
	require.Error(t, err)
	assert.True(t, ledger.IsInvalidInput(err))

	assert.Equal(t, 0, l.Len(), "failed commits must not mutate the ledger")
}

func TestLedger_InsertionOrderPreserved(t *testing.T) {
	l := ledger.New(&memStore{}, zap.NewNop())

	_, err := l.Commit("B2", 1)
	require.NoError(t, err)
	_, err = l.Commit("A1", 1)
	require.NoError(t, err)
	_, err = l.Commit("C3", 1)
	require.NoError(t, err)
	// Updating A1 must not move it.
	_, err = l.Commit("A1", 4)
	require.NoError(t, err)

	snap := l.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "B2", snap[0].Barcode)
	assert.Equal(t, "A1", snap[1].Barcode)
	assert.Equal(t, "C3", snap[2].Barcode)
	assert.Equal(t, 5, snap[1].Quantity)
}

func TestLedger_Remove(t *testing.T) {
	store := &memStore{}
	l := ledger.New(store, zap.NewNop())

	entry, err := l.Commit("A1", 1)
	require.NoError(t, err)
	_, err = l.Commit("B2", 1)
	require.NoError(t, err)

	l.Remove(entry.ID)
	snap := l.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "B2", snap[0].Barcode)

	// Unknown id is a no-op, not an error.
	saves := store.saves
	l.Remove("does-not-exist")
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, saves, store.saves, "no-op remove must not persist")
}

func TestLedger_ClearErasesStore(t *testing.T) {
	store := &memStore{}
	l := ledger.New(store, zap.NewNop())

	_, err := l.Commit("A1", 1)
	require.NoError(t, err)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.True(t, store.erased)
}

func TestLedger_PersistsAfterEveryMutation(t *testing.T) {
	store := &memStore{}
	l := ledger.New(store, zap.NewNop())

	entry, err := l.Commit("A1", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)

	_, err = l.Commit("A1", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, store.saves)

	l.Remove(entry.ID)
	assert.Equal(t, 3, store.saves)
}

func TestLedger_RehydratesFromStore(t *testing.T) {
	store := &memStore{entries: []ledger.Entry{
		{ID: "id-1", Barcode: "A1", Quantity: 5},
		{ID: "id-2", Barcode: "B2", Quantity: 1},
	}}

	l := ledger.New(store, zap.NewNop())
	snap := l.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "A1", snap[0].Barcode)
	assert.Equal(t, 5, snap[0].Quantity)

	// Further commits keep aggregating onto the restored entries.
	_, err := l.Commit("A1", 1)
	require.NoError(t, err)
	assert.Equal(t, 6, l.Snapshot()[0].Quantity)
}

func TestLedger_LoadFailureStartsEmpty(t *testing.T) {
	store := &memStore{loadErr: errors.New("corrupt record")}
	l := ledger.New(store, zap.NewNop())
	assert.Equal(t, 0, l.Len())
}
