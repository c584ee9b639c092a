package inventory

import (
	"bytes"
	"testing"
	"time"

	"inventory-checker/core/intake"
	"inventory-checker/core/ledger"
	"inventory-checker/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*Service, *ledger.Ledger) {
	t.Helper()
	logger := zap.NewNop()
	l := ledger.New(nopStore{}, logger)
	coordinator := intake.New(l, intake.Config{DebounceMS: 20, Mode: "manual"}, logger)
	return NewService(l, coordinator, logger), l
}

func TestServiceReconcile(t *testing.T) {
	svc, l := setupService(t)
	_, err := l.Commit("A1", 5)
	require.NoError(t, err)

	content := expectedWorkbook(t, [][]any{
		{"A1", 5},
		{"B2", 2},
	})

	rows, summary, err := svc.Reconcile(bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, reconcile.StatusMatch, rows[0].Status)
	assert.Equal(t, reconcile.StatusMissing, rows[1].Status)
	assert.Equal(t, 1, summary.Matches)
	assert.Equal(t, 1, summary.Missing)
}

func TestServiceExportFilenames(t *testing.T) {
	svc, l := setupService(t)
	_, err := l.Commit("A1", 1)
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2026, time.September, 1, 15, 4, 5, 0, time.UTC)
	}

	_, name, err := svc.ExportLedger()
	require.NoError(t, err)
	assert.Equal(t, "inventory-check-2026-09-01.xlsx", name)

	content := expectedWorkbook(t, [][]any{{"B2", 3}})
	_, name, err = svc.ExportDeficits(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "comparison-results-2026-09-01.xlsx", name)
}

func TestServiceBufferPartialUpdate(t *testing.T) {
	svc, _ := setupService(t)

	barcode := "A1"
	svc.UpdateBuffers(&barcode, nil)
	quantity := "2"
	svc.UpdateBuffers(nil, &quantity)

	entry, err := svc.Submit()
	require.NoError(t, err)
	assert.Equal(t, "A1", entry.Barcode)
	assert.Equal(t, 2, entry.Quantity)
}
