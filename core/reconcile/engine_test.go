package reconcile

import (
	"testing"

	"inventory-checker/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(barcode string, qty int) ledger.Entry {
	return ledger.Entry{ID: "id-" + barcode, Barcode: barcode, Quantity: qty}
}

func TestCompare_Classification(t *testing.T) {
	imported := []ImportedRow{
		{Barcode: "A1", Expected: 5},
		{Barcode: "A2", Expected: 3},
	}
	entries := []ledger.Entry{
		entry("A1", 5),
		entry("A3", 1),
	}

	rows := Compare(imported, entries)
	require.Len(t, rows, 3)

	byBarcode := map[string]Row{}
	for _, row := range rows {
		byBarcode[row.Barcode] = row
	}

	a1 := byBarcode["A1"]
	assert.Equal(t, StatusMatch, a1.Status)
	require.NotNil(t, a1.Imported)
	require.NotNil(t, a1.Checked)
	assert.Equal(t, 5.0, *a1.Imported)
	assert.Equal(t, 5, *a1.Checked)

	a2 := byBarcode["A2"]
	assert.Equal(t, StatusMissing, a2.Status)
	require.NotNil(t, a2.Imported)
	assert.Equal(t, 3.0, *a2.Imported)
	assert.Nil(t, a2.Checked)

	a3 := byBarcode["A3"]
	assert.Equal(t, StatusExtra, a3.Status)
	assert.Nil(t, a3.Imported)
	require.NotNil(t, a3.Checked)
	assert.Equal(t, 1, *a3.Checked)
}

func TestCompare_Mismatch(t *testing.T) {
	rows := Compare(
		[]ImportedRow{{Barcode: "A1", Expected: 5}},
		[]ledger.Entry{entry("A1", 3)},
	)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusMismatch, rows[0].Status)
	assert.Equal(t, 5.0, *rows[0].Imported)
	assert.Equal(t, 3, *rows[0].Checked)
}

func TestCompare_DeterministicOrder(t *testing.T) {
	imported := []ImportedRow{
		{Barcode: "Z9", Expected: 1},
		{Barcode: "A1", Expected: 2},
	}
	entries := []ledger.Entry{
		entry("M5", 1),
		entry("A1", 2),
		entry("B2", 3),
	}

	rows := Compare(imported, entries)
	got := make([]string, len(rows))
	for i, row := range rows {
		got[i] = row.Barcode
	}
	// Imported order first, then ledger-only barcodes in ledger order.
	assert.Equal(t, []string{"Z9", "A1", "M5", "B2"}, got)

	// Same inputs, same order.
	again := Compare(imported, entries)
	assert.Equal(t, rows, again)
}

func TestCompare_DuplicateImportedBarcodeLastWins(t *testing.T) {
	imported := []ImportedRow{
		{Barcode: "A1", Expected: 5},
		{Barcode: "A1", Expected: 8},
	}
	rows := Compare(imported, []ledger.Entry{entry("A1", 8)})
	require.Len(t, rows, 1)
	assert.Equal(t, StatusMatch, rows[0].Status)
	assert.Equal(t, 8.0, *rows[0].Imported)
}

func TestCompare_DoesNotMutateInputs(t *testing.T) {
	imported := []ImportedRow{{Barcode: "A1", Expected: 5}}
	entries := []ledger.Entry{entry("A1", 3)}

	_ = Compare(imported, entries)

	assert.Equal(t, []ImportedRow{{Barcode: "A1", Expected: 5}}, imported)
	assert.Equal(t, []ledger.Entry{entry("A1", 3)}, entries)
}

func TestCompare_EmptyInputs(t *testing.T) {
	assert.Empty(t, Compare(nil, nil))

	rows := Compare(nil, []ledger.Entry{entry("A1", 1)})
	require.Len(t, rows, 1)
	assert.Equal(t, StatusExtra, rows[0].Status)

	rows = Compare([]ImportedRow{{Barcode: "A1", Expected: 1}}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusMissing, rows[0].Status)
}

func TestDeficits_ShortfallsOnly(t *testing.T) {
	imported := []ImportedRow{
		{Barcode: "short", Expected: 5},
		{Barcode: "over", Expected: 3},
		{Barcode: "exact", Expected: 2},
		{Barcode: "unscanned", Expected: 7},
	}
	entries := []ledger.Entry{
		entry("short", 3),
		entry("over", 5),
		entry("exact", 2),
		entry("surplus", 1),
	}

	deficits := Deficits(Compare(imported, entries))
	require.Len(t, deficits, 2)

	got := map[string]Status{}
	for _, row := range deficits {
		got[row.Barcode] = row.Status
	}
	assert.Equal(t, StatusMismatch, got["short"], "counted below expected is a deficit")
	assert.Equal(t, StatusMissing, got["unscanned"])
	assert.NotContains(t, got, "over", "excess mismatch is not a deficit")
	assert.NotContains(t, got, "surplus", "extra rows are not deficits")
}

func TestSummarize(t *testing.T) {
	imported := []ImportedRow{
		{Barcode: "m", Expected: 5},
		{Barcode: "short", Expected: 5},
		{Barcode: "over", Expected: 1},
		{Barcode: "gone", Expected: 2},
	}
	entries := []ledger.Entry{
		entry("m", 5),
		entry("short", 2),
		entry("over", 4),
		entry("extra", 9),
	}

	s := Summarize(Compare(imported, entries))
	assert.Equal(t, Summary{
		Total:      5,
		Matches:    1,
		Mismatches: 2,
		Missing:    1,
		Extra:      1,
		Deficits:   2,
	}, s)
}
