package reconcile

// Status classifies a single barcode after comparison.
type Status string

const (
	// StatusMatch means the counted quantity equals the expected one.
	StatusMatch Status = "match"
	// StatusMismatch means both sides have the barcode with differing quantities.
	StatusMismatch Status = "mismatch"
	// StatusMissing means the barcode was expected but never counted.
	StatusMissing Status = "missing"
	// StatusExtra means the barcode was counted but not expected.
	StatusExtra Status = "extra"
)

// ImportedRow is one row of the operator-supplied expected-quantity table.
// The engine treats these as read-only.
type ImportedRow struct {
	// Barcode is the string key.
	Barcode string `json:"barcode"`

	// Expected is the expected quantity. Imported files may carry fractional
	// values; counted quantities are always integers.
	Expected float64 `json:"expected"`
}

// Row is the comparison output for a single barcode.
type Row struct {
	// Barcode is the key, drawn from the union of both sources.
	Barcode string `json:"barcode"`

	// Imported is the expected quantity, nil when the barcode was not imported.
	Imported *float64 `json:"imported_qty"`

	// Checked is the counted quantity, nil when the barcode was not counted.
	Checked *int `json:"checked_qty"`

	// Status is the classification for this barcode.
	Status Status `json:"status"`
}

// Summary provides aggregate counts over a comparison.
type Summary struct {
	// Total is the number of distinct barcodes in the union.
	Total int `json:"total"`

	// Matches counts barcodes with equal quantities on both sides.
	Matches int `json:"matches"`

	// Mismatches counts barcodes present on both sides with differing quantities.
	Mismatches int `json:"mismatches"`

	// Missing counts barcodes expected but not counted.
	Missing int `json:"missing"`

	// Extra counts barcodes counted but not expected.
	Extra int `json:"extra"`

	// Deficits counts true shortfalls: missing barcodes plus mismatches where
	// the counted quantity is below the expected one.
	Deficits int `json:"deficits"`
}
