package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"inventory-checker/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// Column labels are matched case-insensitively by substring, so headers like
// "Product Barcode" or "Expected Qty" resolve without configuration.
var (
	barcodeLabels  = []string{"barcode", "bar code"}
	quantityLabels = []string{"quantity", "qty", "count"}
)

// ParseExpected reads the first sheet of an uploaded xlsx workbook and returns
// the expected-quantity rows.
//
// The header row is the first row whose labels contain both a barcode and a
// quantity column; a *MissingColumnError is returned when no such row exists.
// Data rows below the header contribute a row only when the barcode cell is
// non-empty and the quantity cell parses as a number. Anything else is skipped
// silently.
func ParseExpected(r io.Reader) ([]reconcile.ImportedRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	headerIdx, barcodeCol, quantityCol, err := locateHeader(rows)
	if err != nil {
		return nil, err
	}

	var imported []reconcile.ImportedRow
	for _, row := range rows[headerIdx+1:] {
		barcode := cell(row, barcodeCol)
		if barcode == "" {
			continue
		}
		qty, err := strconv.ParseFloat(cell(row, quantityCol), 64)
		if err != nil {
			continue
		}
		imported = append(imported, reconcile.ImportedRow{Barcode: barcode, Expected: qty})
	}

	return imported, nil
}

// locateHeader finds the first row that carries both recognizable column
// labels and returns its index plus the two column positions.
func locateHeader(rows [][]string) (headerIdx, barcodeCol, quantityCol int, err error) {
	for i, row := range rows {
		barcodeCol, quantityCol = -1, -1
		for col, label := range row {
			normalized := strings.ToLower(strings.TrimSpace(label))
			if barcodeCol == -1 && matchesAny(normalized, barcodeLabels) {
				barcodeCol = col
			}
			if quantityCol == -1 && matchesAny(normalized, quantityLabels) {
				quantityCol = col
			}
		}
		if barcodeCol != -1 && quantityCol != -1 {
			return i, barcodeCol, quantityCol, nil
		}
	}

	// Report the column that could not be found anywhere.
	for _, row := range rows {
		for _, label := range row {
			if matchesAny(strings.ToLower(strings.TrimSpace(label)), barcodeLabels) {
				return 0, 0, 0, &MissingColumnError{Column: "quantity"}
			}
		}
	}
	return 0, 0, 0, &MissingColumnError{Column: "barcode"}
}

func matchesAny(normalized string, labels []string) bool {
	for _, l := range labels {
		if strings.Contains(normalized, l) {
			return true
		}
	}
	return false
}

// cell returns the trimmed value at col, tolerating short rows.
func cell(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}
