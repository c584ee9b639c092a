package sheet

import (
	"fmt"
	"time"

	"inventory-checker/core/ledger"
	"inventory-checker/core/reconcile"

	"github.com/xuri/excelize/v2"
)

const (
	ledgerSheetName  = "Inventory Check"
	deficitSheetName = "Comparison Results"

	// Status labels rendered into the deficit export.
	statusNotScanned = "Not Scanned"
	statusDeficit    = "Deficit"
)

// BuildLedger serializes a ledger snapshot into a one-sheet workbook with
// Barcode and Quantity columns. It returns ErrEmptyExport when the ledger
// holds no entries.
func BuildLedger(entries []ledger.Entry) (*excelize.File, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyExport
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ledgerSheetName); err != nil {
		return nil, err
	}

	setRow(f, ledgerSheetName, 1, "Barcode", "Quantity")
	for i, entry := range entries {
		setRow(f, ledgerSheetName, i+2, entry.Barcode, entry.Quantity)
	}

	return f, nil
}

// BuildDeficits serializes the shortfall rows of a comparison into a workbook.
// Missing rows are labeled "Not Scanned" and shortfall mismatches "Deficit".
// It returns ErrEmptyExport when no row qualifies.
func BuildDeficits(rows []reconcile.Row) (*excelize.File, error) {
	deficits := reconcile.Deficits(rows)
	if len(deficits) == 0 {
		return nil, ErrEmptyExport
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", deficitSheetName); err != nil {
		return nil, err
	}

	setRow(f, deficitSheetName, 1, "Barcode", "Imported Quantity", "Checked Quantity", "Status")
	for i, row := range deficits {
		label := statusDeficit
		if row.Status == reconcile.StatusMissing {
			label = statusNotScanned
		}

		var checked interface{}
		if row.Checked != nil {
			checked = *row.Checked
		}
		var imported interface{}
		if row.Imported != nil {
			imported = *row.Imported
		}

		setRow(f, deficitSheetName, i+2, row.Barcode, imported, checked, label)
	}

	return f, nil
}

// LedgerFilename returns the date-stamped download name for a ledger export.
func LedgerFilename(now time.Time) string {
	return fmt.Sprintf("inventory-check-%s.xlsx", now.Format("2006-01-02"))
}

// DeficitFilename returns the date-stamped download name for a deficit export.
func DeficitFilename(now time.Time) string {
	return fmt.Sprintf("comparison-results-%s.xlsx", now.Format("2006-01-02"))
}

// setRow writes values across one row starting at column A.
func setRow(f *excelize.File, sheetName string, row int, values ...interface{}) {
	for i, v := range values {
		cellName, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheetName, cellName, v)
	}
}
