package reconcile

import "inventory-checker/core/ledger"

// Compare diffs the imported expected-quantity table against a ledger snapshot
// and returns one row per barcode in the union of both sources.
//
// Duplicate barcodes within the imported table collapse to a single key with
// the last value winning. Enumeration order is deterministic: imported barcodes
// in order of first appearance, then ledger-only barcodes in ledger order.
func Compare(imported []ImportedRow, entries []ledger.Entry) []Row {
	expected := make(map[string]float64, len(imported))
	importedOrder := make([]string, 0, len(imported))
	for _, row := range imported {
		if _, seen := expected[row.Barcode]; !seen {
			importedOrder = append(importedOrder, row.Barcode)
		}
		// Last value wins on duplicate source rows.
		expected[row.Barcode] = row.Expected
	}

	counted := make(map[string]int, len(entries))
	for _, entry := range entries {
		counted[entry.Barcode] = entry.Quantity
	}

	rows := make([]Row, 0, len(expected)+len(counted))

	for _, barcode := range importedOrder {
		exp := expected[barcode]
		row := Row{Barcode: barcode, Imported: &exp}
		if qty, ok := counted[barcode]; ok {
			q := qty
			row.Checked = &q
			if float64(qty) == exp {
				row.Status = StatusMatch
			} else {
				row.Status = StatusMismatch
			}
		} else {
			row.Status = StatusMissing
		}
		rows = append(rows, row)
	}

	for _, entry := range entries {
		if _, ok := expected[entry.Barcode]; ok {
			continue
		}
		q := entry.Quantity
		rows = append(rows, Row{Barcode: entry.Barcode, Checked: &q, Status: StatusExtra})
	}

	return rows
}

// Deficits filters comparison rows down to true shortfalls: missing barcodes
// and mismatches where the counted quantity is below the expected one. Excess
// mismatches are excluded.
func Deficits(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		switch row.Status {
		case StatusMissing:
			out = append(out, row)
		case StatusMismatch:
			if row.Imported != nil && row.Checked != nil && float64(*row.Checked) < *row.Imported {
				out = append(out, row)
			}
		}
	}
	return out
}

// Summarize computes aggregate counts for a comparison.
func Summarize(rows []Row) Summary {
	var s Summary
	s.Total = len(rows)
	for _, row := range rows {
		switch row.Status {
		case StatusMatch:
			s.Matches++
		case StatusMismatch:
			s.Mismatches++
			if row.Imported != nil && row.Checked != nil && float64(*row.Checked) < *row.Imported {
				s.Deficits++
			}
		case StatusMissing:
			s.Missing++
			s.Deficits++
		case StatusExtra:
			s.Extra++
		}
	}
	return s
}
