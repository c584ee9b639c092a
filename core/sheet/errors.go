package sheet

import (
	"errors"
	"fmt"
)

// ErrEmptyExport is reported when an export is requested with zero eligible
// rows. Callers surface it as a non-blocking notice; no file is produced.
var ErrEmptyExport = errors.New("no rows to export")

// MissingColumnError is reported when an imported workbook has no
// recognizable barcode or quantity column. The import aborts with no partial
// ledger mutation.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("could not locate a %s column in the imported sheet", e.Column)
}

// IsMissingColumn reports whether err is a *MissingColumnError.
func IsMissingColumn(err error) bool {
	var target *MissingColumnError
	return errors.As(err, &target)
}
