package ledger

import (
	"errors"
	"fmt"
)

// InvalidInputError is returned by Commit when the offered barcode or delta
// cannot form a valid entry. Callers are expected to reject the action locally
// (e.g. keep the form disabled) rather than treat it as fatal.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}
