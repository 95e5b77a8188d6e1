package domain

import (
	"errors"
	"fmt"
)

// InvalidInputError is the single structured validation failure surfaced to
// callers: the offending field, its value, and the allowed set or range.
type InvalidInputError struct {
	Field   string
	Value   any
	Allowed []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: allowed %v", e.Field, fmt.Sprint(e.Value), e.Allowed)
}

// IsInvalidInput reports whether err is a validation failure the caller
// should map to a bad-request response.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
