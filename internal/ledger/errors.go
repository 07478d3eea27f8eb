package ledger

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError reports input rejected before any state changed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Invalidf builds a ValidationError for callers outside this package.
func Invalidf(format string, args ...any) error {
	return invalidf(format, args...)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Round rounds half up, so 78.5 becomes 79 and -150.5 becomes -150.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}
