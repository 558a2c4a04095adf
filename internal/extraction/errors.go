package extraction

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequestInFlight is returned when an extraction is started while a
// previous one has not settled. Callers retry after the pending call
// returns; the client never queues.
var ErrRequestInFlight = errors.New("an extraction request is already in flight")

// InputError represents invalid input caught before any network call, with
// the offending values listed.
type InputError struct {
	Message string
	Values  []string
}

func (e *InputError) Error() string {
	if len(e.Values) > 0 {
		return fmt.Sprintf("invalid input: %s: %s", e.Message, strings.Join(e.Values, ", "))
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// ParseError represents extraction output that failed to parse as JSON
// after fence stripping.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
