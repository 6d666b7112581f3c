package schedule

import (
	"errors"
	"fmt"
)

// Error kinds returned by the conversion pipeline.
var (
	ErrMalformedDateLabel  = errors.New("malformed date label")
	ErrAmbiguousYear       = errors.New("ambiguous year: no publish date")
	ErrNoGroupsFound       = errors.New("no employee groups found")
	ErrColumnCountMismatch = errors.New("column count mismatch")
	ErrExtractionFailed    = errors.New("extraction failed")
)

// LabelError describes a week label that could not be parsed.
type LabelError struct {
	Label string
	Token string // offending token, empty when the label itself is malformed
	Err   error  // underlying parse error, if any
}

func (e *LabelError) Error() string {
	msg := fmt.Sprintf("%v: %q", ErrMalformedDateLabel, e.Label)
	if e.Token != "" {
		msg += fmt.Sprintf(" (token %q)", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes LabelError match ErrMalformedDateLabel.
func (e *LabelError) Is(target error) bool {
	return target == ErrMalformedDateLabel
}

func (e *LabelError) Unwrap() error {
	return e.Err
}

// ColumnCountError reports a grid whose day columns do not line up with the
// resolved date window.
type ColumnCountError struct {
	Expected int
	Actual   int
	Row      int // raw row index for ragged rows, -1 for the grid as a whole
}

func (e *ColumnCountError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d has %d columns, want %d", ErrColumnCountMismatch, e.Row, e.Actual, e.Expected)
	}
	return fmt.Sprintf("%v: %d day columns, date window has %d days", ErrColumnCountMismatch, e.Actual, e.Expected)
}

// Is makes ColumnCountError match ErrColumnCountMismatch.
func (e *ColumnCountError) Is(target error) bool {
	return target == ErrColumnCountMismatch
}

// extractionError wraps a collaborator failure so that it matches both
// ErrExtractionFailed and the original cause.
type extractionError struct {
	op  string
	err error
}

func (e *extractionError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrExtractionFailed, e.op, e.err)
}

func (e *extractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}

func (e *extractionError) Unwrap() error {
	return e.err
}

// ExtractionError wraps err from the named collaborator operation so that it
// matches ErrExtractionFailed.
func ExtractionError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrExtractionFailed) {
		return err
	}
	return &extractionError{op: op, err: err}
}
