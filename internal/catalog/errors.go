package catalog

import (
	"errors"
	"fmt"
)

// Reason classifies why a record was skipped.
type Reason string

const (
	ReasonTruncated   Reason = "TRUNCATED"    // record shorter than the field layout
	ReasonBadField    Reason = "BAD_FIELD"    // field present but not parseable
	ReasonExtraFields Reason = "EXTRA_FIELDS" // figure record has trailing data
	ReasonDuplicate   Reason = "DUPLICATE"    // figure name seen before; later record wins
	ReasonUnknownStar Reason = "UNKNOWN_STAR" // line endpoint not in the star catalog
)

// RecordError describes a single skipped record. Skipped records never abort
// a load; they are collected in the load stats.
type RecordError struct {
	Source string // file name or "-" for a stream
	Line   int    // 1-based line number, 0 when not line-oriented
	Reason Reason
	Field  string // offending field name, if any
	Value  string // offending raw value, if any
	Err    error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
	if e.Field != "" {
		msg += fmt.Sprintf(" %s=%q", e.Field, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying parse error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsReason reports whether err is a RecordError with the given reason.
func IsReason(err error, reason Reason) bool {
	var rErr *RecordError
	if errors.As(err, &rErr) {
		return rErr.Reason == reason
	}
	return false
}
