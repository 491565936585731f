package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnknownFormat          = errors.New("unknown format")
	ErrMissingIdentifier      = errors.New("missing identifier")
	ErrTruncatedRecord        = errors.New("truncated record")
	ErrQualityLengthMismatch  = errors.New("quality length mismatch")
	ErrUnsupportedCompression = errors.New("unsupported compression")
	ErrIO                     = errors.New("i/o failure")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUnknownFormat          ErrorKind = "unknown_format"
	KindMissingIdentifier      ErrorKind = "missing_identifier"
	KindTruncatedRecord        ErrorKind = "truncated_record"
	KindQualityLengthMismatch  ErrorKind = "quality_length_mismatch"
	KindUnsupportedCompression ErrorKind = "unsupported_compression"
	KindIO                     ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
// Record and Line are 1-based positions within the input stream; zero means
// the position is unknown or not applicable.
type OpError struct {
	Op     string
	Kind   ErrorKind
	Record int
	Line   int
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Record > 0 || e.Line > 0 {
		base += fmt.Sprintf(" (record=%d line=%d)", e.Record, e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
