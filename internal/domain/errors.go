package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or incomplete input record
type ValidationError struct {
	Index  int    // 0-based position of the record in the input
	Field  string // Offending field name
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("record %d: field %q: %s", e.Index, e.Field, e.Reason)
}

// UnsupportedFormatError reports an unknown rendering mode or file type
type UnsupportedFormatError struct {
	Requested string
	Valid     []string
}

func (e *UnsupportedFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported format %q (valid: %s)", e.Requested, strings.Join(e.Valid, ", "))
}

// IOError reports an input or output file that could not be read or written
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
