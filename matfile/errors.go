// SPDX-License-Identifier: MIT
// Package matfile: sentinel error set and the structured format error.
// Tests and callers match the sentinels via errors.Is; the *FormatError
// carries the diagnostic payload and unwraps to ErrInvalidFormat.

package matfile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is the sentinel for every grammar violation in the
	// matrix text format. The concrete error is always a *FormatError.
	ErrInvalidFormat = errors.New("matfile: invalid matrix file")

	// ErrIO is the sentinel for source-level failures: the file cannot be
	// opened, the reader fails mid-stream, a line exceeds the configured
	// maximum length, or the output target cannot be written.
	ErrIO = errors.New("matfile: i/o failure")
)

// FormatError describes exactly where and why a matrix file violated the
// grammar. Line is 1-based and counts every physical line, including the
// blank and comment lines that were skipped. Token is the most recently
// extracted token ("" when the failure is end-of-input).
type FormatError struct {
	Source string // source identifier (file path or caller-supplied name)
	Line   int    // 1-based physical line number of the violation
	Token  string // offending token, "" at end of input
	Reason string // which rule was violated, human-readable
}

// Error renders the full diagnostic: source, line, reason and token.
func (e *FormatError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("matfile: %s:%d: %s", e.Source, e.Line, e.Reason)
	}

	return fmt.Sprintf("matfile: %s:%d: %s (token %q)", e.Source, e.Line, e.Reason, e.Token)
}

// Unwrap makes errors.Is(err, ErrInvalidFormat) hold for every FormatError.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
