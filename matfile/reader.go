// SPDX-License-Identifier: MIT
// Package matfile: the matrix text-format reader.
//
// Purpose:
//   - Load a validated *matrix.Dense from a text source, or fail with a
//     diagnostic naming the exact line, token and rule.
//
// Notes:
//   - All parsing state lives in an explicit parseContext value threaded
//     through the stages (header → data rows → terminator); there is no
//     package-level mutable state, so concurrent reads of independent
//     sources are safe.
//   - Line numbers count physical lines, including skipped blank/comment
//     lines, so diagnostics point into the file as an editor shows it.

package matfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matcalc/matrix"
)

// Format keywords and the comment marker.
const (
	keywordMatrix = "matrix" // header line opener
	keywordEnd    = "end"    // terminator line
	commentMark   = "#"      // starts a comment, runs to end of line
)

// parseContext is the transient state of one parse: the source identifier
// (for diagnostics), the scanner, the current physical line number, the
// current line's tokens and the most recently extracted token. It exists
// only to make diagnostics precise and is discarded when the parse ends.
type parseContext struct {
	source string         // diagnostics identifier, never used for I/O
	sc     *bufio.Scanner // line-oriented scanner over the input
	line   int            // 1-based physical line number
	tokens []string       // whitespace-split tokens of the current line
	pos    int            // next token index within tokens
	token  string         // last extracted token, "" at end of input
	opts   options        // resolved reader limits
}

// failf builds the diagnostic for a grammar violation at the current
// position. The concrete type is always *FormatError (unwraps to
// ErrInvalidFormat).
func (p *parseContext) failf(reason string) error {
	return &FormatError{Source: p.source, Line: p.line, Token: p.token, Reason: reason}
}

// nextLine advances to the next significant line: blank lines and lines
// whose first token starts with "#" are skipped entirely. Returns false at
// end of input. A scanner failure (including a line over the configured
// maximum length) surfaces as ErrIO.
func (p *parseContext) nextLine() (bool, error) {
	for {
		p.line++ // count every physical line, even skipped ones
		if !p.sc.Scan() {
			if err := p.sc.Err(); err != nil {
				if errors.Is(err, bufio.ErrTooLong) {
					return false, fmt.Errorf("matfile: %s:%d: line exceeds %d bytes: %w",
						p.source, p.line, p.opts.maxLineLen, ErrIO)
				}

				return false, fmt.Errorf("matfile: %s:%d: read: %w: %v", p.source, p.line, ErrIO, err)
			}

			return false, nil // clean end of input
		}

		p.tokens = strings.Fields(p.sc.Text())
		p.pos = 0
		// Skip blank lines and full-line comments before considering content.
		if len(p.tokens) == 0 || strings.HasPrefix(p.tokens[0], commentMark) {
			continue
		}
		p.token = p.tokens[0]

		return true, nil
	}
}

// nextToken extracts the next token of the current line, recording it as
// the error-context token. ok is false when the line is exhausted.
func (p *parseContext) nextToken() (tok string, ok bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	tok = p.tokens[p.pos]
	p.pos++
	p.token = tok

	return tok, true
}

// endOfLine enforces that nothing but an optional comment token remains on
// the current line.
func (p *parseContext) endOfLine() error {
	if tok, ok := p.nextToken(); ok && !strings.HasPrefix(tok, commentMark) {
		return p.failf("unexpected trailing content")
	}

	return nil
}

// dimension parses one positive integer dimension from the header line and
// enforces the configured maximum.
func (p *parseContext) dimension() (int, error) {
	tok, ok := p.nextToken()
	if !ok {
		p.token = ""

		return 0, p.failf("rows/columns declaration invalid")
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 1 {
		return 0, p.failf("rows/columns declaration invalid")
	}
	if v > p.opts.maxDim {
		return 0, p.failf("rows or columns exceed the configured maximum")
	}

	return v, nil
}

// header consumes the declaration line: the literal "matrix", then rows and
// cols, optionally followed only by a comment token.
func (p *parseContext) header() (rows, cols int, err error) {
	ok, err := p.nextLine()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		p.token = ""

		return 0, 0, p.failf("missing matrix declaration")
	}

	tok, _ := p.nextToken() // a significant line always has a first token
	if tok != keywordMatrix {
		return 0, 0, p.failf("missing matrix keyword")
	}
	if rows, err = p.dimension(); err != nil {
		return 0, 0, err
	}
	if cols, err = p.dimension(); err != nil {
		return 0, 0, err
	}
	if err = p.endOfLine(); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// dataRows consumes exactly m.Rows() significant lines of m.Cols() float64
// tokens each, populating m in row-major order.
func (p *parseContext) dataRows(m *matrix.Dense) error {
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		ok, err := p.nextLine()
		if err != nil {
			return err
		}
		if !ok {
			p.token = ""

			return p.failf("row count mismatch")
		}

		for j = 0; j < cols; j++ {
			tok, ok := p.nextToken()
			if !ok {
				return p.failf("element count mismatch")
			}
			// The terminator inside a data row means fewer rows than declared.
			if tok == keywordEnd {
				return p.failf("row count mismatch")
			}
			// A comment may only follow a complete row.
			if strings.HasPrefix(tok, commentMark) {
				return p.failf("element count mismatch")
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return p.failf("invalid matrix element")
			}
			if err = m.Set(i, j, v); err != nil {
				return fmt.Errorf("matfile: %s:%d: %w", p.source, p.line, err)
			}
		}
		if err := p.endOfLine(); err != nil {
			return err
		}
	}

	return nil
}

// terminator consumes the final significant line, which must be exactly the
// literal "end" plus an optional comment token.
func (p *parseContext) terminator() error {
	ok, err := p.nextLine()
	if err != nil {
		return err
	}
	if !ok {
		p.token = ""

		return p.failf("missing terminator")
	}

	tok, _ := p.nextToken()
	if tok != keywordEnd {
		return p.failf("missing terminator")
	}

	return p.endOfLine()
}

// Read parses one matrix from r. source is the identifier used in
// diagnostics (a file path, "stdin", a test name — anything meaningful to
// the caller).
//
// Implementation:
//   - Stage 1: header line → declared shape, allocate the Dense.
//   - Stage 2: exactly R data lines of C elements each.
//   - Stage 3: the "end" terminator line.
//
// Errors:
//   - *FormatError / ErrInvalidFormat — any grammar violation, with the
//     offending line and token.
//   - ErrIO — reader failure or an over-long line.
//
// On failure the returned matrix is always nil; no partial values escape.
// Complexity: O(bytes read) time, O(R*C) memory for the result.
func Read(r io.Reader, source string, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	// Scanner enforces the larger of max and the initial capacity, so the
	// initial buffer must stay within the configured limit.
	initial := o.maxLineLen
	if initial > 4096 {
		initial = 4096
	}
	sc.Buffer(make([]byte, 0, initial), o.maxLineLen)

	p := &parseContext{source: source, sc: sc, opts: o}

	rows, cols, err := p.header()
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		// Unreachable in practice: dimension() already rejects non-positive
		// values, but keep the guard so the invariant has one owner.
		return nil, fmt.Errorf("matfile: %s:%d: %w", source, p.line, err)
	}
	if err = p.dataRows(m); err != nil {
		return nil, err
	}
	if err = p.terminator(); err != nil {
		return nil, err
	}

	return m, nil
}

// ReadFile opens path and parses one matrix from it, using the path itself
// as the diagnostic source identifier.
//
// Errors:
//   - ErrIO — the file cannot be opened or read.
//   - ErrInvalidFormat — as for Read.
func ReadFile(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: open %s: %w: %v", path, ErrIO, err)
	}
	defer f.Close()

	return Read(f, path, opts...)
}
