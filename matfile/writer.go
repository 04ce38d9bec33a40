// SPDX-License-Identifier: MIT
// Package matfile: the matrix text-format writer. Output is always
// re-readable by Read: optional "# ..." header lines, the "matrix R C"
// declaration, R tab-separated data lines at %.12g precision, then "end".

package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matcalc/matrix"
)

// valueFormat fixes the serialized element precision. %.12g keeps 12
// significant digits, enough to round-trip typical computation results
// while staying readable.
const valueFormat = "%.12g"

// Write serializes m to w. Each header string becomes one leading "# "
// comment line (callers typically echo the invocation and version here).
//
// Errors:
//   - ErrIO — the writer failed mid-stream.
//   - ErrNilMatrix — m is nil.
//
// Complexity: O(r*c).
func Write(w io.Writer, m matrix.Matrix, header ...string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matfile: write: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, h := range header {
		fmt.Fprintf(bw, "# %s\n", h)
	}

	rows, cols := m.Rows(), m.Cols()
	fmt.Fprintf(bw, "%s %d %d\n", keywordMatrix, rows, cols)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Shape is fixed, so At cannot fail here; keep the guard anyway
			// since m is an arbitrary Matrix implementation.
			v, err = m.At(i, j)
			if err != nil {
				return fmt.Errorf("matfile: write: At(%d,%d): %w", i, j, err)
			}
			fmt.Fprintf(bw, valueFormat+"\t", v)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, keywordEnd)

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("matfile: write: %w: %v", ErrIO, err)
	}

	return nil
}

// WriteFile creates (or truncates) path and serializes m into it.
//
// Errors:
//   - ErrIO — the file cannot be created or written.
func WriteFile(path string, m matrix.Matrix, header ...string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matfile: create %s: %w: %v", path, ErrIO, err)
	}

	if err = Write(f, m, header...); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("matfile: close %s: %w: %v", path, ErrIO, err)
	}

	return nil
}
