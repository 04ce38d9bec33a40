// SPDX-License-Identifier: MIT
// Package matfile_test contains unit tests for the matrix text-format
// reader, with a focus on the diagnostic contract: exact line, exact
// token, rule-specific reason.
package matfile_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/matcalc/matfile"
	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
)

// rowsOf flattens a matrix into [][]float64 for go-cmp diffs.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// mustRead parses src or fails the test.
func mustRead(t *testing.T, src string, opts ...matfile.Option) *matrix.Dense {
	t.Helper()
	m, err := matfile.Read(strings.NewReader(src), t.Name(), opts...)
	require.NoError(t, err)

	return m
}

// requireFormatError asserts that parsing src fails with a *FormatError at
// the given line with the given token, and returns it for further checks.
func requireFormatError(t *testing.T, src string, line int, token string) *matfile.FormatError {
	t.Helper()
	m, err := matfile.Read(strings.NewReader(src), t.Name())
	require.Nil(t, m, "failed parse must not return a matrix")
	require.ErrorIs(t, err, matfile.ErrInvalidFormat)

	var fe *matfile.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, line, fe.Line, "line number")
	require.Equal(t, token, fe.Token, "offending token")
	require.Equal(t, t.Name(), fe.Source)
	require.NotEmpty(t, fe.Reason)

	return fe
}

// ---------- happy paths ----------

func TestRead_Simple(t *testing.T) {
	m := mustRead(t, "matrix 2 2\n1 2\n3 4\nend\n")

	if diff := cmp.Diff([][]float64{{1, 2}, {3, 4}}, rowsOf(t, m)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_CommentsAndBlankLines(t *testing.T) {
	src := strings.Join([]string{
		"# generated fixture",
		"",
		"matrix 2 3 # shape",
		"  ",
		"1\t2 3 # first row",
		"# interleaved comment",
		"4 5 6",
		"",
		"end # done",
		"",
	}, "\n")

	m := mustRead(t, src)
	if diff := cmp.Diff([][]float64{{1, 2, 3}, {4, 5, 6}}, rowsOf(t, m)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_DegenerateVectors(t *testing.T) {
	one := mustRead(t, "matrix 1 1\n-2.5\nend\n")
	require.Equal(t, 1, one.Rows())
	require.Equal(t, 1, one.Cols())

	row := mustRead(t, "matrix 1 3\n1 2 3\nend\n")
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 3, row.Cols())

	col := mustRead(t, "matrix 3 1\n1\n2\n3\nend\n")
	require.Equal(t, 3, col.Rows())
	require.Equal(t, 1, col.Cols())
}

func TestRead_ExponentTokens(t *testing.T) {
	m := mustRead(t, "matrix 1 3\n1e-12 -2.5E3 +0.5\nend\n")

	if diff := cmp.Diff([][]float64{{1e-12, -2500, 0.5}}, rowsOf(t, m)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_MissingTrailingNewline(t *testing.T) {
	m := mustRead(t, "matrix 1 1\n7\nend")
	require.Equal(t, 7.0, rowsOf(t, m)[0][0])
}

// ---------- header violations ----------

func TestRead_EmptyInput(t *testing.T) {
	fe := requireFormatError(t, "", 1, "")
	require.Equal(t, "missing matrix declaration", fe.Reason)
}

func TestRead_MissingMatrixKeyword(t *testing.T) {
	fe := requireFormatError(t, "martix 2 2\n1 2\n3 4\nend\n", 1, "martix")
	require.Equal(t, "missing matrix keyword", fe.Reason)
}

func TestRead_HeaderDimensionInvalid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		src   string
		token string
	}{
		{"zero rows", "matrix 0 2\nend\n", "0"},
		{"negative cols", "matrix 2 -1\nend\n", "-1"},
		{"non-numeric rows", "matrix two 2\nend\n", "two"},
		{"float rows", "matrix 2.5 2\nend\n", "2.5"},
		{"missing cols", "matrix 2\nend\n", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fe := requireFormatError(t, tc.src, 1, tc.token)
			require.Equal(t, "rows/columns declaration invalid", fe.Reason)
		})
	}
}

func TestRead_HeaderDimensionTooLarge(t *testing.T) {
	fe := requireFormatError(t, "matrix 2001 2\nend\n", 1, "2001")
	require.Equal(t, "rows or columns exceed the configured maximum", fe.Reason)
}

func TestRead_MaxDimensionOption(t *testing.T) {
	// 4 is fine by default but rejected once the cap is tightened.
	src := "matrix 4 1\n1\n2\n3\n4\nend\n"
	mustRead(t, src)

	_, err := matfile.Read(strings.NewReader(src), t.Name(), matfile.WithMaxDimension(3))
	require.ErrorIs(t, err, matfile.ErrInvalidFormat)
}

func TestRead_HeaderTrailingContent(t *testing.T) {
	fe := requireFormatError(t, "matrix 2 2 junk\n1 2\n3 4\nend\n", 1, "junk")
	require.Equal(t, "unexpected trailing content", fe.Reason)
}

// ---------- data row violations ----------

func TestRead_ElementCountTooFew(t *testing.T) {
	fe := requireFormatError(t, "matrix 2 3\n1 2\n4 5 6\nend\n", 2, "2")
	require.Equal(t, "element count mismatch", fe.Reason)
}

func TestRead_ElementCountTooMany(t *testing.T) {
	fe := requireFormatError(t, "matrix 2 2\n1 2 3\n4 5\nend\n", 2, "3")
	require.Equal(t, "unexpected trailing content", fe.Reason)
}

func TestRead_RowCountTooFew(t *testing.T) {
	// Declared 3×3 but only two data rows: "end" shows up inside row 3.
	fe := requireFormatError(t, "matrix 3 3\n1 2 3\n4 5 6\nend\n", 4, "end")
	require.Equal(t, "row count mismatch", fe.Reason)
}

func TestRead_InvalidElementToken(t *testing.T) {
	fe := requireFormatError(t, "matrix 2 2\n1 1.5x\n3 4\nend\n", 2, "1.5x")
	require.Equal(t, "invalid matrix element", fe.Reason)
}

func TestRead_CommentBeforeRowComplete(t *testing.T) {
	fe := requireFormatError(t, "matrix 1 2\n1 # half a row\nend\n", 2, "#")
	require.Equal(t, "element count mismatch", fe.Reason)
}

func TestRead_EOFInsideData(t *testing.T) {
	fe := requireFormatError(t, "matrix 2 2\n1 2\n", 3, "")
	require.Equal(t, "row count mismatch", fe.Reason)
}

// ---------- terminator violations ----------

func TestRead_MissingTerminator(t *testing.T) {
	fe := requireFormatError(t, "matrix 2 2\n1 2\n3 4\n", 4, "")
	require.Equal(t, "missing terminator", fe.Reason)
}

func TestRead_WrongTerminator(t *testing.T) {
	fe := requireFormatError(t, "matrix 2 2\n1 2\n3 4\nEND\n", 4, "END")
	require.Equal(t, "missing terminator", fe.Reason)
}

func TestRead_TerminatorTrailingContent(t *testing.T) {
	fe := requireFormatError(t, "matrix 1 1\n1\nend extra\n", 3, "extra")
	require.Equal(t, "unexpected trailing content", fe.Reason)
}

// ---------- I/O failures ----------

func TestRead_LineTooLong(t *testing.T) {
	src := "matrix 1 1\n" + strings.Repeat("9", 64) + "\nend\n"
	_, err := matfile.Read(strings.NewReader(src), t.Name(), matfile.WithMaxLineLength(16))
	require.ErrorIs(t, err, matfile.ErrIO)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := matfile.ReadFile(t.TempDir() + "/no-such-file.txt")
	require.ErrorIs(t, err, matfile.ErrIO)
}

func TestReadFile_Succeeds(t *testing.T) {
	path := t.TempDir() + "/m.txt"
	m := mustRead(t, "matrix 2 2\n1 2\n3 4\nend\n")
	require.NoError(t, matfile.WriteFile(path, m))

	got, err := matfile.ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(rowsOf(t, m), rowsOf(t, got)); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

// ---------- error surface ----------

func TestFormatError_Message(t *testing.T) {
	_, err := matfile.Read(strings.NewReader("matrix 2 2\n1 oops\n3 4\nend\n"), "bad.txt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.txt:2")
	require.Contains(t, err.Error(), `"oops"`)
	require.True(t, errors.Is(err, matfile.ErrInvalidFormat))
}

func TestOptions_InvalidValuesPanic(t *testing.T) {
	require.Panics(t, func() { matfile.WithMaxDimension(0) })
	require.Panics(t, func() { matfile.WithMaxLineLength(-1) })
}
