// Command matcalc computes linear-algebra quantities over matrices stored
// in the matfile text format.
//
// Usage:
//
//	matcalc -f input_file                          Frobenius norm
//	matcalc -t input_file [output_file]            Transpose
//	matcalc -m input_file_1 input_file_2 [output]  Matrix product
//	matcalc -d input_file                          Determinant
//	matcalc -a input_file [output_file]            Adjoint
//	matcalc -i input_file [output_file]            Inverse
//
// Matrix results are serialized back to the matfile format, to the named
// output file when one is given and to stdout otherwise, with a leading
// comment header echoing the invocation and version. Scalar results print
// as plain sentences. Diagnostics go to stderr; stdout carries results only.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/matcalc/matfile"
	"github.com/katalvlaran/matcalc/matrix"
)

// version is stamped into the output header; overridable at link time.
var version = "1.1.0"

// Exit codes, kept stable for scripting against the calculator.
const (
	exitOK            = 0
	exitUsage         = 1
	exitIO            = 3
	exitInvalidFile   = 4
	exitInvalidMatrix = 5
)

// errUsage marks wrong operations or argument counts; usage text has
// already been printed when it is returned.
var errUsage = errors.New("matcalc: incorrect operation or command line arguments")

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(os.Args, os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error("matcalc failed", "err", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the calculator's exit-code contract.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, matfile.ErrIO):
		return exitIO
	case errors.Is(err, matfile.ErrInvalidFormat):
		return exitInvalidFile
	default:
		// Dimension mismatch, singular matrix: the file parsed, the math said no.
		return exitInvalidMatrix
	}
}

// usage prints the operation reference to w.
func usage(w io.Writer, args []string) {
	op := ""
	if len(args) > 1 {
		op = args[1]
	}
	fmt.Fprintf(w, "Incorrect operation %q or incorrect command line arguments.\n\n", op)
	fmt.Fprint(w, "Please choose one of the following operations and enter the correct command line arguments:\n"+
		"'-f': Frobenius Norm : matcalc -f input_file\n"+
		"'-t': Transpose : matcalc -t input_file (output_file)\n"+
		"'-m': Matrix Product : matcalc -m input_file_1 input_file_2 (output_file)\n"+
		"'-d': Determinant : matcalc -d input_file\n"+
		"'-a': Adjoint : matcalc -a input_file (output_file)\n"+
		"'-i': Inverse : matcalc -i input_file (output_file)\n\n")
	fmt.Fprint(w, "The (output_file) is optional. If no file is given the matrix is written to stdout.\n")
}

// load reads and validates one input matrix.
func load(path string) (*matrix.Dense, error) {
	slog.Info("processing file", "path", path)

	return matfile.ReadFile(path)
}

// emit serializes a result matrix to outPath, or to stdout when outPath is
// empty, with a header echoing the invocation and version.
func emit(args []string, stdout io.Writer, m matrix.Matrix, outPath string) error {
	header := []string{
		strings.Join(args, " "),
		"matcalc version " + version,
	}
	if outPath == "" {
		return matfile.Write(stdout, m, header...)
	}
	if err := matfile.WriteFile(outPath, m, header...); err != nil {
		return err
	}
	slog.Info("output matrix written", "path", outPath)

	return nil
}

// optionalOut returns the optional trailing output path of args, given the
// index right after the last input file.
func optionalOut(args []string, after int) string {
	if len(args) > after {
		return args[after]
	}

	return ""
}

// run dispatches one invocation. It is separated from main so tests can
// drive the full pipeline with a captured stdout.
func run(args []string, stdout io.Writer) error {
	if len(args) < 2 {
		usage(os.Stderr, args)

		return errUsage
	}

	switch op := args[1]; op {
	case "-f":
		if len(args) != 3 {
			break
		}
		m, err := load(args[2])
		if err != nil {
			return err
		}
		v, err := matrix.Norm(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "The Frobenius norm of the matrix is %.10g.\n", v)

		return nil

	case "-d":
		if len(args) != 3 {
			break
		}
		m, err := load(args[2])
		if err != nil {
			return err
		}
		v, err := matrix.Determinant(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "The determinant of the matrix is %.10g.\n", v)

		return nil

	case "-t", "-a", "-i":
		if len(args) < 3 || len(args) > 4 {
			break
		}
		m, err := load(args[2])
		if err != nil {
			return err
		}
		var res matrix.Matrix
		switch op {
		case "-t":
			res, err = matrix.Transpose(m)
		case "-a":
			res, err = matrix.Adjoint(m)
		default:
			res, err = matrix.Inverse(m)
		}
		if err != nil {
			return err
		}

		return emit(args, stdout, res, optionalOut(args, 3))

	case "-m":
		if len(args) < 4 || len(args) > 5 {
			break
		}
		a, err := load(args[2])
		if err != nil {
			return err
		}
		b, err := load(args[3])
		if err != nil {
			return err
		}
		// Usability nicety owned by this layer, never by matrix.Mul: when the
		// stated order is incompatible but the swapped order works, swap and
		// say so.
		if a.Cols() != b.Rows() && b.Cols() == a.Rows() {
			slog.Warn("input order of the two matrices was swapped to form their product")
			a, b = b, a
		}
		res, err := matrix.Mul(a, b)
		if err != nil {
			return err
		}

		return emit(args, stdout, res, optionalOut(args, 4))
	}

	usage(os.Stderr, args)

	return errUsage
}
