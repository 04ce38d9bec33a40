// Package matfile reads and writes the matcalc matrix text format.
//
// 🚀 The format
//
//	matrix <rows> <cols>        # header line
//	<v> <v> ... <v>             # exactly <cols> values per line,
//	...                         # exactly <rows> such lines
//	end                         # terminator
//
// Rules:
//   - `#` starts a comment extending to end of line; a comment may stand
//     alone or trail meaningful content.
//   - Blank lines are ignored anywhere.
//   - Spaces and tabs separate tokens; values use standard decimal or
//     exponential notation (1e-12 is fine, "1.5x" is not).
//
// ✨ Why its own package?
//
//	The reader's value is its diagnostics: every violation is reported as a
//	*FormatError carrying the source name, the exact line number, the
//	offending token and the rule that was broken — never a generic
//	"parse error". Parsing state is an explicit context threaded through
//	the reader, so the package is reentrant and testable in isolation.
//
// A failed parse never returns a partially populated matrix; callers can
// assume a non-nil error means no usable value.
package matfile
