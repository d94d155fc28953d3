// Package rawfmt offers the printing half of package fmt under the same
// names, backed by rawprint's single raw write. Swapping the import is
// enough to move a program's diagnostics off the buffered streams:
//
//	import fmt "github.com/michcald/rawprint/rawfmt"
//
// Output longer than rawprint.BufferSize is truncated. The returned count
// is what the descriptor accepted.
package rawfmt

import (
	"io"

	"github.com/michcald/rawprint"
	"github.com/michcald/rawprint/internal/render"
)

// Print formats its operands as fmt.Print and writes them to standard
// output.
func Print(a ...any) (n int, err error) {
	return Fprint(rawprint.Stdout, a...)
}

// Println formats its operands as fmt.Println and writes them to standard
// output.
func Println(a ...any) (n int, err error) {
	return Fprintln(rawprint.Stdout, a...)
}

// Printf formats according to a format specifier and writes to standard
// output.
func Printf(format string, a ...any) (n int, err error) {
	return Fprintf(rawprint.Stdout, format, a...)
}

// Eprint is Print to standard error, like the builtin print.
func Eprint(a ...any) (n int, err error) {
	return Fprint(rawprint.Stderr, a...)
}

// Eprintln is Println to standard error, like the builtin println.
func Eprintln(a ...any) (n int, err error) {
	return Fprintln(rawprint.Stderr, a...)
}

// Eprintf is Printf to standard error.
func Eprintf(format string, a ...any) (n int, err error) {
	return Fprintf(rawprint.Stderr, format, a...)
}

func Fprint(w io.Writer, a ...any) (n int, err error) {
	var b render.Buffer
	b.Reset(0)
	b.Print(a)
	return w.Write(b.Bytes())
}

func Fprintln(w io.Writer, a ...any) (n int, err error) {
	var b render.Buffer
	b.Reset(1)
	b.Println(a)
	b.Newline()
	return w.Write(b.Bytes())
}

func Fprintf(w io.Writer, format string, a ...any) (n int, err error) {
	var b render.Buffer
	b.Reset(0)
	b.Printf(format, a)
	return w.Write(b.Bytes())
}

// Dbg is rawprint.Dbg.
func Dbg[T any](v T) T {
	return rawprint.DbgDepth(2, v)
}
