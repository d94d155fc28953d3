// Package rawprint prints formatted text with a single raw write to the
// standard output or error descriptor, bypassing os.Stdout, bufio and log.
//
// Every call renders into a fixed BufferSize array on its own stack and
// issues exactly one write. Output that does not fit is truncated, and
// write errors are ignored: this is best-effort diagnostic output that
// keeps working during teardown, from signal paths and on TinyGo boards.
//
//	rawprint.Println("Hello %s!", "stdout")
//	b := rawprint.Dbg(2*2) + 1
//
// Format verbs are those of package fmt. Booleans, integers, floats,
// strings, byte slices, errors and Stringers are rendered without fmt;
// other operands are handed to fmt on hosted builds.
package rawprint

import (
	"errors"
	"io"
	"strconv"

	"github.com/michcald/rawprint/internal/render"
)

// BufferSize is the capacity of the buffer a single call renders into.
// Output beyond it is dropped; line variants still end in a newline.
const BufferSize = render.Size

var (
	ErrInvalidFD = errors.New("invalid file descriptor")
	ErrBus       = errors.New("bus write failed")
)

// FD selects the descriptor a raw write goes to.
type FD int

const (
	Stdout FD = 1
	Stderr FD = 2
)

func (fd FD) String() string {
	switch fd {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "fd" + strconv.Itoa(int(fd))
	}
}

// Write issues one raw write of p. A short write is returned as is, not
// retried.
func (fd FD) Write(p []byte) (int, error) {
	return rawWrite(fd, p)
}

// Print formats to standard output.
func Print(format string, args ...any) {
	output(Stdout, false, format, args)
}

// Println formats to standard output and appends a newline.
func Println(format string, args ...any) {
	output(Stdout, true, format, args)
}

// Eprint formats to standard error.
func Eprint(format string, args ...any) {
	output(Stderr, false, format, args)
}

// Eprintln formats to standard error and appends a newline.
func Eprintln(format string, args ...any) {
	output(Stderr, true, format, args)
}

// output is the whole bridge: render on the stack and one raw write.
// The print functions drop its result.
func output(fd FD, line bool, format string, args []any) (int, error) {
	var b render.Buffer
	if line {
		b.Reset(1)
	} else {
		b.Reset(0)
	}
	b.Printf(format, args)
	if line {
		b.Newline()
	}
	return rawWrite(fd, b.Bytes())
}

// Fprint formats into the same fixed buffer and hands it to w in a single
// Write. It returns the number of bytes w accepted and w's error, which
// the stream functions above discard.
//
// An FD is written to directly. Any other writer receives a slice of the
// buffer through an interface call, which moves the buffer to the heap.
func Fprint(w io.Writer, format string, args ...any) (int, error) {
	if fd, ok := w.(FD); ok {
		return output(fd, false, format, args)
	}
	return fprint(w, false, format, args)
}

// Fprintln is Fprint with a trailing newline.
func Fprintln(w io.Writer, format string, args ...any) (int, error) {
	if fd, ok := w.(FD); ok {
		return output(fd, true, format, args)
	}
	return fprint(w, true, format, args)
}

func fprint(w io.Writer, line bool, format string, args []any) (int, error) {
	var b render.Buffer
	if line {
		b.Reset(1)
	} else {
		b.Reset(0)
	}
	b.Printf(format, args)
	if line {
		b.Newline()
	}
	return w.Write(b.Bytes())
}
