package rawprint

import (
	"runtime"

	"github.com/michcald/rawprint/internal/render"
)

// Dbg writes "file:line: expr = value" and a newline to standard error
// and returns v unchanged, so it can wrap any expression in place:
//
//	b := rawprint.Dbg(2*2) + 1 // prints "main.go:12: 2*2 = 4"
//
// The expression text is read back from the caller's source file. When the
// source is not available, as on a board, the "expr = " part is left out.
// The file is read on every call, which allocates and does I/O; use DbgExpr
// on hot paths. Calls are matched by line only, so with two Dbg calls on
// one line both report the text of the first.
func Dbg[T any](v T) T {
	debug(2, "", true, v)
	return v
}

// DbgExpr is Dbg with the expression text given by the caller.
func DbgExpr[T any](expr string, v T) T {
	debug(2, expr, false, v)
	return v
}

// DbgDepth is Dbg for wrappers. calldepth counts the frames to skip when
// reporting the location, as in log.Output: 1 reports the caller of
// DbgDepth.
func DbgDepth[T any](calldepth int, v T) T {
	debug(calldepth+1, "", true, v)
	return v
}

func debug(calldepth int, expr string, lookup bool, v any) {
	var b render.Buffer
	b.Reset(1)

	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		file = "???"
		line = 0
	}
	b.WriteString(baseName(file))
	b.WriteString(":")
	b.WriteInt(int64(line))
	b.WriteString(": ")

	if lookup && ok {
		expr = exprAt(file, line)
	}
	if expr != "" {
		b.WriteString(expr)
		b.WriteString(" = ")
	}

	b.Value(v)
	b.Newline()
	rawWrite(Stderr, b.Bytes())
}

// baseName trims the directories from a runtime file path, which always
// uses forward slashes.
func baseName(file string) string {
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '/' {
			return file[i+1:]
		}
	}
	return file
}
