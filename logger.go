package rawprint

import (
	"io"

	"github.com/michcald/rawprint/internal/render"
)

// Logger defines the logging interface for simple string messages.
// Using simple strings instead of formatted strings helps reduce binary size
// and memory allocations on microcontrollers (TinyGo).
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

var globalLogger Logger = &nopLogger{}

// SetLogger sets the logger the package reports bus events to.
func SetLogger(l Logger) {
	if l == nil {
		globalLogger = &nopLogger{}
		return
	}
	globalLogger = l
}

// nopLogger is a logger that does nothing.
type nopLogger struct{}

func (l *nopLogger) Debug(msg string) {}
func (l *nopLogger) Info(msg string)  {}
func (l *nopLogger) Warn(msg string)  {}
func (l *nopLogger) Error(msg string) {}

// NewLogger returns a Logger that writes each message as one line, with a
// level prefix, in a single Write to w. With Stdout or Stderr the line is
// rendered on the stack and written raw; other writers get it through
// Write, which puts the line buffer on the heap.
func NewLogger(w io.Writer) Logger {
	if fd, ok := w.(FD); ok {
		return &rawLogger{fd: fd, raw: true}
	}
	return &rawLogger{w: w}
}

type rawLogger struct {
	w   io.Writer
	fd  FD
	raw bool
}

func (l *rawLogger) log(level, msg string) {
	if l.raw {
		logRaw(l.fd, level, msg)
		return
	}
	var b render.Buffer
	logLine(&b, level, msg)
	l.w.Write(b.Bytes())
}

func logRaw(fd FD, level, msg string) {
	var b render.Buffer
	logLine(&b, level, msg)
	rawWrite(fd, b.Bytes())
}

func logLine(b *render.Buffer, level, msg string) {
	b.Reset(len(lineEnding))
	b.WriteString(level)
	b.WriteString(msg)
	b.End(lineEnding)
}

func (l *rawLogger) Debug(msg string) { l.log("[DEBUG] ", msg) }
func (l *rawLogger) Info(msg string)  { l.log("[INFO]  ", msg) }
func (l *rawLogger) Warn(msg string)  { l.log("[WARN]  ", msg) }
func (l *rawLogger) Error(msg string) { l.log("[ERROR] ", msg) }
