//go:build tinygo

package rawprint

// Serial terminals expect a carriage return.
const lineEnding = "\r\n"

func init() {
	globalLogger = NewLogger(Stderr)
}
