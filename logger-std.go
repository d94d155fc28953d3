//go:build !tinygo

package rawprint

const lineEnding = "\n"

func init() {
	globalLogger = NewLogger(Stderr)
}
