//go:build baremetal

package rawprint

// Boards carry no source files.
func exprAt(file string, line int) string { return "" }
