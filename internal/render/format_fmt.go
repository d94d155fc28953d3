//go:build !baremetal

package render

import "fmt"

func isFormatter(arg any) bool {
	_, ok := arg.(fmt.Formatter)
	return ok
}

// unhandled renders one operand with package fmt. It covers verbs, flags
// and types the native printer leaves alone, so output always matches
// fmt.Sprintf. fmt may allocate while doing so.
func (p *printer) unhandled(arg any, verb rune) {
	var dir [32]byte
	p.b.appended(fmt.Appendf(p.b.avail(), string(p.directive(dir[:0], verb)), arg))
}

// reordered renders a format that uses explicit argument indexes.
func (p *printer) reordered(format string, args []any) {
	p.b.appended(fmt.Appendf(p.b.avail(), format, args...))
}
