//go:build baremetal

package render

import "reflect"

// Formatter cannot be detected without package fmt, which bare-metal
// builds leave out to keep the image small.
func isFormatter(arg any) bool { return false }

// unhandled marks an operand the native printer cannot render, in the
// style of fmt's error strings: %!verb(type).
func (p *printer) unhandled(arg any, verb rune) {
	p.b.WriteString("%!")
	p.writeRune(verb)
	p.b.writeByte('(')
	if arg == nil {
		p.b.WriteString("<nil>")
	} else {
		p.b.WriteString(reflect.TypeOf(arg).String())
	}
	p.b.writeByte(')')
}

func (p *printer) reordered(format string, args []any) {
	p.b.WriteString(format)
	p.b.WriteString("%!(BADINDEX)")
}
