package render

import (
	"reflect"
	"strconv"
	"unicode/utf8"
)

const (
	ldigits = "0123456789abcdefx"
	udigits = "0123456789ABCDEFX"
)

// tooLarge reports whether the magnitude of a width or precision is
// unreasonable. fmt uses the same bound.
func tooLarge(x int) bool {
	const max int = 1e6
	return x > max || x < -max
}

type flags struct {
	plus, minus, sharp, space, zero bool
	plusV, sharpV                   bool

	wid, prec               int
	widPresent, precPresent bool
}

// printer renders a directive at a time into b. It mirrors the rules of
// package fmt for everything it handles itself and hands the rest to
// unhandled, which lives in a build-specific file.
type printer struct {
	b *Buffer
	f flags
	// intbuf holds an integer or float rendering before padding.
	intbuf [68]byte
	// panicking is set while a panic from an Error or String method is
	// being rendered, so a second one is not caught.
	panicking bool
}

// printf renders format and args the way fmt.Sprintf does.
func (p *printer) printf(format string, args []any) {
	if hasArgIndex(format) {
		p.reordered(format, args)
		return
	}

	end := len(format)
	argNum := 0
	for i := 0; i < end; {
		lasti := i
		for i < end && format[i] != '%' {
			i++
		}
		if i > lasti {
			p.b.WriteString(format[lasti:i])
		}
		if i >= end {
			break
		}
		if p.b.full() {
			return
		}

		i++
		p.f = flags{}
	flagLoop:
		for ; i < end; i++ {
			switch format[i] {
			case '#':
				p.f.sharp = true
			case '0':
				p.f.zero = !p.f.minus
			case '+':
				p.f.plus = true
			case '-':
				p.f.minus = true
				p.f.zero = false
			case ' ':
				p.f.space = true
			default:
				break flagLoop
			}
		}

		if i < end && format[i] == '*' {
			i++
			p.f.wid, p.f.widPresent, argNum = intFromArg(args, argNum)
			if !p.f.widPresent {
				p.b.WriteString("%!(BADWIDTH)")
			}
			if p.f.wid < 0 {
				p.f.wid = -p.f.wid
				p.f.minus = true
				p.f.zero = false
			}
		} else {
			p.f.wid, p.f.widPresent, i = parsenum(format, i, end)
		}

		if i+1 <= end && format[i] == '.' {
			i++
			if i < end && format[i] == '*' {
				i++
				p.f.prec, p.f.precPresent, argNum = intFromArg(args, argNum)
				if p.f.prec < 0 {
					p.f.prec = 0
					p.f.precPresent = false
				}
				if !p.f.precPresent {
					p.b.WriteString("%!(BADPREC)")
				}
			} else {
				p.f.prec, p.f.precPresent, i = parsenum(format, i, end)
				if !p.f.precPresent {
					p.f.prec = 0
					p.f.precPresent = true
				}
			}
		}

		if i >= end {
			p.b.WriteString("%!(NOVERB)")
			break
		}

		verb, size := rune(format[i]), 1
		if verb >= utf8.RuneSelf {
			verb, size = utf8.DecodeRuneInString(format[i:])
		}
		i += size

		switch {
		case verb == '%':
			p.b.writeByte('%')
		case argNum >= len(args):
			p.b.WriteString("%!")
			p.writeRune(verb)
			p.b.WriteString("(MISSING)")
		case verb == 'v':
			p.f.sharpV, p.f.sharp = p.f.sharp, false
			p.f.plusV, p.f.plus = p.f.plus, false
			fallthrough
		default:
			p.printArg(args[argNum], verb)
			argNum++
		}
	}

	if argNum < len(args) {
		p.f = flags{}
		p.b.WriteString("%!(EXTRA ")
		for i, arg := range args[argNum:] {
			if i > 0 {
				p.b.WriteString(", ")
			}
			if arg == nil {
				p.b.WriteString("<nil>")
				continue
			}
			p.b.WriteString(reflect.TypeOf(arg).String())
			p.b.writeByte('=')
			p.printArg(arg, 'v')
		}
		p.b.writeByte(')')
	}
}

// print renders operands the way fmt.Sprint does: a space goes between
// two operands when neither is a string.
func (p *printer) print(args []any) {
	prevString := false
	for i, arg := range args {
		isString := arg != nil && reflect.TypeOf(arg).Kind() == reflect.String
		if i > 0 && !isString && !prevString {
			p.b.writeByte(' ')
		}
		p.f = flags{}
		p.printArg(arg, 'v')
		prevString = isString
	}
}

// println renders operands the way fmt.Sprintln does, without the
// newline.
func (p *printer) println(args []any) {
	for i, arg := range args {
		if i > 0 {
			p.b.writeByte(' ')
		}
		p.f = flags{}
		p.printArg(arg, 'v')
	}
}

func (p *printer) printArg(arg any, verb rune) {
	if arg == nil {
		if verb == 'v' && !p.f.sharpV {
			p.padString("<nil>")
			return
		}
		p.unhandled(arg, verb)
		return
	}
	if p.f.sharpV || isFormatter(arg) {
		p.unhandled(arg, verb)
		return
	}

	switch v := arg.(type) {
	case bool:
		p.fmtBool(v, verb)
	case int:
		p.fmtInt(arg, uint64(v), true, verb)
	case int8:
		p.fmtInt(arg, uint64(v), true, verb)
	case int16:
		p.fmtInt(arg, uint64(v), true, verb)
	case int32:
		p.fmtInt(arg, uint64(v), true, verb)
	case int64:
		p.fmtInt(arg, uint64(v), true, verb)
	case uint:
		p.fmtInt(arg, uint64(v), false, verb)
	case uint8:
		p.fmtInt(arg, uint64(v), false, verb)
	case uint16:
		p.fmtInt(arg, uint64(v), false, verb)
	case uint32:
		p.fmtInt(arg, uint64(v), false, verb)
	case uint64:
		p.fmtInt(arg, v, false, verb)
	case uintptr:
		p.fmtInt(arg, uint64(v), false, verb)
	case float32:
		p.fmtFloat(arg, float64(v), 32, verb)
	case float64:
		p.fmtFloat(arg, v, 64, verb)
	case string:
		p.fmtString(arg, v, verb)
	case []byte:
		if verb == 's' && !p.f.sharp {
			p.padBytes(v)
			return
		}
		p.unhandled(arg, verb)
	case error:
		if isStringVerb(verb) {
			p.fmtError(arg, v, verb)
			return
		}
		p.unhandled(arg, verb)
	case stringer:
		if isStringVerb(verb) {
			p.fmtStringer(arg, v, verb)
			return
		}
		p.unhandled(arg, verb)
	default:
		p.unhandled(arg, verb)
	}
}

type stringer interface {
	String() string
}

func (p *printer) fmtError(arg any, v error, verb rune) {
	defer p.catchPanic(arg, verb, "Error")
	p.fmtString(arg, v.Error(), verb)
}

func (p *printer) fmtStringer(arg any, v stringer, verb rune) {
	defer p.catchPanic(arg, verb, "String")
	p.fmtString(arg, v.String(), verb)
}

// catchPanic recovers from a panicking Error or String method as fmt
// does. A nil pointer receiver renders as <nil>; any other panic is
// rendered in place as %!verb(PANIC=method method: value).
func (p *printer) catchPanic(arg any, verb rune, method string) {
	err := recover()
	if err == nil {
		return
	}
	if v := reflect.ValueOf(arg); v.Kind() == reflect.Pointer && v.IsNil() {
		p.padString(p.truncate("<nil>"))
		return
	}
	if p.panicking {
		panic(err)
	}

	saved := p.f
	p.f = flags{}
	p.b.WriteString("%!")
	p.writeRune(verb)
	p.b.WriteString("(PANIC=")
	p.b.WriteString(method)
	p.b.WriteString(" method: ")
	p.panicking = true
	p.printArg(err, 'v')
	p.panicking = false
	p.b.writeByte(')')
	p.f = saved
}

// isStringVerb reports whether verb makes fmt call Error or String.
func isStringVerb(verb rune) bool {
	switch verb {
	case 'v', 's', 'x', 'X', 'q':
		return true
	}
	return false
}

func (p *printer) fmtBool(v bool, verb rune) {
	switch verb {
	case 't', 'v':
		if p.f.zero {
			p.unhandled(v, verb)
			return
		}
		if v {
			p.padString("true")
		} else {
			p.padString("false")
		}
	default:
		p.unhandled(v, verb)
	}
}

func (p *printer) fmtString(arg any, s string, verb rune) {
	if p.f.zero || p.f.sharp {
		p.unhandled(arg, verb)
		return
	}
	switch verb {
	case 'v', 's':
		p.padString(p.truncate(s))
	case 'q':
		if p.f.widPresent || p.f.precPresent {
			p.unhandled(arg, verb)
			return
		}
		if p.f.plus {
			p.b.appended(strconv.AppendQuoteToASCII(p.b.avail(), s))
		} else {
			p.b.appended(strconv.AppendQuote(p.b.avail(), s))
		}
	default:
		p.unhandled(arg, verb)
	}
}

func (p *printer) truncate(s string) string {
	if p.f.precPresent {
		n := p.f.prec
		for i := range s {
			n--
			if n < 0 {
				return s[:i]
			}
		}
	}
	return s
}

func (p *printer) fmtInt(arg any, v uint64, signed bool, verb rune) {
	if p.f.wid+p.f.prec+3 > len(p.intbuf) {
		p.unhandled(arg, verb)
		return
	}
	switch verb {
	case 'v', 'd':
		p.fmtInteger(v, 10, signed, verb, ldigits)
	case 'b':
		p.fmtInteger(v, 2, signed, verb, ldigits)
	case 'o', 'O':
		p.fmtInteger(v, 8, signed, verb, ldigits)
	case 'x':
		p.fmtInteger(v, 16, signed, verb, ldigits)
	case 'X':
		p.fmtInteger(v, 16, signed, verb, udigits)
	case 'c':
		if p.f.zero {
			p.unhandled(arg, verb)
			return
		}
		r := rune(utf8.RuneError)
		if v <= utf8.MaxRune {
			r = rune(v)
		}
		n := utf8.EncodeRune(p.intbuf[:], r)
		p.pad(p.intbuf[:n])
	default:
		p.unhandled(arg, verb)
	}
}

func (p *printer) fmtInteger(u uint64, base int, signed bool, verb rune, digits string) {
	negative := signed && int64(u) < 0
	if negative {
		u = -u
	}

	buf := p.intbuf[:]

	prec := 0
	if p.f.precPresent {
		prec = p.f.prec
		if prec == 0 && u == 0 {
			oldZero := p.f.zero
			p.f.zero = false
			p.writePadding(p.f.wid)
			p.f.zero = oldZero
			return
		}
	} else if p.f.zero && !p.f.minus && p.f.widPresent {
		prec = p.f.wid
		if negative || p.f.plus || p.f.space {
			prec--
		}
	}

	i := len(buf)
	switch base {
	case 10:
		for u >= 10 {
			i--
			next := u / 10
			buf[i] = byte('0' + u - next*10)
			u = next
		}
	case 16:
		for u >= 16 {
			i--
			buf[i] = digits[u&0xF]
			u >>= 4
		}
	case 8:
		for u >= 8 {
			i--
			buf[i] = byte('0' + u&7)
			u >>= 3
		}
	case 2:
		for u >= 2 {
			i--
			buf[i] = byte('0' + u&1)
			u >>= 1
		}
	}
	i--
	buf[i] = digits[u]
	for i > 0 && prec > len(buf)-i {
		i--
		buf[i] = '0'
	}

	if p.f.sharp {
		switch base {
		case 2:
			i--
			buf[i] = 'b'
			i--
			buf[i] = '0'
		case 8:
			if buf[i] != '0' {
				i--
				buf[i] = '0'
			}
		case 16:
			i--
			buf[i] = digits[16]
			i--
			buf[i] = '0'
		}
	}
	if verb == 'O' {
		i--
		buf[i] = 'o'
		i--
		buf[i] = '0'
	}

	if negative {
		i--
		buf[i] = '-'
	} else if p.f.plus {
		i--
		buf[i] = '+'
	} else if p.f.space {
		i--
		buf[i] = ' '
	}

	oldZero := p.f.zero
	p.f.zero = false
	p.pad(buf[i:])
	p.f.zero = oldZero
}

func (p *printer) fmtFloat(arg any, v float64, size int, verb rune) {
	if p.f.sharp {
		p.unhandled(arg, verb)
		return
	}
	prec := -1
	switch verb {
	case 'v', 'g', 'G':
		if verb == 'v' {
			verb = 'g'
		}
	case 'e', 'E', 'f':
		prec = 6
	case 'F':
		verb = 'f'
		prec = 6
	default:
		p.unhandled(arg, verb)
		return
	}
	if p.f.precPresent {
		prec = p.f.prec
	}

	num := strconv.AppendFloat(p.intbuf[:1], v, byte(verb), prec, size)
	if num[1] == '-' || num[1] == '+' {
		num = num[1:]
	} else {
		num[0] = '+'
	}
	if p.f.space && num[0] == '+' && !p.f.plus {
		num[0] = ' '
	}
	if num[1] == 'I' || num[1] == 'N' {
		oldZero := p.f.zero
		p.f.zero = false
		if num[1] == 'N' && !p.f.space && !p.f.plus {
			num = num[1:]
		}
		p.pad(num)
		p.f.zero = oldZero
		return
	}
	if p.f.plus || num[0] != '+' {
		if p.f.zero && !p.f.minus && p.f.widPresent && p.f.wid > len(num) {
			p.b.writeByte(num[0])
			p.writePadding(p.f.wid - len(num))
			p.b.write(num[1:])
			return
		}
		p.pad(num)
		return
	}
	p.pad(num[1:])
}

func (p *printer) writePadding(n int) {
	if n <= 0 {
		return
	}
	c := byte(' ')
	if p.f.zero {
		c = '0'
	}
	p.b.pad(c, n)
}

func (p *printer) pad(s []byte) {
	if !p.f.widPresent || p.f.wid == 0 {
		p.b.write(s)
		return
	}
	width := p.f.wid - utf8.RuneCount(s)
	if !p.f.minus {
		p.writePadding(width)
		p.b.write(s)
	} else {
		p.b.write(s)
		p.writePadding(width)
	}
}

func (p *printer) padBytes(s []byte) {
	if p.f.precPresent {
		n := p.f.prec
		for i := 0; i < len(s); {
			n--
			if n < 0 {
				s = s[:i]
				break
			}
			_, size := utf8.DecodeRune(s[i:])
			i += size
		}
	}
	p.pad(s)
}

func (p *printer) padString(s string) {
	if !p.f.widPresent || p.f.wid == 0 {
		p.b.WriteString(s)
		return
	}
	width := p.f.wid - utf8.RuneCountInString(s)
	if !p.f.minus {
		p.writePadding(width)
		p.b.WriteString(s)
	} else {
		p.b.WriteString(s)
		p.writePadding(width)
	}
}

func (p *printer) writeRune(r rune) {
	n := utf8.EncodeRune(p.intbuf[:], r)
	p.b.write(p.intbuf[:n])
}

// directive reconstructs the current directive, e.g. "%-08.3x", into dst.
func (p *printer) directive(dst []byte, verb rune) []byte {
	dst = append(dst, '%')
	if p.f.plus || p.f.plusV {
		dst = append(dst, '+')
	}
	if p.f.minus {
		dst = append(dst, '-')
	}
	if p.f.sharp || p.f.sharpV {
		dst = append(dst, '#')
	}
	if p.f.space {
		dst = append(dst, ' ')
	}
	if p.f.zero {
		dst = append(dst, '0')
	}
	if p.f.widPresent {
		dst = strconv.AppendInt(dst, int64(p.f.wid), 10)
	}
	if p.f.precPresent {
		dst = append(dst, '.')
		dst = strconv.AppendInt(dst, int64(p.f.prec), 10)
	}
	return utf8.AppendRune(dst, verb)
}

func parsenum(s string, start, end int) (num int, isnum bool, newi int) {
	if start >= end {
		return 0, false, end
	}
	for newi = start; newi < end && '0' <= s[newi] && s[newi] <= '9'; newi++ {
		if tooLarge(num) {
			return 0, false, end
		}
		num = num*10 + int(s[newi]-'0')
		isnum = true
	}
	return
}

func intFromArg(args []any, argNum int) (num int, isInt bool, newArgNum int) {
	newArgNum = argNum
	if argNum >= len(args) {
		return
	}
	isInt = true
	switch v := args[argNum].(type) {
	case int:
		num = v
	case int8:
		num = int(v)
	case int16:
		num = int(v)
	case int32:
		num = int(v)
	case int64:
		num = int(v)
		isInt = int64(num) == v
	case uint:
		num = int(v)
		isInt = num >= 0
	case uint8:
		num = int(v)
	case uint16:
		num = int(v)
	case uint32:
		num = int(v)
		isInt = num >= 0
	case uint64:
		num = int(v)
		isInt = num >= 0 && uint64(num) == v
	case uintptr:
		num = int(v)
		isInt = num >= 0
	default:
		isInt = false
	}
	newArgNum = argNum + 1
	if !isInt || tooLarge(num) {
		num = 0
		isInt = false
	}
	return
}

// hasArgIndex reports whether format uses explicit argument indexes such
// as "%[2]d". Those are rendered by reordered.
func hasArgIndex(format string) bool {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) {
			c := format[i]
			if c == '[' {
				return true
			}
			if c == '%' || !(c == '#' || c == '0' || c == '+' || c == '-' || c == ' ' ||
				c == '.' || c == '*' || '1' <= c && c <= '9') {
				break
			}
			i++
		}
	}
	return false
}
