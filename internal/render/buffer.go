// Package render formats into a fixed-capacity buffer following the verb
// and operand rules of package fmt.
package render

import "strconv"

// Size is the capacity of a Buffer. Output beyond it is dropped.
const Size = 1024

// Buffer is a fixed-capacity byte array meant to be declared as a local
// variable, so it lives on the caller's stack for one call and is never
// grown. Call Reset before use.
type Buffer struct {
	buf [Size]byte
	n   int
	// limit is the usable capacity. Reset lowers it to keep room for a
	// line ending written by End or Newline.
	limit int
}

// Reset empties b and keeps the last reserve bytes free for End.
func (b *Buffer) Reset(reserve int) {
	b.n = 0
	b.limit = Size - reserve
}

func (b *Buffer) Bytes() []byte { return b.buf[:b.n] }

func (b *Buffer) Len() int { return b.n }

// Printf renders format and args as fmt.Sprintf does.
func (b *Buffer) Printf(format string, args []any) {
	p := printer{b: b}
	p.printf(format, args)
}

// Print renders operands as fmt.Sprint does.
func (b *Buffer) Print(args []any) {
	p := printer{b: b}
	p.print(args)
}

// Println renders operands as fmt.Sprintln does, less the newline.
func (b *Buffer) Println(args []any) {
	p := printer{b: b}
	p.println(args)
}

// Value renders v as %v.
func (b *Buffer) Value(v any) {
	p := printer{b: b}
	p.printArg(v, 'v')
}

func (b *Buffer) WriteString(s string) {
	b.n += copy(b.buf[b.n:b.limit], s)
}

func (b *Buffer) WriteInt(v int64) {
	b.appended(strconv.AppendInt(b.avail(), v, 10))
}

// End writes s into the space kept free by Reset.
func (b *Buffer) End(s string) {
	b.limit = Size
	b.WriteString(s)
}

// Newline is End("\n").
func (b *Buffer) Newline() {
	b.End("\n")
}

func (b *Buffer) full() bool { return b.n >= b.limit }

func (b *Buffer) writeByte(c byte) {
	if b.n < b.limit {
		b.buf[b.n] = c
		b.n++
	}
}

func (b *Buffer) write(p []byte) {
	b.n += copy(b.buf[b.n:b.limit], p)
}

func (b *Buffer) pad(c byte, n int) {
	for ; n > 0 && b.n < b.limit; n-- {
		b.buf[b.n] = c
		b.n++
	}
}

// avail returns the unused capacity as an empty slice for append-style
// encoders such as strconv.AppendQuote.
func (b *Buffer) avail() []byte { return b.buf[b.n:b.n:b.limit] }

// appended accounts for what an encoder added onto avail(). Output that
// outgrew the capacity was reallocated by append and is copied back
// truncated.
func (b *Buffer) appended(p []byte) {
	if len(p) <= b.limit-b.n {
		b.n += len(p)
		return
	}
	b.write(p)
}
