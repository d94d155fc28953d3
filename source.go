//go:build !baremetal

package rawprint

import (
	"bytes"
	"os"
)

// exprAt returns the argument text of the first Dbg call that starts on
// the given line of file, or "" if there is none or the file is gone.
func exprAt(file string, line int) string {
	src, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	start := 0
	for l := 1; l < line; l++ {
		i := bytes.IndexByte(src[start:], '\n')
		if i < 0 {
			return ""
		}
		start += i + 1
	}
	return dbgArg(src[start:])
}

// dbgArg finds a Dbg call on the first line of src and returns its
// argument, which may continue over following lines.
func dbgArg(src []byte) string {
	first := src
	if i := bytes.IndexByte(src, '\n'); i >= 0 {
		first = src[:i]
	}

	for off := 0; ; {
		i := bytes.Index(first[off:], []byte("Dbg"))
		if i < 0 {
			return ""
		}
		i += off
		off = i + len("Dbg")
		if i > 0 && isIdent(first[i-1]) {
			continue
		}
		j := off
		if j < len(src) && src[j] == '[' {
			j = skipBalanced(src, j, '[', ']')
		}
		if j < 0 || j >= len(src) || src[j] != '(' {
			continue
		}
		end := skipBalanced(src, j, '(', ')')
		if end < 0 {
			return ""
		}
		return collapse(src[j+1 : end-1])
	}
}

// skipBalanced returns the index just past the bracket that closes the one
// at src[i], skipping string and rune literals, or -1.
func skipBalanced(src []byte, i int, open, close byte) int {
	depth := 0
	for ; i < len(src); i++ {
		switch c := src[i]; c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1
			}
		case '"', '\'':
			for i++; i < len(src) && src[i] != c; i++ {
				if src[i] == '\\' {
					i++
				}
			}
		case '`':
			for i++; i < len(src) && src[i] != '`'; i++ {
			}
		}
	}
	return -1
}

// collapse joins a multi-line argument onto one line, dropping the
// trailing commas gofmt requires before a closing bracket.
func collapse(arg []byte) string {
	out := make([]byte, 0, len(arg))
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		if c != '\n' && c != '\r' {
			out = append(out, c)
			continue
		}
		out = bytes.TrimRight(out, " \t")
		for i+1 < len(arg) && isSpace(arg[i+1]) {
			i++
		}
		if i+1 >= len(arg) || isClose(arg[i+1]) {
			out = bytes.TrimSuffix(out, []byte(","))
			continue
		}
		if len(out) > 0 && !isOpen(out[len(out)-1]) {
			out = append(out, ' ')
		}
	}
	return string(bytes.TrimSpace(out))
}

func isOpen(c byte) bool  { return c == '(' || c == '[' || c == '{' }
func isClose(c byte) bool { return c == ')' || c == ']' || c == '}' }

func isIdent(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
