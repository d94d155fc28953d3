package rawfmt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/michcald/rawprint"
)

type writeCounter struct {
	bytes.Buffer
	calls int
}

func (w *writeCounter) Write(p []byte) (int, error) {
	w.calls++
	return w.Buffer.Write(p)
}

func TestFprintMatchesFmt(t *testing.T) {
	operands := [][]any{
		{"a", "b"},
		{1, 2, "x", 3.5},
		{"fd", rawprint.Stdout, "is", 1},
		{errors.New("boom"), nil, true},
		{struct{ A int }{1}},
	}
	for _, a := range operands {
		w := &writeCounter{}
		n, err := Fprint(w, a...)
		if err != nil {
			t.Fatalf("Fprint failed: %v", err)
		}
		if want := fmt.Sprint(a...); w.String() != want || n != len(want) {
			t.Errorf("Fprint(%v): expected %q, got %q (n=%d)", a, want, w.String(), n)
		}

		w = &writeCounter{}
		Fprintln(w, a...)
		if want := fmt.Sprintln(a...); w.String() != want {
			t.Errorf("Fprintln(%v): expected %q, got %q", a, want, w.String())
		}
		if w.calls != 1 {
			t.Errorf("Expected a single write, got %d", w.calls)
		}
	}
}

func TestFprintf(t *testing.T) {
	w := &writeCounter{}
	Fprintf(w, "%s %05.1f %[1]q", "v", 2.25)
	if want := fmt.Sprintf("%s %05.1f %[1]q", "v", 2.25); w.String() != want {
		t.Errorf("Expected %q, got %q", want, w.String())
	}
}

func TestFprintlnTruncates(t *testing.T) {
	w := &writeCounter{}
	Fprintln(w, strings.Repeat("a", rawprint.BufferSize), "b")
	out := w.String()
	if len(out) != rawprint.BufferSize || out[len(out)-1] != '\n' {
		t.Errorf("Expected %d bytes ending in a newline, got %d", rawprint.BufferSize, len(out))
	}
}
