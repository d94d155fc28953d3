package rawprint

import (
	"bytes"
	"strings"
	"testing"
)

// countingWriter records every Write it receives.
type countingWriter struct {
	writes [][]byte
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, bytes.Clone(p))
	return len(p), nil
}

func TestLoggerLines(t *testing.T) {
	w := &countingWriter{}
	l := NewLogger(w)

	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	want := []string{
		"[DEBUG] d" + lineEnding,
		"[INFO]  i" + lineEnding,
		"[WARN]  w" + lineEnding,
		"[ERROR] e" + lineEnding,
	}
	if len(w.writes) != len(want) {
		t.Fatalf("Expected one write per message, got %d", len(w.writes))
	}
	for i := range want {
		if string(w.writes[i]) != want[i] {
			t.Errorf("Expected %q, got %q", want[i], w.writes[i])
		}
	}
}

func TestLoggerTruncatesLongMessages(t *testing.T) {
	w := &countingWriter{}
	NewLogger(w).Info(strings.Repeat("z", 2*BufferSize))

	out := string(w.writes[0])
	if len(out) != BufferSize {
		t.Errorf("Expected %d bytes, got %d", BufferSize, len(out))
	}
	if !strings.HasSuffix(out, "z"+lineEnding) {
		t.Errorf("Expected the line ending to survive truncation, got %q", out[len(out)-4:])
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(NewLogger(Stderr))

	if _, ok := globalLogger.(*nopLogger); !ok {
		t.Errorf("Expected a no-op logger, got %T", globalLogger)
	}
	globalLogger.Error("dropped")
}
