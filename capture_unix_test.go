//go:build unix

package rawprint

import (
	"io"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

// capture redirects fd to a pipe while f runs and returns what was
// written to it.
func capture(t *testing.T, fd FD, f func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()

	saved, err := unix.Dup(int(fd))
	if err != nil {
		t.Fatalf("dup %v: %v", fd, err)
	}
	if err := unix.Dup2(int(w.Fd()), int(fd)); err != nil {
		t.Fatalf("dup2 %v: %v", fd, err)
	}

	done := make(chan []byte)
	go func() {
		out, _ := io.ReadAll(r)
		done <- out
	}()

	f()

	if err := unix.Dup2(saved, int(fd)); err != nil {
		t.Fatalf("restore %v: %v", fd, err)
	}
	unix.Close(saved)
	w.Close()
	return string(<-done)
}

// discard points fd at /dev/null while f runs.
func discard(t *testing.T, fd FD, f func()) {
	t.Helper()

	null, err := unix.Open("/dev/null", unix.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open /dev/null: %v", err)
	}
	defer unix.Close(null)

	saved, err := unix.Dup(int(fd))
	if err != nil {
		t.Fatalf("dup %v: %v", fd, err)
	}
	defer unix.Close(saved)
	if err := unix.Dup2(null, int(fd)); err != nil {
		t.Fatalf("dup2 %v: %v", fd, err)
	}

	f()

	if err := unix.Dup2(saved, int(fd)); err != nil {
		t.Fatalf("restore %v: %v", fd, err)
	}
}
