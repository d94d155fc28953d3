//go:build !unix && !windows && !baremetal

package rawprint

import "syscall"

// rawWrite covers plan9, wasip1 and js, which golang.org/x/sys does not
// wrap for writes.
func rawWrite(fd FD, p []byte) (int, error) {
	return syscall.Write(int(fd), p)
}
