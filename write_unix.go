//go:build unix

package rawprint

import "golang.org/x/sys/unix"

func rawWrite(fd FD, p []byte) (int, error) {
	return unix.Write(int(fd), p)
}
