//go:build baremetal

package rawprint

import "machine"

// rawWrite sends both standard streams to the board's default serial
// port, the way TinyGo's own runtime prints.
func rawWrite(fd FD, p []byte) (int, error) {
	if fd != Stdout && fd != Stderr {
		return 0, ErrInvalidFD
	}
	return machine.Serial.Write(p)
}
