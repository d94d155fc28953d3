//go:build windows

package rawprint

import "golang.org/x/sys/windows"

// rawWrite maps the conventional descriptors onto the console handles.
// Windows has no numbered descriptors below the C runtime.
func rawWrite(fd FD, p []byte) (int, error) {
	var std uint32
	switch fd {
	case Stdout:
		std = windows.STD_OUTPUT_HANDLE
	case Stderr:
		std = windows.STD_ERROR_HANDLE
	default:
		return 0, ErrInvalidFD
	}
	h, err := windows.GetStdHandle(std)
	if err != nil {
		return 0, err
	}
	return windows.Write(h, p)
}
