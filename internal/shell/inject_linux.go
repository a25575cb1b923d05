//go:build linux

package shell

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// TTYInjector pushes bytes into the terminal input queue of Fd with the
// TIOCSTI ioctl, as if the user had typed them.
type TTYInjector struct {
	Fd int
}

func (t TTYInjector) Inject(command string, run bool) error {
	if run {
		command += "\n"
	}
	return pushBytes(command, func(b byte) error {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(t.Fd), unix.TIOCSTI, uintptr(unsafe.Pointer(&b)))
		if errno != 0 {
			return errno
		}
		return nil
	})
}
