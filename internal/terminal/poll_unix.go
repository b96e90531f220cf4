//go:build unix

package terminal

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

func pollReady(fd int) func(time.Duration) (bool, error) {
	return func(timeout time.Duration) (bool, error) {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		for {
			n, err := unix.Poll(fds, int(timeout.Milliseconds()))
			if errors.Is(err, unix.EINTR) {
				continue
			}
			if err != nil {
				return false, err
			}
			return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
		}
	}
}
