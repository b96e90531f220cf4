//go:build windows

package terminal

import (
	"time"

	"golang.org/x/sys/windows"
)

// pollReady waits on the console input handle. The handle is also signalled
// for focus and mouse records, which a raw read skips.
func pollReady(fd int) func(time.Duration) (bool, error) {
	h := windows.Handle(fd)
	return func(timeout time.Duration) (bool, error) {
		event, err := windows.WaitForSingleObject(h, uint32(timeout.Milliseconds()))
		switch event {
		case windows.WAIT_OBJECT_0:
			return true, nil
		case uint32(windows.WAIT_TIMEOUT):
			return false, nil
		}
		if err == nil {
			err = windows.GetLastError()
		}
		return false, err
	}
}
