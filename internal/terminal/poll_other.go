//go:build !unix && !windows

package terminal

import (
	"errors"
	"time"
)

func pollReady(int) func(time.Duration) (bool, error) {
	return func(time.Duration) (bool, error) {
		return false, errors.ErrUnsupported
	}
}
