//go:build !windows

package terminal

import "os"

// EnableVirtualTerminal is a no-op outside Windows, where terminals already
// interpret escape sequences.
func EnableVirtualTerminal(*os.File) (func() error, error) {
	return func() error { return nil }, nil
}
