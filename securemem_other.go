//go:build !unix && !windows

package gcryrand

import "fmt"

// secureMemLock is a no-op stand-in for platforms with neither mlock nor
// VirtualLock; WithSecureMem silently has no effect there.
func secureMemLock(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return fmt.Errorf("gcryrand: secure memory locking not supported on this platform")
}

func secureMemUnlock([]byte) error { return nil }
