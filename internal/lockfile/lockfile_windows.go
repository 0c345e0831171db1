//go:build windows

package lockfile

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

func lockFileEx(f *os.File, flags uint32) error {
	deadline := time.Now().Add(10 * time.Second)
	wait := 10 * time.Millisecond
	ol := new(windows.Overlapped)
	for {
		err := windows.LockFileEx(
			windows.Handle(f.Fd()),
			flags|windows.LOCKFILE_FAIL_IMMEDIATELY,
			0, 1, 0, ol,
		)
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("lockfile: timed out waiting for lock on %s: %w", f.Name(), err)
		}
		time.Sleep(wait)
		if wait < 200*time.Millisecond {
			wait *= 2
		}
	}
}

// Lock takes an exclusive advisory lock on f via LockFileEx, retrying
// with backoff for up to 10 seconds. Used around a seed-file save.
func Lock(f *os.File) error {
	return lockFileEx(f, windows.LOCKFILE_EXCLUSIVE_LOCK)
}

// LockShared takes a shared advisory lock on f via LockFileEx, with the
// same bounded retry as Lock. Used around a seed-file load.
func LockShared(f *os.File) error {
	return lockFileEx(f, 0)
}

// Unlock releases a lock taken by Lock or LockShared.
func Unlock(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, 1, 0, ol)
}
