//go:build unix

// Package lockfile provides advisory whole-file locking for the seed
// file, so two processes sharing one seed path don't interleave a load
// and a save.
package lockfile

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func flock(f *os.File, how int) error {
	deadline := time.Now().Add(10 * time.Second)
	wait := 10 * time.Millisecond
	for {
		err := unix.Flock(int(f.Fd()), how|unix.LOCK_NB)
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

// Lock takes an exclusive advisory lock on f, retrying with backoff for
// up to 10 seconds before giving up. Used around a seed-file save.
// Mirrors the source's bounded retry around its own seed-file lock
// rather than blocking forever, since a wedged lock holder shouldn't be
// able to hang every other process that touches the seed file.
func Lock(f *os.File) error {
	return flock(f, unix.LOCK_EX)
}

// LockShared takes a shared advisory lock on f, with the same bounded
// retry as Lock. Used around a seed-file load, so concurrent readers of
// the same seed file don't serialize against each other (spec §6.2:
// "open read-only, acquire shared lock").
func LockShared(f *os.File) error {
	return flock(f, unix.LOCK_SH)
}

// Unlock releases a lock taken by Lock or LockShared.
func Unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
