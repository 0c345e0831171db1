//go:build unix

package gcryrand

import "golang.org/x/sys/unix"

// secureMemLock locks buf's pages so the kernel never swaps them to disk,
// mirroring the source's use of mlock around the pool buffers (spec §5,
// "Secure memory"). Best-effort: most hosts cap the unprivileged mlock
// quota well below what a handful of 664-byte buffers needs, so callers
// treat a non-nil error as "proceed without the lock" rather than fatal.
func secureMemLock(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Mlock(buf)
}

// secureMemUnlock releases a lock taken by secureMemLock.
func secureMemUnlock(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Munlock(buf)
}
