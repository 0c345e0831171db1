//go:build windows

package gcryrand

import "golang.org/x/sys/windows"

// secureMemLock pins buf's pages into the working set via VirtualLock,
// the Windows equivalent of mlock. Best-effort, same rationale as the
// unix build: the working-set minimum is a small, easily exhausted
// quota.
func secureMemLock(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return windows.VirtualLock(&buf[0], uintptr(len(buf)))
}

// secureMemUnlock releases a lock taken by secureMemLock.
func secureMemUnlock(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return windows.VirtualUnlock(&buf[0], uintptr(len(buf)))
}
