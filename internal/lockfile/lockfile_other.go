//go:build !unix && !windows

package lockfile

import "os"

// Lock is a no-op on platforms without an advisory-locking primitive
// wired up; SaveSeedFile/loadSeedFile still work, just without
// cross-process mutual exclusion.
func Lock(*os.File) error { return nil }

// LockShared is the no-op counterpart to Lock used around a seed-file
// load.
func LockShared(*os.File) error { return nil }

// Unlock is the no-op counterpart to Lock and LockShared.
func Unlock(*os.File) error { return nil }
