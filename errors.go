package gcryrand

import (
	"errors"
	"fmt"
)

// ErrNilBuffer is returned by AddBytes when given a nil buffer. It is the
// only error a public entry point of this package ever returns; every
// other condition is either absorbed (logged and ignored) or fatal
// (panics), per the three-tier error model this generator follows.
var ErrNilBuffer = errors.New("gcryrand: buffer is nil")

// fatalf panics with a formatted message. Used for the conditions this
// generator treats as unrecoverable: a generator that might quietly hand
// out lower-quality randomness is a worse failure mode than a crash.
func fatalf(format string, args ...any) {
	panic(fmt.Errorf("gcryrand: "+format, args...))
}
