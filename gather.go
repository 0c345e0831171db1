package gcryrand

import (
	"crypto/rand"
	"io"
	"log"

	prngchacha "github.com/sixafter/prng-chacha"
)

// sink is the intake callback a gatherer calls, one or more times, to
// hand entropy back to the pool.
type sink func(data []byte, origin Origin)

// SlowGatherer is the high-trust, potentially blocking entropy backend
// (spec §6.1's "slow gatherer"). Gather must call s one or more times
// such that the total bytes passed equal length, then return nil; a
// non-nil error is fatal to the generator. Close releases any OS
// resources the gatherer holds; it is called from Close and CloseFDs,
// possibly more than once.
type SlowGatherer interface {
	Gather(s sink, origin Origin, length int, level Level) error
	Close()
}

// FastGatherer is the low-trust, non-blocking entropy backend (spec
// §6.1's "fast gatherer"). Poll provides whatever it can quickly; there
// is no length contract, and Poll itself must never block.
type FastGatherer interface {
	Poll(s sink)
}

// HWPoller is a hardware-RNG style source consulted on every fast poll,
// identical in contract to FastGatherer except that it
// reports whether the draw succeeded, so the generator can track
// HWPollFail. Kept as a distinct type because it plays a distinct role
// (a separate, non-timing-derived pseudo-random stream folded into
// every fast poll).
type HWPoller interface {
	Poll(s sink) (ok bool)
}

// osSlowGatherer stands in for the getentropy/dev-random+dev-urandom/EGD
// probe chain spec §6.1 describes. crypto/rand.Reader already performs
// exactly that platform probe internally and is the Go-idiomatic
// equivalent of those out-of-scope backend candidates.
type osSlowGatherer struct{}

func (osSlowGatherer) Gather(s sink, origin Origin, length int, _ Level) error {
	if length <= 0 {
		return nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return err
	}
	s(buf, origin)
	return nil
}

func (osSlowGatherer) Close() {}

// chachaHWPoller draws a small number of bytes from
// github.com/sixafter/prng-chacha's global Reader: a fast, non-blocking
// source built on a different cryptographic primitive than whatever the
// slow gatherer uses, which is the point of folding it into fast polls
// separately from the OS source.
type chachaHWPoller struct{}

func (chachaHWPoller) Poll(s sink) bool {
	var buf [16]byte
	if _, err := prngchacha.Reader.Read(buf[:]); err != nil {
		log.Printf("gcryrand: hardware RNG poll failed: %v", err)
		return false
	}
	s(buf[:], OriginFastPoll)
	return true
}

// noopFastGatherer is used when no platform-specific fast source is
// registered; the generator's own belt-and-suspenders additions (time,
// resource usage, clock) still run regardless.
type noopFastGatherer struct{}

func (noopFastGatherer) Poll(sink) {}
