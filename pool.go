package gcryrand

import (
	"os"
	"sync"
	"time"
)

const (
	// BlockLen is the SHA-1 compression block size.
	BlockLen = 64
	// DigestLen is the SHA-1 digest size.
	DigestLen = 20
	// PoolBlocks is the number of overlapping 20-byte windows the mixer
	// advances through on every full mix, after the wrap-join iteration.
	PoolBlocks = 30
	// PoolSize is the size of the entropy pool proper, not counting the
	// trailing mixer scratch area.
	PoolSize = 600
	// bufLen is PoolSize plus the BlockLen-sized scratch area the mixer
	// uses as its sliding window, per spec §3.
	bufLen = PoolSize + BlockLen

	// slowPollChunk is the number of bytes a slow poll requests per call
	// (POOLSIZE / 5, per spec §4.D).
	slowPollChunk = PoolSize / 5

	// addValue is added word-wise into the pool during read-out
	// derivation (spec §4.E step 9). The original's "unsigned long"
	// width is host-dependent (32 or 64 bit); this rewrite fixes 64-bit
	// unconditionally instead of replicating that dependency. See
	// DESIGN.md's Open Question resolution.
	addValue uint64 = 0xA5A5A5A5A5A5A5A5
)

// Generator is the process-wide entropy pool state (spec §3's "S"),
// encapsulated as a value instead of free-floating package globals so
// that more than one can exist side by side (mainly useful for tests).
// Every field is guarded by mu; nothing here is safe to touch without
// holding it.
type Generator struct {
	mu sync.Mutex

	rnd [bufLen]byte
	key [bufLen]byte

	writePos int
	readPos  int

	poolFilled  bool
	fillCounter int
	extraSeeded bool
	balance     int
	justMixed   bool

	failsafeDigest [DigestLen]byte
	failsafeValid  bool

	lastPid int

	seedFile         string
	allowSeedUpdate  bool
	seedFileRegistered bool

	secureMem bool
	quickTest bool
	rndLocked bool
	keyLocked bool

	slow SlowGatherer
	fast FastGatherer
	hw   HWPoller

	pidFunc   func() int
	timeFunc  func() int64
	clockFunc func() int64

	allocated bool
	stats     Stats
}

// New constructs a standalone Generator. Most callers want the
// package-level free functions (Initialize, Randomize, ...), which
// operate on a lazily-constructed singleton; New is for tests and for
// hosts that want more than one independent pool.
func New(opts ...Option) *Generator {
	g := &Generator{
		lastPid:   -1,
		pidFunc:   os.Getpid,
		timeFunc:  func() int64 { return time.Now().Unix() },
		clockFunc: func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// allocate sets up the buffers (optionally from locked memory) and
// default backends. Must be called with mu held or during construction,
// before any other goroutine can observe g.
func (g *Generator) allocate() {
	if g.allocated {
		return
	}
	if g.secureMem {
		if err := secureMemLock(g.rnd[:]); err == nil {
			g.rndLocked = true
		}
		if err := secureMemLock(g.key[:]); err == nil {
			g.keyLocked = true
		}
	}
	if g.slow == nil {
		g.slow = osSlowGatherer{}
	}
	if g.hw == nil {
		g.hw = chachaHWPoller{}
	}
	if g.fast == nil {
		g.fast = noopFastGatherer{}
	}
	g.allocated = true
}

// reset zeroes and releases the buffers, and resets every cursor and
// pool-state flag. Configuration and the seed-file flags
// (seedFileRegistered, allowSeedUpdate) are kept. Called by Close.
func (g *Generator) reset() {
	for i := range g.rnd {
		g.rnd[i] = 0
	}
	for i := range g.key {
		g.key[i] = 0
	}
	if g.rndLocked {
		_ = secureMemUnlock(g.rnd[:])
		g.rndLocked = false
	}
	if g.keyLocked {
		_ = secureMemUnlock(g.key[:])
		g.keyLocked = false
	}
	g.writePos = 0
	g.readPos = 0
	g.poolFilled = false
	g.fillCounter = 0
	g.extraSeeded = false
	g.balance = 0
	g.justMixed = false
	g.failsafeValid = false
	g.lastPid = -1
	g.allocated = false
	g.stats = Stats{}
}
