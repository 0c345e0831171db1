package gcryrand

import "sync"

var (
	globalOnce sync.Once
	global     *Generator
)

// get returns the lazily-constructed process-wide generator. All
// package-level free functions go through this; tests that want an
// isolated generator should use New directly instead.
func get() *Generator {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// Initialize forces construction of the global generator, so that
// configuration calls (SecureAlloc, EnableQuickGen, SetSeedFile) which
// must run before the buffers are allocated have somewhere to land even
// if the process hasn't performed a read yet. Safe to call more than
// once; later calls are no-ops.
func Initialize() {
	get()
}

// Close zeroes and releases the global generator's buffers and closes
// its slow gatherer. The generator is left in a state where the next
// read or AddBytes call re-allocates it from scratch, as if the process
// had just started.
func Close() {
	g := get()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.slow != nil {
		g.slow.Close()
	}
	g.reset()
}

// SecureAlloc requests that the global generator's buffers be locked
// into memory that is never swapped to disk. Must be called before the
// first read or AddBytes; has no effect on a generator that has already
// allocated its buffers.
func SecureAlloc() {
	g := get()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.allocated {
		return
	}
	g.secureMem = true
}

// EnableQuickGen demotes VERY_STRONG requests to STRONG on the global
// generator, skipping the extra slow-source seeding round. Intended for
// test processes that would otherwise block on a real slow gatherer.
func EnableQuickGen() {
	g := get()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.quickTest = true
}

// IsFaked reports whether the global generator is running in quick-test
// mode, i.e. producing output cheaper (and weaker) than a real
// deployment would.
func IsFaked() bool {
	g := get()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.quickTest
}

// CloseFDs releases any OS resources (file descriptors, handles) the
// current slow gatherer holds without otherwise disturbing the pool
// state, for hosts that want to drop privileges or close an inherited
// descriptor set without discarding accumulated entropy.
func CloseFDs() {
	g := get()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.slow != nil {
		g.slow.Close()
	}
}

// FastPoll runs one fast, non-blocking entropy poll against the global
// generator outside of a read. Hosts with a natural "idle" callback
// (an event loop tick, a timer) can use this to keep the pool diffusing
// even between reads. A no-op until the generator has been allocated by
// a read or an AddBytes call — it never triggers first-time allocation
// itself.
func FastPoll() {
	g := get()
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.allocated {
		return
	}
	g.fastPoll()
}
