package gcryrand

// Option configures a Generator constructed via New. The package-level
// free functions (Initialize, Randomize, AddBytes, ...) use a
// lazily-constructed singleton configured by SecureAlloc/EnableQuickGen/
// SetSeedFile instead; Option exists so tests, and any host process that
// wants more than one independent pool, can build a Generator directly.
type Option func(*Generator)

// WithSecureMem requests that both pool buffers be allocated from
// locked memory that is never swapped to disk, if the platform supports
// it. Must be applied before the Generator's buffers are allocated.
func WithSecureMem(enable bool) Option {
	return func(g *Generator) { g.secureMem = enable }
}

// WithQuickTest demotes VERY_STRONG requests to STRONG, avoiding the
// extra slow-source seeding round. Intended for tests only.
func WithQuickTest(enable bool) Option {
	return func(g *Generator) { g.quickTest = enable }
}

// WithSlowGatherer overrides the default slow (blocking, trusted)
// entropy backend. Tests use this to stub a deterministic or
// call-counting source.
func WithSlowGatherer(s SlowGatherer) Option {
	return func(g *Generator) { g.slow = s }
}

// WithFastGatherer overrides the default fast (non-blocking) entropy
// backend.
func WithFastGatherer(f FastGatherer) Option {
	return func(g *Generator) { g.fast = f }
}

// WithHWPoller overrides the default hardware-RNG poll backend consulted
// on every fast poll.
func WithHWPoller(h HWPoller) Option {
	return func(g *Generator) { g.hw = h }
}

// WithSeedFile registers a seed file path at construction time, as a
// convenience equivalent to calling SetSeedFile immediately afterward.
func WithSeedFile(path string) Option {
	return func(g *Generator) { g.seedFile = path }
}

// WithPID seeds last_pid directly, bypassing the usual "first read
// observes the real pid" bootstrap. Tests use this to control the
// baseline pid a fork check compares against.
func WithPID(pid int) Option {
	return func(g *Generator) { g.lastPid = pid }
}

// WithPIDFunc overrides how the generator reads the current process id,
// letting tests simulate a fork (by returning one value, then another)
// without actually forking.
func WithPIDFunc(f func() int) Option {
	return func(g *Generator) { g.pidFunc = f }
}

// WithTimeFunc overrides the wall-clock source consulted by fast polls
// and seed-file loads.
func WithTimeFunc(f func() int64) Option {
	return func(g *Generator) { g.timeFunc = f }
}

// WithClockFunc overrides the "clock ticks" source consulted by fast
// polls and seed-file loads.
func WithClockFunc(f func() int64) Option {
	return func(g *Generator) { g.clockFunc = f }
}
