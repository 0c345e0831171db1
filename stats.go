package gcryrand

import "log"

// Stats tracks the coarse operation counters spec'd for dump_stats. It
// carries no behavior of its own; the generator increments these fields
// as it would any other piece of its state, under the pool lock.
type Stats struct {
	MixRnd     uint64
	MixKey     uint64
	SlowPolls  uint64
	FastPolls  uint64
	GetBytes1  uint64 // requests serviced directly out of Randomize/read.
	GetBytes2  uint64 // output bytes actually emitted.
	NAddBytes  uint64 // number of add() calls.
	AddBytes   uint64 // total bytes XORed into the pool across all add() calls.
	HWPollFail bool   // sticky: set once a hardware-RNG poll has failed.
}

// DumpStats logs the stats counters in a stable, greppable line format.
func (g *Generator) DumpStats() {
	g.mu.Lock()
	s := g.stats
	g.mu.Unlock()
	log.Printf("gcryrand: mixrnd=%d mixkey=%d slowpolls=%d fastpolls=%d "+
		"getbytes1=%d getbytes2=%d naddbytes=%d addbytes=%d hwpollfail=%t",
		s.MixRnd, s.MixKey, s.SlowPolls, s.FastPolls,
		s.GetBytes1, s.GetBytes2, s.NAddBytes, s.AddBytes, s.HWPollFail)
}

// DumpStats logs the global generator's stats counters.
func DumpStats() {
	get().DumpStats()
}

// StatsSnapshot returns a copy of the global generator's current
// counters, for tests and diagnostics that want to inspect values rather
// than just log them.
func StatsSnapshot() Stats {
	g := get()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}
