package gcryrand

import (
	"runtime"
)

// fastPoll gathers cheap, low-trust entropy: the registered fast
// gatherer, the hardware poller, and a handful of the generator's own
// volatile-state additions (wall-clock seconds, a nanosecond wall-clock
// reading, and a coarse resource-usage snapshot of the current process). None of it
// counts toward fill_counter (spec §4.D) — FASTPOLL entropy is assumed
// compressible/guessable and is folded in for diffusion, not credited
// as a contribution to the pool's initial seeding.
func (g *Generator) fastPoll() {
	g.fast.Poll(g.add)
	if !g.hw.Poll(g.add) {
		g.stats.HWPollFail = true
	}

	var tbuf [8]byte
	putUint64(tbuf[:], uint64(g.timeFunc()))
	g.add(tbuf[:], OriginFastPoll)

	var cbuf [8]byte
	putUint64(cbuf[:], uint64(g.clockFunc()))
	g.add(cbuf[:], OriginFastPoll)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	var mbuf [16]byte
	putUint64(mbuf[0:8], mem.Alloc)
	putUint64(mbuf[8:16], uint64(mem.NumGC))
	g.add(mbuf[:], OriginFastPoll)

	g.stats.FastPolls++
}

// slowPoll requests one chunk of high-trust entropy from the registered
// slow gatherer, at STRONG (spec §4.D: a slow poll is always performed
// at STRONG regardless of the level the triggering read asked for). A
// gatherer error is fatal: a pool that cannot be seeded from its trusted
// source must not keep handing out output.
func (g *Generator) slowPoll() {
	if err := g.slow.Gather(g.add, OriginSlowPoll, slowPollChunk, LevelStrong); err != nil {
		fatalf("slow poll failed: %v", err)
	}
	g.stats.SlowPolls++
}

// putUint64 writes v in little-endian order, matching le64 and the
// word-wise addValue step in deriveKey.
func putUint64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}
