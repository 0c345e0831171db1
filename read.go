package gcryrand

// maxFillAttempts bounds the fill loop below. A slow gatherer that can
// never deliver PoolSize bytes of credited entropy is broken, and a read
// that spins on it forever is worse than one that panics.
const maxFillAttempts = 16

// Randomize is the public read entry point (spec §6.3's randomize). It
// chunks
// arbitrarily long requests into PoolSize-sized reads, each of which
// runs the full state machine in read.
func Randomize(out []byte, level Level) {
	get().Randomize(out, level)
}

// Randomize is the Generator method backing the package-level Randomize.
func (g *Generator) Randomize(out []byte, level Level) {
	for len(out) > 0 {
		n := len(out)
		if n > PoolSize {
			n = PoolSize
		}
		g.read(out[:n], level)
		out = out[n:]
	}
}

// read implements the per-request state machine (spec §4.E): fork
// detection, seed-file bootstrap, extra seeding for VERY_STRONG, the
// fill loop, a fast poll, output derivation through a disposable key
// copy, and a post-read fork recheck that restarts the whole thing if a
// fork happened mid-read. Every step runs under mu; nothing here is
// reentrant.
func (g *Generator) read(out []byte, level Level) {
	if len(out) == 0 {
		return
	}
	if len(out) > PoolSize {
		fatalf("read: request of %d bytes exceeds pool size %d", len(out), PoolSize)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.allocate()

	for {
		g.checkFork()

		if g.seedFile != "" && !g.seedFileRegistered {
			g.loadSeedFileLocked()
		}

		level = g.normalize(level)
		if level == LevelVeryStrong {
			g.ensureVeryStrongSeeded(len(out))
		}

		attempts := 0
		for !g.poolFilled {
			g.slowPoll()
			attempts++
			if attempts >= maxFillAttempts {
				fatalf("read: pool did not fill after %d slow polls", attempts)
			}
		}

		g.fastPoll()
		g.stirPID()

		if !g.justMixed {
			g.mix(&g.rnd, true)
			g.stats.MixRnd++
		}

		g.deriveKey()
		g.mix(&g.rnd, true)
		g.stats.MixRnd++
		g.mix(&g.key, false)
		g.stats.MixKey++

		if g.checkForkPostRead() {
			g.zeroKey()
			continue
		}

		for i := range out {
			out[i] = g.key[g.readPos]
			g.readPos = (g.readPos + 1) % PoolSize
		}
		g.zeroKey()
		g.stats.GetBytes1++
		g.stats.GetBytes2 += uint64(len(out))

		g.balance -= len(out)
		if g.balance < 0 {
			g.balance = 0
		}
		return
	}
}

// checkFork compares the current pid against the one observed at the
// last read. On the very first read it just records the baseline; on
// any later mismatch it treats the change as a fork (spec §4.E) and
// folds the new pid into the pool as INIT so parent and child diverge.
// The actual remix happens later, via the guaranteed-fresh-mix step
// below, once per read.
func (g *Generator) checkFork() {
	pid := g.pidFunc()
	if g.lastPid == -1 {
		g.lastPid = pid
		return
	}
	if pid == g.lastPid {
		return
	}
	g.lastPid = pid
	var buf [8]byte
	putUint64(buf[:], uint64(pid))
	g.add(buf[:], OriginInit)
}

// checkForkPostRead re-reads the pid after output has been derived but
// before it is copied out. A fork observed here means the forked child
// (or parent) executed this exact read concurrently with another
// process image sharing the pre-fork pool state; the new pid is folded
// into the pool as INIT, and discarding the derived key and restarting
// from the top keeps the two branches from ever handing out the same
// bytes.
func (g *Generator) checkForkPostRead() bool {
	pid := g.pidFunc()
	if pid == g.lastPid {
		return false
	}
	g.lastPid = pid
	var buf [8]byte
	putUint64(buf[:], uint64(pid))
	g.add(buf[:], OriginInit)
	return true
}

// stirPID folds the current pid into the pool on every read, not just
// across a detected fork, as cheap per-process diversity.
func (g *Generator) stirPID() {
	var buf [8]byte
	putUint64(buf[:], uint64(g.pidFunc()))
	g.add(buf[:], OriginFastPoll)
}

// ensureVeryStrongSeeded tops balance up to at least n before a
// VERY_STRONG read of n bytes (spec §4.E steps 3-4): balance is
// decremented one-for-one against every byte a read emits (in read,
// after output is derived), regardless of level, so it tracks how much
// previously-credited extra entropy is still unspent. If the request
// would draw the balance below zero, an extra slow-source poll of
// exactly n-balance bytes (capped at PoolSize) tops it back up first.
func (g *Generator) ensureVeryStrongSeeded(n int) {
	if g.balance >= n {
		return
	}
	need := n - g.balance
	if need > PoolSize {
		need = PoolSize
	}
	if err := g.slow.Gather(g.add, OriginExtraPoll, need, LevelVeryStrong); err != nil {
		fatalf("extra seeding poll failed: %v", err)
	}
	g.extraSeeded = true
	g.balance += need
}

// deriveKey copies the canonical pool into the scratch key buffer and
// perturbs it with addValue before the caller mixes it, so that two
// back-to-back reads with no intervening entropy still produce
// unrelated output (spec §4.E step 9).
func (g *Generator) deriveKey() {
	g.key = g.rnd
	for i := 0; i+8 <= PoolSize; i += 8 {
		word := le64(g.key[i : i+8])
		word += addValue
		putUint64(g.key[i:i+8], word)
	}
}

// zeroKey wipes the scratch key buffer after every read so that output
// already handed to a caller can never be reconstructed from residual
// generator state.
func (g *Generator) zeroKey() {
	for i := range g.key {
		g.key[i] = 0
	}
	g.justMixed = false
}

// le64 reads 8 bytes in little-endian order.
func le64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}
