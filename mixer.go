package gcryrand

import "github.com/nbarlow/gcryrand/internal/sha1core"

// mix applies the overlapping SHA-1 cascade to buf in place. buf is the
// 664-byte region described in spec §4.A: the first PoolSize bytes are
// the pool, the trailing BlockLen bytes are the mixer's own scratch
// area. canonical selects whether the failsafe digest (XORed into the
// head of the pool right after the wrap-join iteration, snapshotted
// after the cascade) applies — only the rnd pool is canonical;
// key is mixed the same way but never touches the failsafe state.
//
// Each 20-byte window of the output depends on a 64-byte window of the
// input pool that straddles it by 44 bytes of context on either side, so
// a single flipped bit propagates across the whole pool within one mix.
// The wrap-join below (iteration 0) keeps the first and last pool bytes
// from being context-starved relative to the middle.
//
// Deterministic, never errors, never allocates. Caller holds the pool
// mutex.
func (g *Generator) mix(buf *[bufLen]byte, canonical bool) {
	pool := buf[:PoolSize]
	scratch := (*[BlockLen]byte)(buf[PoolSize:bufLen])

	// Iteration 0: join the last 20 bytes of the pool to its first 44,
	// so the wraparound seam gets a full block of context too.
	copy(scratch[0:20], pool[PoolSize-20:PoolSize])
	copy(scratch[20:64], pool[0:44])

	h := sha1core.IV()
	sha1core.Transform(&h, scratch)
	sha1core.ChainBytes(pool[0:20], &h)

	if canonical && g.failsafeValid {
		for i := 0; i < DigestLen; i++ {
			pool[i] ^= g.failsafeDigest[i]
		}
	}

	p := 0
	for n := 0; n < PoolBlocks; n++ {
		gatherWindow(scratch, pool, p)
		sha1core.Transform(&h, scratch)
		p = (p + DigestLen) % PoolSize
		sha1core.ChainBytes(pool[p:p+DigestLen], &h)
	}

	if canonical {
		sha1core.Sum(&g.failsafeDigest, pool)
		g.failsafeValid = true
	}
}

// gatherWindow copies the 64-byte window of pool starting at p into
// scratch, wrapping back to the start of the pool if the window runs
// past PoolSize.
func gatherWindow(scratch *[BlockLen]byte, pool []byte, p int) {
	if p+BlockLen <= PoolSize {
		copy(scratch[:], pool[p:p+BlockLen])
		return
	}
	n := copy(scratch[:], pool[p:PoolSize])
	copy(scratch[n:], pool[0:BlockLen-n])
}
