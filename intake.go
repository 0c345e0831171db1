package gcryrand

// add XORs data into the pool at the write cursor, mixing whenever the
// cursor wraps (spec §4.C). The caller must already hold mu. XOR-into-
// cursor is associative and commutative over pool state, so intake
// itself is a monoid — only origin, which governs fill_counter, makes
// the order of adders matter.
func (g *Generator) add(data []byte, origin Origin) {
	if len(data) == 0 {
		return
	}
	g.stats.AddBytes += uint64(len(data))
	g.stats.NAddBytes++

	justWrapped := false
	for _, b := range data {
		g.rnd[g.writePos] ^= b
		g.writePos++
		justWrapped = false

		if origin.countsTowardFill() && !g.poolFilled {
			g.fillCounter++
			if g.fillCounter >= PoolSize {
				g.poolFilled = true
			}
		}

		if g.writePos == PoolSize {
			g.writePos = 0
			g.mix(&g.rnd, true)
			g.stats.MixRnd++
			justWrapped = true
		}
	}
	g.justMixed = justWrapped
}

// AddBytes is the public entropy-intake entry point (spec §6.3's
// add_bytes). quality is clamped to [0,100]; -1 means "unknown" and is
// treated as 35. Calls with quality < 10 or an empty buffer are no-ops
// that still report success, mirroring the source's deliberate choice
// to silently discard low-quality entropy rather than let a caller
// believe it contributed when it didn't meaningfully move the needle.
func AddBytes(buf []byte, quality int) error {
	return get().AddBytes(buf, quality)
}

// AddBytes is the Generator method backing the package-level AddBytes.
func (g *Generator) AddBytes(buf []byte, quality int) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if quality == -1 {
		quality = 35
	}
	if quality < 0 {
		quality = 0
	} else if quality > 100 {
		quality = 100
	}
	if quality < 10 || len(buf) == 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.allocate()
	for len(buf) > 0 {
		chunk := buf
		if len(chunk) > PoolSize {
			chunk = chunk[:PoolSize]
		}
		g.add(chunk, OriginExternal)
		buf = buf[len(chunk):]
	}
	return nil
}
