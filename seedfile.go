package gcryrand

import (
	"io"
	"log"
	"os"

	"github.com/nbarlow/gcryrand/internal/lockfile"
)

// SetSeedFile registers the path to load at bootstrap and save to before
// shutdown (spec §6.2). Re-registering a different path once one is
// already set is a programming error, not a runtime condition — the
// intended usage is one call during process startup.
func SetSeedFile(path string) {
	get().SetSeedFile(path)
}

// SetSeedFile is the Generator method backing the package-level
// SetSeedFile.
func (g *Generator) SetSeedFile(path string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.seedFile != "" && g.seedFile != path {
		fatalf("seed file already registered as %q", g.seedFile)
	}
	g.seedFile = path
}

// loadSeedFileLocked reads the registered seed file into the pool. The
// caller holds mu. Runs at most once per generator lifetime, gated by
// seedFileRegistered, regardless of whether the file existed or was
// usable — a missing or malformed seed file is not retried on every
// subsequent read.
func (g *Generator) loadSeedFileLocked() {
	g.seedFileRegistered = true

	f, err := os.Open(g.seedFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("gcryrand: seed file %q: %v", g.seedFile, err)
		}
		g.allowSeedUpdate = true
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Printf("gcryrand: seed file %q: stat: %v", g.seedFile, err)
		g.allowSeedUpdate = true
		return
	}
	if !info.Mode().IsRegular() {
		log.Printf("gcryrand: seed file %q is not a regular file, ignoring", g.seedFile)
		return
	}

	if err := lockfile.LockShared(f); err != nil {
		log.Printf("gcryrand: seed file %q: %v", g.seedFile, err)
		return
	}
	defer lockfile.Unlock(f)

	switch info.Size() {
	case 0:
		g.allowSeedUpdate = true
		return
	case PoolSize:
		buf := make([]byte, PoolSize)
		if _, err := io.ReadFull(f, buf); err != nil {
			log.Printf("gcryrand: seed file %q: read: %v", g.seedFile, err)
			return
		}
		g.add(buf, OriginInit)
		g.allowSeedUpdate = true
	default:
		log.Printf("gcryrand: seed file %q has unexpected size %d, ignoring contents",
			g.seedFile, info.Size())
		return
	}

	var pidbuf, tbuf, cbuf [8]byte
	putUint64(pidbuf[:], uint64(g.pidFunc()))
	putUint64(tbuf[:], uint64(g.timeFunc()))
	putUint64(cbuf[:], uint64(g.clockFunc()))
	g.add(pidbuf[:], OriginInit)
	g.add(tbuf[:], OriginInit)
	g.add(cbuf[:], OriginInit)

	g.slowPoll()
}

// SaveSeedFile writes the current pool state to the registered seed
// file, if one is registered, the pool has been filled at least once,
// and a load (or a deliberately empty/missing seed file) has already
// granted permission to overwrite it. The written bytes are a derived,
// re-mixed copy of the pool, never the canonical pool itself, so a
// stolen seed file does not directly disclose live generator state.
// Open, lock and write failures are logged and ignored; the returned
// error is always nil.
func SaveSeedFile() error {
	return get().SaveSeedFile()
}

// SaveSeedFile is the Generator method backing the package-level
// SaveSeedFile.
func (g *Generator) SaveSeedFile() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seedFile == "" || !g.poolFilled || !g.allowSeedUpdate {
		return nil
	}

	g.deriveKey()
	g.mix(&g.key, false)
	g.stats.MixKey++
	defer g.zeroKey()

	f, err := os.OpenFile(g.seedFile, os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		log.Printf("gcryrand: seed file %q: %v", g.seedFile, err)
		return nil
	}
	defer f.Close()

	if err := lockfile.Lock(f); err != nil {
		log.Printf("gcryrand: seed file %q: %v", g.seedFile, err)
		return nil
	}
	defer lockfile.Unlock(f)

	if _, err := f.Write(g.key[:PoolSize]); err != nil {
		log.Printf("gcryrand: seed file %q: write: %v", g.seedFile, err)
		return nil
	}
	if err := f.Truncate(PoolSize); err != nil {
		log.Printf("gcryrand: seed file %q: truncate: %v", g.seedFile, err)
	}
	return nil
}
