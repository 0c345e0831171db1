// Package gcryrand implements the core of a continuously-seeded
// cryptographically strong pseudo-random number generator modeled on
// Peter Gutmann's entropy-pool design, as carried forward in libgcrypt's
// random pool.
//
// A single 600-byte entropy pool is continuously stirred by an
// overlapping-window SHA-1 cascade and continuously re-seeded from
// entropy sources of varying trust (a fast, non-blocking poll called on
// every read, and a slow, potentially blocking poll called until the
// pool has absorbed enough trusted entropy to be considered filled).
// Output is never read from the pool directly: every read mixes a
// derivative scratch copy and emits from that, so that recovering the
// pool's contents from observed output requires breaking SHA-1.
//
// gcryrand is best used as a long-lived package-level generator in a
// process that can feed it real entropy (via AddBytes) over its
// lifetime; Initialize/Close manage that generator's lifecycle, and
// Randomize is the public read entry point.
package gcryrand
