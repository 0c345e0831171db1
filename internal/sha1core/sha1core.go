// Package sha1core exposes SHA-1 as two bare primitives instead of the
// usual hash.Hash interface: a raw compression-function step that never
// pads or finalizes, and an ordinary padded digest of a complete buffer.
//
// The pool mixer needs the former: it runs SHA-1's internal block
// transform repeatedly over overlapping 64-byte windows of a 600-byte
// pool, reading out intermediate chaining values as it goes, and never
// once produces a standards-conformant SHA-1 digest of anything. The
// standard library's crypto/sha1 cannot do this — hash.Hash.Sum always
// appends the length-encoded padding and finalizes. Transform below is
// a from-scratch reimplementation of the compression step alone.
package sha1core

import "crypto/sha1"

// IV returns the standard SHA-1 initial chaining value.
func IV() [5]uint32 {
	return [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
}

const (
	k0 uint32 = 0x5a827999
	k1 uint32 = 0x6ed9eba1
	k2 uint32 = 0x8f1bbcdc
	k3 uint32 = 0xca62c1d6
)

func rotl(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// Transform runs one SHA-1 compression round over block, folding it into
// the chaining value h in place. Unlike a full hash, it never pads, never
// appends a length, and never resets h: the caller is responsible for
// carrying h across however many blocks it wants mixed together. This is
// the "mixblock" primitive the pool mixer is built on.
func Transform(h *[5]uint32, block *[64]byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		j := i * 4
		w[i] = uint32(block[j])<<24 | uint32(block[j+1])<<16 | uint32(block[j+2])<<8 | uint32(block[j+3])
	}
	for i := 16; i < 80; i++ {
		w[i] = rotl(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

	for i := 0; i < 20; i++ {
		t := rotl(a, 5) + ((b & c) | (^b & d)) + e + k0 + w[i]
		e, d, c, b, a = d, c, rotl(b, 30), a, t
	}
	for i := 20; i < 40; i++ {
		t := rotl(a, 5) + (b ^ c ^ d) + e + k1 + w[i]
		e, d, c, b, a = d, c, rotl(b, 30), a, t
	}
	for i := 40; i < 60; i++ {
		t := rotl(a, 5) + ((b & c) | (b & d) | (c & d)) + e + k2 + w[i]
		e, d, c, b, a = d, c, rotl(b, 30), a, t
	}
	for i := 60; i < 80; i++ {
		t := rotl(a, 5) + (b ^ c ^ d) + e + k3 + w[i]
		e, d, c, b, a = d, c, rotl(b, 30), a, t
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}

// ChainBytes copies the big-endian encoding of h into dst, one whole
// 4-byte word at a time, up to all 20 bytes; trailing bytes of dst that
// do not fill a whole word are left untouched.
func ChainBytes(dst []byte, h *[5]uint32) {
	n := len(dst) / 4
	if n > 5 {
		n = 5
	}
	for i := 0; i < n; i++ {
		v := h[i]
		dst[i*4] = byte(v >> 24)
		dst[i*4+1] = byte(v >> 16)
		dst[i*4+2] = byte(v >> 8)
		dst[i*4+3] = byte(v)
	}
}

// Sum computes the ordinary, padded SHA-1 digest of data ("hash_buffer").
// This is a ordinary, complete digest — crypto/sha1 already does exactly
// this correctly, so it is used directly rather than reimplemented.
func Sum(out *[20]byte, data []byte) {
	*out = sha1.Sum(data)
}
