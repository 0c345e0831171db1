package gcryrand

import "testing"

func TestMixDeterministic(t *testing.T) {
	var a, b [bufLen]byte
	for i := 0; i < PoolSize; i++ {
		a[i] = byte(i * 31)
		b[i] = byte(i * 31)
	}
	g1 := &Generator{}
	g2 := &Generator{}
	g1.mix(&a, true)
	g2.mix(&b, true)
	if a != b {
		t.Fatalf("mix is not deterministic given identical inputs")
	}
}

func TestMixAvalanche(t *testing.T) {
	var a, b [bufLen]byte
	for i := 0; i < PoolSize; i++ {
		a[i] = byte(i * 17)
		b[i] = byte(i * 17)
	}
	b[0] ^= 0x01

	g1 := &Generator{}
	g2 := &Generator{}
	g1.mix(&a, true)
	g2.mix(&b, true)

	diff := 0
	for i := 0; i < PoolSize; i++ {
		if a[i] != b[i] {
			diff++
		}
	}
	if diff < PoolSize/2 {
		t.Fatalf("single input bit flip changed only %d/%d pool bytes, expected wide diffusion", diff, PoolSize)
	}
}

func TestMixFailsafeAppliesOnSecondCanonicalMix(t *testing.T) {
	var buf [bufLen]byte
	for i := 0; i < PoolSize; i++ {
		buf[i] = byte(i)
	}
	g := &Generator{}

	g.mix(&buf, true)
	if !g.failsafeValid {
		t.Fatal("failsafeValid not set after first canonical mix")
	}
	afterFirst := buf

	// The same input mixed by a generator with no failsafe digest yet.
	plain := afterFirst
	(&Generator{}).mix(&plain, true)

	g.mix(&buf, true)
	if buf == afterFirst {
		t.Fatal("second canonical mix left the pool unchanged")
	}
	if buf == plain {
		t.Fatal("second canonical mix matches a mix without a failsafe digest; failsafe injection had no effect")
	}
}

func TestMixNonCanonicalDoesNotTouchFailsafe(t *testing.T) {
	var buf [bufLen]byte
	for i := 0; i < PoolSize; i++ {
		buf[i] = byte(i * 3)
	}
	g := &Generator{}
	g.mix(&buf, false)
	if g.failsafeValid {
		t.Fatal("non-canonical mix must not set failsafeValid")
	}
}
