package gcryrand

import "testing"

func newTestGenerator() *Generator {
	g := &Generator{lastPid: -1, pidFunc: func() int { return 1 }}
	g.allocate()
	return g
}

func TestAddChunkingIsAssociative(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, sixteen more bytes")

	g1 := newTestGenerator()
	g1.add(data, OriginExternal)

	g2 := newTestGenerator()
	g2.add(data[:10], OriginExternal)
	g2.add(data[10:], OriginExternal)

	if g1.rnd != g2.rnd {
		t.Fatalf("splitting one add() into two chunks must produce the same pool state")
	}
}

func TestAddTwiceCancelsOut(t *testing.T) {
	g := newTestGenerator()
	before := g.rnd
	data := []byte{1, 2, 3, 4, 5}
	g.add(data, OriginExternal)
	// Rewind the cursor so the second add lands on the same five bytes.
	g.writePos = 0
	g.add(data, OriginExternal)
	if g.rnd != before {
		t.Fatalf("XOR-adding the same bytes twice should cancel out")
	}
}

func TestFastPollOriginNeverCountsTowardFill(t *testing.T) {
	g := newTestGenerator()
	data := make([]byte, PoolSize)
	g.add(data, OriginFastPoll)
	if g.poolFilled {
		t.Fatal("a full pool's worth of FASTPOLL bytes must never mark the pool filled")
	}
	if g.fillCounter != 0 {
		t.Fatalf("fillCounter = %d, want 0 for FASTPOLL-only intake", g.fillCounter)
	}
}

func TestExternalOriginFillsPoolAfterOnePass(t *testing.T) {
	g := newTestGenerator()
	data := make([]byte, PoolSize)
	g.add(data, OriginExternal)
	if !g.poolFilled {
		t.Fatal("a full pool's worth of EXTERNAL bytes should mark the pool filled")
	}
}

func TestAddBytesRejectsNilBuffer(t *testing.T) {
	g := newTestGenerator()
	if err := g.AddBytes(nil, 50); err != ErrNilBuffer {
		t.Fatalf("AddBytes(nil, ...) = %v, want ErrNilBuffer", err)
	}
}

func TestAddBytesIgnoresLowQuality(t *testing.T) {
	g := newTestGenerator()
	before := g.rnd
	if err := g.AddBytes([]byte("some bytes"), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.rnd != before {
		t.Fatal("quality below 10 must be a no-op")
	}
}

func TestAddBytesChunksLargeBuffers(t *testing.T) {
	g := newTestGenerator()
	buf := make([]byte, PoolSize*3+7)
	for i := range buf {
		buf[i] = byte(i)
	}
	if err := g.AddBytes(buf, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.poolFilled {
		t.Fatal("adding more than PoolSize bytes of EXTERNAL entropy should fill the pool")
	}
}
