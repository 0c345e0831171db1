package gcryrand

import "testing"

func TestEnableQuickGenMakesIsFakedTrue(t *testing.T) {
	EnableQuickGen()
	if !IsFaked() {
		t.Fatal("IsFaked() should report true after EnableQuickGen()")
	}
}

func TestFastPollDoesNotPanic(t *testing.T) {
	Initialize()
	FastPoll()
}

func TestFastPollIsNoopBeforeAllocation(t *testing.T) {
	Close()
	g := get()
	FastPoll()
	if g.allocated {
		t.Fatal("FastPoll must not allocate the pool on its own")
	}
}

func TestCloseResetsGlobalGenerator(t *testing.T) {
	Initialize()
	var buf [8]byte
	Randomize(buf[:], LevelWeak)
	Close()

	g := get()
	if g.poolFilled {
		t.Fatal("Close should reset poolFilled")
	}
	if g.allocated {
		t.Fatal("Close should clear allocated so the next call reallocates")
	}
}

func TestCloseFDsDoesNotPanic(t *testing.T) {
	Initialize()
	CloseFDs()
}
