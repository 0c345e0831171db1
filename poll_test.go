package gcryrand

import "testing"

type countingFastGatherer struct{ n int }

func (f *countingFastGatherer) Poll(s sink) {
	f.n++
	s([]byte{0xaa, 0xbb}, OriginFastPoll)
}

func TestFastPollInvokesFastAndHW(t *testing.T) {
	fg := &countingFastGatherer{}
	g := New(WithFastGatherer(fg), WithHWPoller(stubHWPoller{}))
	before := g.stats.FastPolls
	g.fastPoll()
	if fg.n != 1 {
		t.Fatalf("fast gatherer Poll called %d times, want 1", fg.n)
	}
	if g.stats.FastPolls != before+1 {
		t.Fatalf("stats.FastPolls not incremented")
	}
}

func TestFastPollRecordsHWFailure(t *testing.T) {
	g := New(WithFastGatherer(noopFastGatherer{}), WithHWPoller(failingHWPoller{}))
	g.fastPoll()
	if !g.stats.HWPollFail {
		t.Fatal("a failed hardware poll should set stats.HWPollFail")
	}
}

type failingHWPoller struct{}

func (failingHWPoller) Poll(sink) bool { return false }

func TestSlowPollCreditsFillCounter(t *testing.T) {
	g := New(WithSlowGatherer(&constantGatherer{fill: 0x9}))
	before := g.fillCounter
	g.slowPoll()
	if g.fillCounter <= before {
		t.Fatal("slowPoll should advance fillCounter while the pool is unfilled")
	}
	if g.stats.SlowPolls != 1 {
		t.Fatalf("stats.SlowPolls = %d, want 1", g.stats.SlowPolls)
	}
}
