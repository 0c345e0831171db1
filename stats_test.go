package gcryrand

import "testing"

func TestDumpStatsDoesNotPanic(t *testing.T) {
	g := New(WithSlowGatherer(&constantGatherer{fill: 3}))
	g.DumpStats()
}

func TestStatsTrackReadsAndBytes(t *testing.T) {
	g, _ := newReadyGenerator()
	out := make([]byte, 40)
	g.Randomize(out, LevelStrong)

	if g.stats.GetBytes1 == 0 {
		t.Fatal("stats.GetBytes1 should count serviced reads")
	}
	if g.stats.GetBytes2 != 40 {
		t.Fatalf("stats.GetBytes2 = %d, want 40", g.stats.GetBytes2)
	}
}
