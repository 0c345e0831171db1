package gcryrand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSecureMem(t *testing.T) {
	is := assert.New(t)
	g := New(WithSecureMem(true))
	is.True(g.secureMem, "WithSecureMem(true) should set secureMem")
}

func TestWithQuickTest(t *testing.T) {
	is := assert.New(t)
	g := New(WithQuickTest(true))
	is.True(g.quickTest, "WithQuickTest(true) should set quickTest")
	is.Equal(LevelStrong, g.normalize(LevelVeryStrong), "quick-test mode should demote VERY_STRONG to STRONG")
}

func TestWithPIDAndPIDFunc(t *testing.T) {
	is := assert.New(t)
	g := New(WithPID(999))
	is.Equal(999, g.lastPid, "WithPID should set lastPid directly")

	g2 := New(WithPIDFunc(func() int { return 12345 }))
	is.Equal(12345, g2.pidFunc(), "WithPIDFunc should override the pid source")
}

func TestWithTimeAndClockFunc(t *testing.T) {
	is := assert.New(t)
	g := New(
		WithTimeFunc(func() int64 { return 111 }),
		WithClockFunc(func() int64 { return 222 }),
	)
	is.EqualValues(111, g.timeFunc())
	is.EqualValues(222, g.clockFunc())
}

func TestWithSeedFileOption(t *testing.T) {
	is := assert.New(t)
	g := New(WithSeedFile("/tmp/example-seed"))
	is.Equal("/tmp/example-seed", g.seedFile)
}

func TestWithGatherers(t *testing.T) {
	is := assert.New(t)
	slow := &constantGatherer{fill: 1}
	g := New(WithSlowGatherer(slow), WithFastGatherer(noopFastGatherer{}), WithHWPoller(stubHWPoller{}))
	is.Same(slow, g.slow)
}
