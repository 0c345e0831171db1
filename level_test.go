package gcryrand

import "testing"

func TestLevelNormalizeMasksHighBits(t *testing.T) {
	g := &Generator{}
	if got := g.normalize(Level(LevelStrong | 0x10)); got != LevelStrong {
		t.Fatalf("normalize should mask off bits beyond levelMask, got %v", got)
	}
}

func TestLevelNormalizeQuickTestDemotion(t *testing.T) {
	g := &Generator{quickTest: true}
	if got := g.normalize(LevelVeryStrong); got != LevelStrong {
		t.Fatalf("quick-test mode must demote VERY_STRONG, got %v", got)
	}
	g.quickTest = false
	if got := g.normalize(LevelVeryStrong); got != LevelVeryStrong {
		t.Fatalf("without quick-test mode, VERY_STRONG must pass through unchanged, got %v", got)
	}
}

func TestLevelString(t *testing.T) {
	for l, want := range map[Level]string{
		LevelWeak:       "weak",
		LevelStrong:     "strong",
		LevelVeryStrong: "very-strong",
	} {
		if got := l.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", l, got, want)
		}
	}
}
