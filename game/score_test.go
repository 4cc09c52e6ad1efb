package game

import (
	"testing"
	"time"
)

func TestSpeedForLevel(t *testing.T) {
	cases := map[int]time.Duration{
		0:  150 * time.Millisecond,
		1:  150 * time.Millisecond,
		2:  140 * time.Millisecond,
		5:  110 * time.Millisecond,
		11: 50 * time.Millisecond,
		30: 50 * time.Millisecond,
	}
	for level, want := range cases {
		if got := SpeedForLevel(level); got != want {
			t.Errorf("SpeedForLevel(%d) = %v, expected %v", level, got, want)
		}
	}
	for level := 1; level < 40; level++ {
		if SpeedForLevel(level+1) > SpeedForLevel(level) {
			t.Fatalf("interval increased between level %d and %d", level, level+1)
		}
	}
}

func TestTrackerLevelsEveryTenFoods(t *testing.T) {
	tr := NewTracker()
	for i := 1; i <= 35; i++ {
		leveled := tr.OnFoodEaten()
		if tr.Score != i*10 {
			t.Fatalf("after %d foods expected score %d, got %d", i, i*10, tr.Score)
		}
		if leveled != (i%10 == 0) {
			t.Errorf("food %d: leveled=%v", i, leveled)
		}
		if want := 1 + i/10; tr.Level != want {
			t.Errorf("food %d: expected level %d, got %d", i, want, tr.Level)
		}
	}
}
