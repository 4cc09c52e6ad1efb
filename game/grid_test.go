package game

import (
	"errors"
	"testing"
)

func TestNewGridRejectsTooSmall(t *testing.T) {
	if _, err := NewGrid(8, 20); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("expected ErrGridTooSmall for 8x20, got %v", err)
	}
	if _, err := NewGrid(20, 10); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("expected ErrGridTooSmall for 20x10, got %v", err)
	}
	g, err := NewGrid(DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Size() != 400 {
		t.Errorf("expected 400 cells, got %d", g.Size())
	}
}

func TestGridContainsMatchesHitsWall(t *testing.T) {
	g := Grid{Width: 20, Height: 20}
	cases := []Cell{{0, 0}, {19, 19}, {-1, 0}, {0, -1}, {20, 5}, {5, 20}, {10, 10}}
	for _, c := range cases {
		if g.Contains(c) == HitsWall(c, g.Width, g.Height) {
			t.Errorf("Contains and HitsWall disagree for %v", c)
		}
	}
}
