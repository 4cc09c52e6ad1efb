package game

import "testing"

func TestPlaceAvoidsOccupied(t *testing.T) {
	p := NewFoodPlacer(7)
	grid := Grid{Width: 20, Height: 20}
	occupied := StartingBody()
	for i := 0; i < 500; i++ {
		c, ok := p.Place(grid, occupied)
		if !ok {
			t.Fatal("expected a free cell")
		}
		if !grid.Contains(c) {
			t.Fatalf("food %v outside grid", c)
		}
		if HitsSelf(c, occupied) {
			t.Fatalf("food %v placed on snake", c)
		}
	}
}

func TestPlaceFindsLastFreeCell(t *testing.T) {
	grid := Grid{Width: 9, Height: 11}
	free := Cell{X: 4, Y: 7}
	var occupied []Cell
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if c := (Cell{x, y}); c != free {
				occupied = append(occupied, c)
			}
		}
	}
	c, ok := NewFoodPlacer(1).Place(grid, occupied)
	if !ok || c != free {
		t.Errorf("expected %v, got %v (ok=%v)", free, c, ok)
	}
}

func TestPlaceFullGrid(t *testing.T) {
	grid := Grid{Width: 9, Height: 11}
	var occupied []Cell
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			occupied = append(occupied, Cell{x, y})
		}
	}
	if _, ok := NewFoodPlacer(1).Place(grid, occupied); ok {
		t.Error("expected no free cell on a full grid")
	}
}

func TestPlaceDeterministicBySeed(t *testing.T) {
	grid := Grid{Width: 20, Height: 20}
	a, b := NewFoodPlacer(42), NewFoodPlacer(42)
	for i := 0; i < 20; i++ {
		ca, _ := a.Place(grid, nil)
		cb, _ := b.Place(grid, nil)
		if ca != cb {
			t.Fatalf("placement %d differs: %v vs %v", i, ca, cb)
		}
	}
}
