package game

import "testing"

func TestSnakeAdvanceKeepsTail(t *testing.T) {
	s := NewSnake(StartingBody()...)
	head := s.Advance(DirRight)
	if head != (Cell{9, 10}) {
		t.Fatalf("expected head (9,10), got %v", head)
	}
	if s.Len() != 4 {
		t.Errorf("Advance must not drop the tail, length %d", s.Len())
	}
	if s.Tail() != (Cell{6, 10}) {
		t.Errorf("expected tail (6,10), got %v", s.Tail())
	}

	s.DropTail()
	want := []Cell{{9, 10}, {8, 10}, {7, 10}}
	got := s.Cells()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSnakeDropTailKeepsHead(t *testing.T) {
	s := NewSnake(Cell{3, 3})
	s.DropTail()
	if s.Len() != 1 || s.Head() != (Cell{3, 3}) {
		t.Errorf("single segment snake must survive DropTail, got %v", s.Cells())
	}
}

func TestSnakeOccupied(t *testing.T) {
	s := NewSnake(StartingBody()...)
	if n := len(s.Occupied(true)); n != 3 {
		t.Errorf("growing move occupies the whole body, got %d cells", n)
	}
	moving := s.Occupied(false)
	if len(moving) != 2 {
		t.Fatalf("moving without growth vacates the tail, got %d cells", len(moving))
	}
	for _, c := range moving {
		if c == s.Tail() {
			t.Errorf("tail %v should not be occupied", c)
		}
	}
}

func TestSnakeCellsIsCopy(t *testing.T) {
	s := NewSnake(StartingBody()...)
	cells := s.Cells()
	cells[0] = Cell{-5, -5}
	if s.Head() != (Cell{8, 10}) {
		t.Errorf("mutating Cells() leaked into snake: %v", s.Head())
	}
}
