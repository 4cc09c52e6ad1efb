package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"snakearena/game"
)

func TestOfferLatestKeepsNewest(t *testing.T) {
	ch := make(chan game.Snapshot, 1)
	offerLatest(ch, game.Snapshot{Tick: 1})
	offerLatest(ch, game.Snapshot{Tick: 2})
	offerLatest(ch, game.Snapshot{Tick: 3})
	if got := (<-ch).Tick; got != 3 {
		t.Errorf("expected newest tick 3, got %d", got)
	}
}

func TestDrawPlacesSnakeAndFood(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 30)

	snap := game.Snapshot{
		Grid:    game.Grid{Width: 20, Height: 20},
		Snake:   game.StartingBody(),
		Food:    game.Cell{X: 2, Y: 3},
		Running: true,
		State:   game.StateRunning,
	}
	draw(screen, snap)

	hx, hy := cellPos(snap.Snake[0])
	if r, _, _, _ := screen.GetContent(hx, hy); r != '@' {
		t.Errorf("expected head '@' at (%d,%d), got %q", hx, hy, r)
	}
	bx, by := cellPos(snap.Snake[1])
	if r, _, _, _ := screen.GetContent(bx, by); r != '█' {
		t.Errorf("expected body at (%d,%d), got %q", bx, by, r)
	}
	fx, fy := cellPos(snap.Food)
	if r, _, _, _ := screen.GetContent(fx, fy); r != '●' {
		t.Errorf("expected food at (%d,%d), got %q", fx, fy, r)
	}
}

func TestNilToneBoxIsSilent(t *testing.T) {
	var tb *toneBox
	tb.OnEvent(game.Event{Kind: game.EventFoodEaten})
}
