package server

import (
	"errors"
	"path/filepath"
	"testing"

	"snakearena/game"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if g := cfg.Grid(); g.Width != 20 || g.Height != 20 {
		t.Errorf("expected 20x20 grid, got %+v", g)
	}

	small := cfg
	small.Width = 5
	if err := small.Validate(); !errors.Is(err, game.ErrGridTooSmall) {
		t.Errorf("expected ErrGridTooSmall, got %v", err)
	}

	noAddr := cfg
	noAddr.Addr = ""
	if err := noAddr.Validate(); err == nil {
		t.Error("expected error for empty address")
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := NewLogger(path, "debug", false)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.Infow("hello", "k", 1)
	_ = l.Sync()

	if _, err := NewLogger(path, "loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
}
