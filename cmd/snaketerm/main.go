// Command snaketerm 在终端里玩贪吃蛇：tcell 负责绘制与键盘输入，
// 游戏核心与服务端共用 game 包。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"snakearena/game"
	"snakearena/server"
	"snakearena/store"
)

func main() {
	var (
		scores   string
		logFile  string
		logLevel string
		sound    bool
		seed     uint64
	)
	flag.StringVar(&scores, "highscores", "highscores.json", "high score file")
	flag.StringVar(&logFile, "log", "snaketerm.log", "log file path")
	flag.StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	flag.BoolVar(&sound, "sound", false, "play tones on food, level up and game over")
	flag.Uint64Var(&seed, "seed", 0, "food placement seed, 0 for random")
	flag.Parse()

	log, err := server.NewLogger(logFile, logLevel, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen init:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var tones *toneBox
	if sound {
		if tones, err = newToneBox(); err != nil {
			// 没有声音也能玩
			log.Warnw("audio init failed", "err", err)
		}
	}

	snaps := make(chan game.Snapshot, 1)
	session, err := game.NewSession(game.Options{
		Store:      store.NewFile(scores, ""),
		Seed:       seed,
		Logger:     log,
		OnSnapshot: func(s game.Snapshot) { offerLatest(snaps, s) },
		OnEvent:    tones.OnEvent,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, "session:", err)
		os.Exit(1)
	}
	defer session.Close()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	session.Start()
	last := session.Snapshot()
	draw(screen, last)
	for {
		select {
		case last = <-snaps:
			draw(screen, last)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, last)
			case *tcell.EventKey:
				if !handleKey(session, ev) {
					return
				}
			}
		}
	}
}

// offerLatest 只保留最新一帧，渲染慢时丢弃旧帧
func offerLatest(ch chan game.Snapshot, s game.Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// handleKey 返回 false 表示退出
func handleKey(s *game.Session, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.SetIntendedDirection(game.DirUp)
	case tcell.KeyDown:
		s.SetIntendedDirection(game.DirDown)
	case tcell.KeyLeft:
		s.SetIntendedDirection(game.DirLeft)
	case tcell.KeyRight:
		s.SetIntendedDirection(game.DirRight)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return false
		case 'r', 'R':
			s.Restart()
		case 'p', 'P', ' ':
			if !s.Pause() {
				s.Resume()
			}
		default:
			s.SetIntendedDirection(game.ParseDirection(string(r)))
		}
	}
	return true
}
