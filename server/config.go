package server

import (
	"errors"
	"fmt"

	"snakearena/game"
)

// Config 服务启动参数，由 main 中的 flag 填充
type Config struct {
	Addr          string
	LogFile       string
	LogLevel      string
	LogStderr     bool
	WebDir        string
	HighScoreFile string
	Width         int
	Height        int
	Seed          uint64 // 0 表示按时间取种子
}

// DefaultConfig 默认配置：20x20 棋盘，监听 :8080
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		LogFile:       "app.log",
		LogLevel:      "info",
		WebDir:        "web",
		HighScoreFile: "highscores.json",
		Width:         game.DefaultWidth,
		Height:        game.DefaultHeight,
	}
}

// Validate 校验配置
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("empty listen address")
	}
	if c.LogFile == "" {
		return errors.New("empty log file path")
	}
	if _, err := game.NewGrid(c.Width, c.Height); err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}
	return nil
}

// Grid 配置中的棋盘
func (c Config) Grid() game.Grid {
	return game.Grid{Width: c.Width, Height: c.Height}
}
