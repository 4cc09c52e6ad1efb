package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snakearena/game"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// 每个格子占两列，终端字符大致是 1:2
const cellCols = 2

// 棋盘左上角（含边框）
const originX, originY = 0, 1

func cellPos(c game.Cell) (int, int) {
	return originX + 1 + c.X*cellCols, originY + 1 + c.Y
}

func draw(screen tcell.Screen, s game.Snapshot) {
	screen.Clear()
	w, h := s.Grid.Width*cellCols, s.Grid.Height

	drawText(screen, 0, 0, styleText,
		fmt.Sprintf("Score %d  Level %d  High %d  %dms", s.Score, s.Level, s.HighScore, s.IntervalMs))

	for x := 0; x <= w+1; x++ {
		screen.SetContent(originX+x, originY, '─', nil, styleBorder)
		screen.SetContent(originX+x, originY+h+1, '─', nil, styleBorder)
	}
	for y := 0; y <= h+1; y++ {
		screen.SetContent(originX, originY+y, '│', nil, styleBorder)
		screen.SetContent(originX+w+1, originY+y, '│', nil, styleBorder)
	}

	if len(s.Snake) > 0 {
		fx, fy := cellPos(s.Food)
		screen.SetContent(fx, fy, '●', nil, styleFood)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		x, y := cellPos(s.Snake[i])
		if i == 0 {
			screen.SetContent(x, y, '@', nil, styleHead)
			screen.SetContent(x+1, y, '@', nil, styleHead)
			continue
		}
		screen.SetContent(x, y, '█', nil, styleBody)
		screen.SetContent(x+1, y, '█', nil, styleBody)
	}

	status := "arrows/wasd move  p pause  r restart  q quit"
	switch {
	case s.GameOver && s.Cleared:
		status = fmt.Sprintf("BOARD CLEARED! score %d  r restart  q quit", s.Score)
	case s.GameOver:
		status = fmt.Sprintf("GAME OVER  score %d  r restart  q quit", s.Score)
	case s.Paused:
		status = "PAUSED  p resume"
	}
	style := styleText
	if s.GameOver || s.Paused {
		style = styleAlert
	}
	drawText(screen, 0, originY+h+2, style, status)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
