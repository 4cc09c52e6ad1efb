package game

import (
	"errors"
	"fmt"
)

// 默认棋盘：400px 画布 / 20px 格子
const (
	DefaultWidth  = 20
	DefaultHeight = 20
)

// ErrGridTooSmall 棋盘放不下初始蛇身
var ErrGridTooSmall = errors.New("grid too small for starting snake")

// Cell 网格坐标，从 0 开始
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add 返回平移后的格子
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Grid 棋盘尺寸（单位：格）
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewGrid 创建棋盘并校验其能容纳初始蛇身
func NewGrid(width, height int) (Grid, error) {
	g := Grid{Width: width, Height: height}
	for _, c := range StartingBody() {
		if !g.Contains(c) {
			return Grid{}, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, width, height)
		}
	}
	return g, nil
}

// Contains 判断格子是否在 [0,width)x[0,height) 范围内
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Size 总格数
func (g Grid) Size() int {
	if g.Width <= 0 || g.Height <= 0 {
		return 0
	}
	return g.Width * g.Height
}
