package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// FoodPlacer 在空闲格子上均匀随机放置食物
type FoodPlacer struct {
	rng *rand.Rand
}

// NewFoodPlacer 使用指定种子；seed 为 0 时按当前时间取种子
func NewFoodPlacer(seed uint64) *FoodPlacer {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place 反复随机采样直到命中空闲格子。采样次数超过总格数的 4 倍后
// 退化为按行扫描，棋盘被占满时返回 false。
func (p *FoodPlacer) Place(grid Grid, occupied []Cell) (Cell, bool) {
	total := grid.Size()
	if total == 0 {
		return Cell{}, false
	}
	taken := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if grid.Contains(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= total {
		return Cell{}, false
	}

	for attempts := 0; attempts < total*4; attempts++ {
		c := Cell{X: p.rng.Intn(grid.Width), Y: p.rng.Intn(grid.Height)}
		if _, ok := taken[c]; !ok {
			return c, true
		}
	}
	return scanFree(grid, taken)
}

func scanFree(grid Grid, taken map[Cell]struct{}) (Cell, bool) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				return c, true
			}
		}
	}
	return Cell{}, false
}
