package game

// HitsWall 格子是否落在 [0,width)x[0,height) 之外
func HitsWall(c Cell, width, height int) bool {
	return c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height
}

// HitsSelf 新蛇头是否与 body 中任一格重合。
// body 应为移动时刻蛇身实际占据的格子（见 Snake.Occupied），不含新蛇头。
func HitsSelf(head Cell, body []Cell) bool {
	for _, c := range body {
		if c == head {
			return true
		}
	}
	return false
}
