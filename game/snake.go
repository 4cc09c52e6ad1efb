package game

// StartingBody 初始蛇身：蛇头在 (8,10)，向右
func StartingBody() []Cell {
	return []Cell{{X: 8, Y: 10}, {X: 7, Y: 10}, {X: 6, Y: 10}}
}

// Snake 有序蛇身，body[0] 为蛇头，最后一个元素为蛇尾。
// 不做越界检查，由碰撞检测负责。
type Snake struct {
	body []Cell
}

// NewSnake 以给定格子构造蛇身（会复制），至少需要一个格子
func NewSnake(cells ...Cell) *Snake {
	if len(cells) == 0 {
		cells = StartingBody()
	}
	body := make([]Cell, len(cells))
	copy(body, cells)
	return &Snake{body: body}
}

func (s *Snake) Head() Cell { return s.body[0] }

func (s *Snake) Tail() Cell { return s.body[len(s.body)-1] }

func (s *Snake) Len() int { return len(s.body) }

// Cells 返回蛇身副本，按蛇头到蛇尾排序
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Advance 将蛇头沿 dir 平移一格并前插，返回新蛇头。
// 是否去掉蛇尾由状态机决定。
func (s *Snake) Advance(dir Direction) Cell {
	head := s.body[0].Add(dir.Delta())
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	return head
}

// DropTail 去掉蛇尾；长度为 1 时不动
func (s *Snake) DropTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Occupies 判断格子是否被蛇身覆盖
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Occupied 本次移动时实际占据的格子：不生长时蛇尾即将让出，不计入
func (s *Snake) Occupied(grow bool) []Cell {
	if grow || len(s.body) == 1 {
		return s.Cells()
	}
	return s.Cells()[:len(s.body)-1]
}
