package game

import "strings"

// Direction 移动方向
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite 反方向；DirNone 的反方向仍是 DirNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta 单步位移，y 轴向下
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{Y: -1}
	case DirDown:
		return Cell{Y: 1}
	case DirLeft:
		return Cell{X: -1}
	case DirRight:
		return Cell{X: 1}
	default:
		return Cell{}
	}
}

// Valid 是否为四个方向之一
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// MarshalText 以小写名称输出，便于 JSON 快照
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	*d = ParseDirection(string(b))
	return nil
}

// ParseDirection 解析方向名称，兼容浏览器按键名（ArrowUp 等）与 WASD
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "arrowup", "w":
		return DirUp
	case "down", "arrowdown", "s":
		return DirDown
	case "left", "arrowleft", "a":
		return DirLeft
	case "right", "arrowright", "d":
		return DirRight
	default:
		return DirNone
	}
}

// SwipeDirection 将滑动位移映射为方向：取位移较大的轴，y 轴向下。
// 位移为零时返回 DirNone。
func SwipeDirection(dx, dy int) Direction {
	if dx == 0 && dy == 0 {
		return DirNone
	}
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
