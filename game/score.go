package game

import "time"

// 内置得分与速度曲线
const (
	PointsPerFood   = 10
	PointsPerLevel  = 100
	InitialInterval = 150 * time.Millisecond
	MinInterval     = 50 * time.Millisecond
	IntervalStep    = 10 * time.Millisecond
)

// Tracker 累计得分与等级
type Tracker struct {
	Score int `json:"score"`
	Level int `json:"level"`
}

// NewTracker 初始得分 0，等级 1
func NewTracker() Tracker {
	return Tracker{Score: 0, Level: 1}
}

// OnFoodEaten 加分；累计得分每到 100 的整数倍升一级，返回是否升级
func (t *Tracker) OnFoodEaten() bool {
	t.Score += PointsPerFood
	if t.Score%PointsPerLevel == 0 {
		t.Level++
		return true
	}
	return false
}

// Interval 当前等级的 Tick 间隔
func (t Tracker) Interval() time.Duration {
	return SpeedForLevel(t.Level)
}

// SpeedForLevel max(50ms, 150ms - (level-1)*10ms)
func SpeedForLevel(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := InitialInterval - time.Duration(level-1)*IntervalStep
	if d < MinInterval {
		return MinInterval
	}
	return d
}
