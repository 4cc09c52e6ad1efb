package server

import (
	"sync/atomic"

	"snakearena/game"
)

// RoomMetrics 记录房间运行期的关键指标（用于监控与调试）
type RoomMetrics struct {
	TickCount         int64 // 统计的 Tick 次数
	TotalTickNs       int64 // Tick 累计耗时（纳秒）
	FoodEaten         int64 // 吃到的食物数
	LevelUps          int64 // 升级次数
	GamesStarted      int64 // 开局次数
	GamesOver         int64 // 结束的局数
	InputsAccepted    int64 // 被接受的方向输入数
	InputsIgnored     int64 // 被忽略的输入（反向、非运行态、观战者）
	ChanFullDiscarded int64 // 因发送队列满被丢弃的消息数
}

func (m *RoomMetrics) IncAccepted()          { atomic.AddInt64(&m.InputsAccepted, 1) }
func (m *RoomMetrics) IncIgnored()           { atomic.AddInt64(&m.InputsIgnored, 1) }
func (m *RoomMetrics) IncChanFullDiscarded() { atomic.AddInt64(&m.ChanFullDiscarded, 1) }
func (m *RoomMetrics) AddTick(ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// OnEvent 统计会话事件
func (m *RoomMetrics) OnEvent(e game.Event) {
	switch e.Kind {
	case game.EventStarted:
		atomic.AddInt64(&m.GamesStarted, 1)
	case game.EventFoodEaten:
		atomic.AddInt64(&m.FoodEaten, 1)
	case game.EventLevelUp:
		atomic.AddInt64(&m.LevelUps, 1)
	case game.EventGameOver:
		atomic.AddInt64(&m.GamesOver, 1)
	}
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *RoomMetrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":          tick,
		"avg_tick_ms":         avgMs,
		"food_eaten":          atomic.LoadInt64(&m.FoodEaten),
		"level_ups":           atomic.LoadInt64(&m.LevelUps),
		"games_started":       atomic.LoadInt64(&m.GamesStarted),
		"games_over":          atomic.LoadInt64(&m.GamesOver),
		"inputs_accepted":     atomic.LoadInt64(&m.InputsAccepted),
		"inputs_ignored":      atomic.LoadInt64(&m.InputsIgnored),
		"chan_full_discarded": atomic.LoadInt64(&m.ChanFullDiscarded),
	}
}
