package server

import (
	"time"

	"snakearena/game"
)

// meteredScheduler 包装会话调度器，统计每次 Tick 的耗时
type meteredScheduler struct {
	game.Scheduler
	metrics *RoomMetrics
}

func newMeteredScheduler(inner game.Scheduler, m *RoomMetrics) game.Scheduler {
	if inner == nil {
		inner = game.NewTicker()
	}
	return &meteredScheduler{Scheduler: inner, metrics: m}
}

// Start 回调即一次完整 Tick：提交方向 → 移动/碰撞/进食 → 广播快照
func (s *meteredScheduler) Start(interval time.Duration, fn func()) {
	s.Scheduler.Start(interval, func() {
		start := time.Now()
		fn()
		s.metrics.AddTick(time.Since(start).Nanoseconds())
	})
}
