package game

import (
	"sync"
	"time"
)

// Scheduler 周期回调的抽象，核心不依赖具体的并发原语。
// Stop 必须同步且幂等：返回后不再有新的回调开始，未启动时调用为空操作。
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Stop()
	Reschedule(interval time.Duration)
}

// Ticker 基于 time.Ticker 的调度器，回调在独立协程中串行执行
type Ticker struct {
	mu       sync.Mutex
	ticker   *time.Ticker
	done     chan struct{}
	interval time.Duration
}

func NewTicker() *Ticker {
	return &Ticker{}
}

// Start 启动（或替换）周期回调，旧的回调循环会先被停止
func (t *Ticker) Start(interval time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	tk := time.NewTicker(interval)
	done := make(chan struct{})
	t.ticker, t.done, t.interval = tk, done, interval
	go func() {
		for {
			select {
			case <-done:
				return
			case <-tk.C:
				// Stop 与到期同时发生时以 Stop 为准
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
}

// Stop 停止回调；重复调用无副作用
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) stopLocked() {
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.done)
	t.ticker, t.done = nil, nil
}

// Reschedule 修改间隔，从调用时刻重新计时；未运行时为空操作
func (t *Ticker) Reschedule(interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ticker == nil {
		return
	}
	t.interval = interval
	t.ticker.Reset(interval)
}

// Running 是否有活动的回调循环
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticker != nil
}

// ManualScheduler 由调用方手动推进的调度器，用于确定性测试与单步调试
type ManualScheduler struct {
	mu       sync.Mutex
	fn       func()
	interval time.Duration
	starts   int
	stops    int
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Start(interval time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fn, m.interval = fn, interval
	m.starts++
}

func (m *ManualScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fn == nil {
		return
	}
	m.fn = nil
	m.stops++
}

func (m *ManualScheduler) Reschedule(interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fn != nil {
		m.interval = interval
	}
}

// Fire 触发一次回调，未运行时返回 false
func (m *ManualScheduler) Fire() bool {
	m.mu.Lock()
	fn := m.fn
	m.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

func (m *ManualScheduler) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

func (m *ManualScheduler) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fn != nil
}

func (m *ManualScheduler) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Stops 实际生效的 Stop 次数
func (m *ManualScheduler) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}
