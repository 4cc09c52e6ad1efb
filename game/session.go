package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State 会话状态
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "idle"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "running":
		*s = StateRunning
	case "game_over":
		*s = StateGameOver
	case "idle":
		*s = StateIdle
	default:
		return fmt.Errorf("unknown state %q", b)
	}
	return nil
}

// HighScoreStore 最高分的持久化接口（文件、内存等）
type HighScoreStore interface {
	Get() (int, error)
	Set(score int) error
}

// EventKind 会话事件类型
type EventKind int

const (
	EventStarted EventKind = iota
	EventFoodEaten
	EventLevelUp
	EventGameOver
)

// Event 随 Tick 或状态转换产生的事件，供指标、音效等旁路使用
type Event struct {
	Kind         EventKind
	Score        int
	Level        int
	NewHighScore bool
}

// Snapshot 渲染端只读的状态快照
type Snapshot struct {
	SessionID  string    `json:"session"`
	Grid       Grid      `json:"grid"`
	Snake      []Cell    `json:"snake"`
	Food       Cell      `json:"food"`
	Heading    Direction `json:"heading"`
	Score      int       `json:"score"`
	Level      int       `json:"level"`
	HighScore  int       `json:"highScore"`
	State      State     `json:"state"`
	Running    bool      `json:"running"`
	GameOver   bool      `json:"gameOver"`
	Paused     bool      `json:"paused"`
	Cleared    bool      `json:"cleared"`
	IntervalMs int64     `json:"intervalMs"`
	Tick       uint64    `json:"tick"`
}

// Options 会话的协作者；零值字段使用默认实现
type Options struct {
	Grid      Grid
	Scheduler Scheduler
	Store     HighScoreStore
	Food      *FoodPlacer
	Seed      uint64
	Logger    *zap.SugaredLogger

	// OnSnapshot 在每次 Tick 及 Reset 之后调用，持有会话锁，回调内不得再调用会话方法
	OnSnapshot func(Snapshot)
	// OnEvent 同样在会话锁内调用
	OnEvent func(Event)
}

// Session 一局游戏的权威状态。所有修改在 mu 保护下进行，
// 输入只写入 pending，在下一次 Tick 边界统一生效。
type Session struct {
	mu sync.Mutex

	id      string
	grid    Grid
	snake   *Snake
	food    Cell
	heading Direction
	pending Direction
	tracker Tracker
	state   State
	paused  bool
	cleared bool
	ticks   uint64

	highScore int

	// epoch 在 Reset/Resume/Close 时递增，用于丢弃旧定时器残留的回调
	epoch uint64

	sched      Scheduler
	store      HighScoreStore
	placer     *FoodPlacer
	log        *zap.SugaredLogger
	onSnapshot func(Snapshot)
	onEvent    func(Event)
}

// NewSession 创建处于 Idle 状态的会话，并从持久化读取最高分（缺失为 0）
func NewSession(opts Options) (*Session, error) {
	grid := opts.Grid
	if grid == (Grid{}) {
		grid = Grid{Width: DefaultWidth, Height: DefaultHeight}
	}
	grid, err := NewGrid(grid.Width, grid.Height)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:         uuid.New().String(),
		grid:       grid,
		snake:      NewSnake(StartingBody()...),
		heading:    DirRight,
		pending:    DirRight,
		tracker:    NewTracker(),
		state:      StateIdle,
		sched:      opts.Scheduler,
		store:      opts.Store,
		placer:     opts.Food,
		onSnapshot: opts.OnSnapshot,
		onEvent:    opts.OnEvent,
	}
	if s.sched == nil {
		s.sched = NewTicker()
	}
	if s.placer == nil {
		s.placer = NewFoodPlacer(opts.Seed)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s.log = log.With("session", s.id)

	if s.store != nil {
		hs, err := s.store.Get()
		switch {
		case err != nil:
			s.log.Warnw("load high score failed", "err", err)
		case hs > 0:
			s.highScore = hs
		}
	}
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Grid() Grid { return s.grid }

// Start Idle → Running；其它状态下返回 false
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return false
	}
	s.resetLocked()
	return true
}

// Reset 任意状态 → Running，重建蛇与食物，得分等级归零，最高分保留
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Restart 输入端的重新开始，等同 Reset
func (s *Session) Restart() { s.Reset() }

func (s *Session) resetLocked() {
	s.epoch++
	s.sched.Stop()

	s.snake = NewSnake(StartingBody()...)
	s.heading, s.pending = DirRight, DirRight
	s.tracker = NewTracker()
	s.paused, s.cleared = false, false
	s.ticks = 0
	food, ok := s.placer.Place(s.grid, s.snake.Cells())
	if !ok {
		// NewGrid 已保证棋盘大于初始蛇身
		s.log.Errorw("no free cell for food on reset")
	}
	s.food = food
	s.state = StateRunning

	epoch := s.epoch
	s.sched.Start(s.tracker.Interval(), func() { s.tick(epoch) })
	s.log.Infow("game started", "food", s.food, "interval", s.tracker.Interval())
	s.emitEvent(EventStarted, false)
	s.emitSnapshot()
}

// SetIntendedDirection 缓存下一次 Tick 的方向。非 Running、无效方向或
// 与当前方向相反时忽略并返回 false；多次输入只保留最后一次有效输入。
func (s *Session) SetIntendedDirection(d Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning || !d.Valid() || d == s.heading.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Tick 手动推进一步；非 Running 或暂停时返回 false
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepLocked()
}

func (s *Session) tick(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return
	}
	s.stepLocked()
}

func (s *Session) stepLocked() bool {
	if s.state != StateRunning || s.paused {
		return false
	}

	if s.pending.Valid() && s.pending != s.heading.Opposite() {
		s.heading = s.pending
	}

	// 先决定本步是否生长，再据此计算自碰撞所用的占据格
	next := s.snake.Head().Add(s.heading.Delta())
	grow := next == s.food
	if HitsWall(next, s.grid.Width, s.grid.Height) || HitsSelf(next, s.snake.Occupied(grow)) {
		s.ticks++
		s.log.Debugw("collision", "head", next, "heading", s.heading)
		s.gameOverLocked()
		s.emitSnapshot()
		return true
	}

	s.snake.Advance(s.heading)
	s.ticks++
	if !grow {
		s.snake.DropTail()
		s.emitSnapshot()
		return true
	}

	leveled := s.tracker.OnFoodEaten()
	s.emitEvent(EventFoodEaten, false)

	food, ok := s.placer.Place(s.grid, s.snake.Cells())
	if !ok {
		s.cleared = true
		s.log.Infow("board cleared", "length", s.snake.Len())
		s.gameOverLocked()
		s.emitSnapshot()
		return true
	}
	s.food = food

	if leveled {
		s.sched.Reschedule(s.tracker.Interval())
		s.log.Infow("level up", "level", s.tracker.Level, "interval", s.tracker.Interval())
		s.emitEvent(EventLevelUp, false)
	}
	s.emitSnapshot()
	return true
}

func (s *Session) gameOverLocked() {
	s.state = StateGameOver
	s.paused = false
	s.sched.Stop()

	newHigh := s.tracker.Score > s.highScore
	if newHigh {
		s.highScore = s.tracker.Score
		if s.store != nil {
			if err := s.store.Set(s.highScore); err != nil {
				s.log.Warnw("save high score failed", "score", s.highScore, "err", err)
			}
		}
	}
	s.log.Infow("game over", "score", s.tracker.Score, "level", s.tracker.Level,
		"highScore", s.highScore, "newHigh", newHigh)
	s.emitEvent(EventGameOver, newHigh)
}

// Abort Running → GameOver，返回是否发生了转换
func (s *Session) Abort() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return false
	}
	s.gameOverLocked()
	s.emitSnapshot()
	return true
}

// Pause 停止定时器但保持 Running；暂停期间不会执行 Tick
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning || s.paused {
		return false
	}
	s.paused = true
	s.sched.Stop()
	s.emitSnapshot()
	return true
}

// Resume 以当前等级的间隔重新启动定时器
func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning || !s.paused {
		return false
	}
	s.paused = false
	s.epoch++
	epoch := s.epoch
	s.sched.Start(s.tracker.Interval(), func() { s.tick(epoch) })
	s.emitSnapshot()
	return true
}

// Close 停止定时器；进行中的一局按结束处理以保存最高分。可重复调用。
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		s.gameOverLocked()
	}
	s.epoch++
	s.sched.Stop()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		SessionID:  s.id,
		Grid:       s.grid,
		Heading:    s.heading,
		Score:      s.tracker.Score,
		Level:      s.tracker.Level,
		HighScore:  s.highScore,
		State:      s.state,
		Running:    s.state == StateRunning,
		GameOver:   s.state == StateGameOver,
		Paused:     s.paused,
		Cleared:    s.cleared,
		IntervalMs: s.tracker.Interval().Milliseconds(),
		Tick:       s.ticks,
	}
	if s.state != StateIdle {
		snap.Snake = s.snake.Cells()
		snap.Food = s.food
	}
	return snap
}

func (s *Session) emitSnapshot() {
	if s.onSnapshot != nil {
		s.onSnapshot(s.snapshotLocked())
	}
}

func (s *Session) emitEvent(kind EventKind, newHigh bool) {
	if s.onEvent != nil {
		s.onEvent(Event{Kind: kind, Score: s.tracker.Score, Level: s.tracker.Level, NewHighScore: newHigh})
	}
}
