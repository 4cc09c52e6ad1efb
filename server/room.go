package server

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"snakearena/game"
)

// Room 房间：一局权威的贪吃蛇会话 + 若干连接。
// 会话在自身的 Tick 协程中推进，快照通过 OnSnapshot 广播。
type Room struct {
	ID string

	mu      sync.RWMutex
	players map[PlayerID]*Player
	owner   PlayerID

	session *game.Session
	metrics *RoomMetrics
	log     *zap.SugaredLogger
}

// RoomOptions 创建房间所需的协作者
type RoomOptions struct {
	Grid      game.Grid
	Store     game.HighScoreStore
	NewScheduler func() game.Scheduler // 为空时使用 game.Ticker
	Seed      uint64
	Logger    *zap.SugaredLogger
}

// NewRoom 创建房间并初始化会话（Idle，首个玩家加入时开局）
func NewRoom(id string, opts RoomOptions) (*Room, error) {
	log := opts.Logger
	if log == nil {
		log = Log
	}
	r := &Room{
		ID:      id,
		players: make(map[PlayerID]*Player),
		metrics: &RoomMetrics{},
		log:     log.With("room", id),
	}
	var inner game.Scheduler
	if opts.NewScheduler != nil {
		inner = opts.NewScheduler()
	}
	s, err := game.NewSession(game.Options{
		Grid:       opts.Grid,
		Scheduler:  newMeteredScheduler(inner, r.metrics),
		Store:      opts.Store,
		Seed:       opts.Seed,
		Logger:     r.log,
		OnSnapshot: r.Broadcast,
		OnEvent:    r.metrics.OnEvent,
	})
	if err != nil {
		return nil, err
	}
	r.session = s
	return r, nil
}

func (r *Room) Session() *game.Session { return r.session }

func (r *Room) Metrics() *RoomMetrics { return r.metrics }

// JoinPlayer 将玩家加入房间；第一个加入者获得控制权并开局
func (r *Room) JoinPlayer(id PlayerID, conn Sender) *Player {
	p := &Player{ID: id, Conn: conn}

	r.mu.Lock()
	if old, ok := r.players[id]; ok && old.Conn != nil && old.Conn != conn {
		// 同名重连：关闭旧连接
		old.Conn.Close()
	}
	r.players[id] = p
	if r.owner == "" {
		r.owner = id
	}
	owner := r.owner
	r.mu.Unlock()

	r.log.Infow("player joined", "player", id, "owner", owner)
	if !r.session.Start() && conn != nil {
		// 已在进行中：补发一帧当前状态
		if b, err := encodeState(r.session.Snapshot()); err == nil {
			conn.Enqueue(b)
		}
	}
	return p
}

// LeavePlayer 将玩家移出房间，返回剩余连接数
func (r *Room) LeavePlayer(id PlayerID, conn Sender) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok || (conn != nil && p.Conn != conn) {
		// 已被同名重连替换
		return len(r.players)
	}
	if p.Conn != nil {
		p.Conn.Close()
	}
	delete(r.players, id)
	if r.owner == id {
		r.owner = ""
		for pid := range r.players {
			r.owner = pid
			break
		}
	}
	r.log.Infow("player left", "player", id, "remaining", len(r.players))
	return len(r.players)
}

// Owner 当前控制者
func (r *Room) Owner() PlayerID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.owner
}

// PlayerCount 当前连接数
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// OnInput 入站输入。方向只写入会话的待定方向，下一次 Tick 边界生效；
// 观战者的输入被忽略。
func (r *Room) OnInput(in Input) bool {
	if in.PlayerID != r.Owner() {
		r.metrics.IncIgnored()
		return false
	}
	var ok bool
	switch in.Command {
	case CmdMove:
		ok = r.session.SetIntendedDirection(in.Direction)
	case CmdRestart:
		r.session.Restart()
		ok = true
	case CmdPause:
		ok = r.session.Pause()
	case CmdResume:
		ok = r.session.Resume()
	}
	if ok {
		r.metrics.IncAccepted()
	} else {
		r.metrics.IncIgnored()
	}
	return ok
}

// Abort 结束当前一局（管理接口）
func (r *Room) Abort() bool {
	return r.session.Abort()
}

// Close 关闭会话与所有连接
func (r *Room) Close() {
	r.session.Close()
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.players {
		if p.Conn != nil {
			p.Conn.Close()
		}
		delete(r.players, id)
	}
	r.owner = ""
}

// StateMessage 出站快照消息
type StateMessage struct {
	Type string `json:"type"`
	game.Snapshot
}

func encodeState(snap game.Snapshot) ([]byte, error) {
	return json.Marshal(StateMessage{Type: "state", Snapshot: snap})
}

// Broadcast 将快照广播给房间内所有连接（文本 JSON）。
// 在会话锁内调用，只做非阻塞投递。
func (r *Room) Broadcast(snap game.Snapshot) {
	b, err := encodeState(snap)
	if err != nil {
		r.log.Errorw("encode snapshot failed", "err", err)
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if p.Conn != nil && !p.Conn.Enqueue(b) {
			r.metrics.IncChanFullDiscarded()
		}
	}
}
