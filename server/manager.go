package server

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"snakearena/game"
	"snakearena/store"
)

// DefaultRoomID 未指定房间时使用
const DefaultRoomID = "room-1"

// RoomManager 管理多个房间（各自独立的一局游戏）的生命周期
type RoomManager struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	opts  RoomOptions
	log   *zap.SugaredLogger
}

var (
	defaultManager *RoomManager
	once           sync.Once
)

// NewRoomManager 所有房间共享同一个最高分存储
func NewRoomManager(opts RoomOptions) *RoomManager {
	if opts.Store == nil {
		opts.Store = store.NewMemory(0)
	}
	log := opts.Logger
	if log == nil {
		log = Log
	}
	return &RoomManager{rooms: make(map[string]*Room), opts: opts, log: log}
}

// SetupRoomManager 用配置初始化默认管理器，只在第一次调用时生效
func SetupRoomManager(cfg Config) *RoomManager {
	once.Do(func() {
		defaultManager = NewRoomManager(RoomOptions{
			Grid:   cfg.Grid(),
			Store:  store.Max(store.NewFile(cfg.HighScoreFile, "")),
			Seed:   cfg.Seed,
			Logger: Log,
		})
	})
	return defaultManager
}

// GetOrCreateRoom 获取或创建房间
func (m *RoomManager) GetOrCreateRoom(id string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getOrCreateLocked(id)
}

// Join 在管理器锁内取房间并加入，避免与 Leave 回收房间交错
func (m *RoomManager) Join(roomID string, pid PlayerID, conn Sender) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, err := m.getOrCreateLocked(roomID)
	if err != nil {
		return nil, err
	}
	r.JoinPlayer(pid, conn)
	return r, nil
}

func (m *RoomManager) getOrCreateLocked(id string) (*Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	opts := m.opts
	opts.Logger = m.log
	r, err := NewRoom(id, opts)
	if err != nil {
		return nil, err
	}
	m.rooms[id] = r
	m.log.Infow("room created", "room", id, "session", r.Session().ID())
	return r, nil
}

// Room 查找已存在的房间
func (m *RoomManager) Room(id string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

// Leave 玩家离开；房间空了则关闭会话并回收
func (m *RoomManager) Leave(roomID string, pid PlayerID, conn Sender) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[roomID]
	if !ok {
		return
	}
	if r.LeavePlayer(pid, conn) == 0 {
		r.Close()
		delete(m.rooms, roomID)
		m.log.Infow("room closed", "room", roomID)
	}
}

// RoomInfo 管理接口中的房间概要
type RoomInfo struct {
	ID      string        `json:"id"`
	Owner   string        `json:"owner"`
	Players int           `json:"players"`
	State   game.Snapshot `json:"state"`
}

// List 按房间名排序的概要
func (m *RoomManager) List() []RoomInfo {
	m.mu.RLock()
	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	m.mu.RUnlock()

	out := make([]RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomInfo{
			ID:      r.ID,
			Owner:   string(r.Owner()),
			Players: r.PlayerCount(),
			State:   r.Session().Snapshot(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CloseAll 关闭所有房间（进程退出时保存最高分）
func (m *RoomManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rooms {
		r.Close()
		delete(m.rooms, id)
	}
}
