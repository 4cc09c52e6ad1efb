package server

import (
	"encoding/json"
	"net/http"

	"snakearena/game"
)

// GameConfig 内置的游戏参数（只读，不提供难度定制）
type GameConfig struct {
	Grid              game.Grid `json:"grid"`
	PointsPerFood     int       `json:"pointsPerFood"`
	PointsPerLevel    int       `json:"pointsPerLevel"`
	InitialIntervalMs int64     `json:"initialIntervalMs"`
	MinIntervalMs     int64     `json:"minIntervalMs"`
	IntervalStepMs    int64     `json:"intervalStepMs"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ServeAdminConfig GET /admin/config 返回当前的游戏参数
func (m *RoomManager) ServeAdminConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	grid := m.opts.Grid
	if grid == (game.Grid{}) {
		grid = game.Grid{Width: game.DefaultWidth, Height: game.DefaultHeight}
	}
	writeJSON(w, http.StatusOK, GameConfig{
		Grid:              grid,
		PointsPerFood:     game.PointsPerFood,
		PointsPerLevel:    game.PointsPerLevel,
		InitialIntervalMs: game.InitialInterval.Milliseconds(),
		MinIntervalMs:     game.MinInterval.Milliseconds(),
		IntervalStepMs:    game.IntervalStep.Milliseconds(),
	})
}

// ServeAdminRooms GET /admin/rooms 列出房间与当前快照
func (m *RoomManager) ServeAdminRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rooms": m.List()})
}

// ServeAdminAbort POST /admin/abort?room=room-1 结束该房间当前一局
func (m *RoomManager) ServeAdminAbort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	roomID := roomParam(r)
	room, ok := m.Room(roomID)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	aborted := room.Abort()
	m.log.Infow("admin abort", "room", roomID, "aborted", aborted)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "aborted": aborted})
}

// ServeMetrics GET /metrics?room=room-1 输出指定房间的运行指标
func (m *RoomManager) ServeMetrics(w http.ResponseWriter, r *http.Request) {
	roomID := roomParam(r)
	room, ok := m.Room(roomID)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	snap := room.Session().Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"room":    roomID,
		"tick":    snap.Tick,
		"metrics": room.Metrics().Snapshot(),
	})
}

// Routes 注册所有 HTTP 接口
func (m *RoomManager) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", m.ServeWS)
	mux.HandleFunc("/admin/config", m.ServeAdminConfig)
	mux.HandleFunc("/admin/rooms", m.ServeAdminRooms)
	mux.HandleFunc("/admin/abort", m.ServeAdminAbort)
	mux.HandleFunc("/metrics", m.ServeMetrics)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}
