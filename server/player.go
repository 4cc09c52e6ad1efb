package server

// PlayerID 表示玩家唯一标识
type PlayerID string

// Player 房间内的一个连接。房间只有一条蛇，由 owner 控制，其余连接只观战。
type Player struct {
	ID   PlayerID
	Conn Sender // 网络连接的发送端（写协程）
}

// Sender 向客户端投递消息，不得阻塞 Tick
type Sender interface {
	Enqueue(b []byte) bool
	Close()
}
