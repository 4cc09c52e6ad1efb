package server

import (
	"strings"

	"snakearena/game"
)

// Command 客户端意图的类型
type Command int

const (
	CmdUnknown Command = iota
	CmdMove
	CmdRestart
	CmdPause
	CmdResume
)

// Input 客户端输入（意图），方向在下一次 Tick 边界生效
type Input struct {
	PlayerID  PlayerID
	Command   Command
	Direction game.Direction
	Seq       int64 // 客户端本地序列号，用于去重
}

// 入站输入的简单 JSON 结构（WebSocket 文本消息）
// 示例：{"type":"move","command":"up"}、{"type":"swipe","dx":-40,"dy":3}、{"type":"restart"}
type InputMessage struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
	DX      int    `json:"dx,omitempty"`
	DY      int    `json:"dy,omitempty"`
	Seq     int64  `json:"seq,omitempty"`
}

// ToInput 解析消息；无法识别时 Command 为 CmdUnknown
func (im InputMessage) ToInput(pid PlayerID) Input {
	in := Input{PlayerID: pid, Seq: im.Seq}
	switch strings.ToLower(im.Type) {
	case "move":
		in.Command = CmdMove
		in.Direction = game.ParseDirection(im.Command)
	case "swipe":
		in.Command = CmdMove
		in.Direction = game.SwipeDirection(im.DX, im.DY)
	case "restart":
		in.Command = CmdRestart
	case "pause":
		in.Command = CmdPause
	case "resume":
		in.Command = CmdResume
	}
	return in
}
