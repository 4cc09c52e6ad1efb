package server

import (
	"encoding/json"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"snakearena/game"
	"snakearena/store"
)

type fakeSender struct {
	mu     sync.Mutex
	msgs   [][]byte
	full   bool
	closed bool
}

func (f *fakeSender) Enqueue(b []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full || f.closed {
		return false
	}
	f.msgs = append(f.msgs, b)
	return true
}

func (f *fakeSender) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeSender) last(t *testing.T) StateMessage {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.msgs) == 0 {
		t.Fatal("no messages received")
	}
	var msg StateMessage
	if err := json.Unmarshal(f.msgs[len(f.msgs)-1], &msg); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return msg
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

func newTestRoom(t *testing.T) (*Room, *game.ManualScheduler) {
	t.Helper()
	sched := game.NewManualScheduler()
	r, err := NewRoom("test", RoomOptions{
		Store:        store.NewMemory(0),
		NewScheduler: func() game.Scheduler { return sched },
		Seed:         17,
		Logger:       zaptest.NewLogger(t).Sugar(),
	})
	if err != nil {
		t.Fatalf("NewRoom: %v", err)
	}
	t.Cleanup(r.Close)
	return r, sched
}

func TestJoinStartsGameAndBroadcasts(t *testing.T) {
	r, sched := newTestRoom(t)
	alice := &fakeSender{}
	r.JoinPlayer("alice", alice)

	msg := alice.last(t)
	if msg.Type != "state" || msg.State != game.StateRunning || len(msg.Snake) != 3 {
		t.Fatalf("unexpected first message: %+v", msg)
	}

	sched.Fire()
	msg = alice.last(t)
	if msg.Tick != 1 {
		t.Errorf("expected tick 1, got %d", msg.Tick)
	}
	if n := r.Metrics().Snapshot()["tick_count"].(int64); n != 1 {
		t.Errorf("expected tick_count 1, got %d", n)
	}
	if n := r.Metrics().Snapshot()["games_started"].(int64); n != 1 {
		t.Errorf("expected games_started 1, got %d", n)
	}
}

func TestLateJoinerGetsCurrentState(t *testing.T) {
	r, sched := newTestRoom(t)
	r.JoinPlayer("alice", &fakeSender{})
	sched.Fire()

	bob := &fakeSender{}
	r.JoinPlayer("bob", bob)
	if bob.count() != 1 || bob.last(t).Tick != 1 {
		t.Errorf("late joiner should receive the current state once")
	}
	if sched.Starts() != 1 {
		t.Errorf("second join must not restart the game, starts=%d", sched.Starts())
	}
}

func TestSpectatorInputIgnored(t *testing.T) {
	r, _ := newTestRoom(t)
	r.JoinPlayer("alice", &fakeSender{})
	r.JoinPlayer("bob", &fakeSender{})

	if r.OnInput(Input{PlayerID: "bob", Command: CmdMove, Direction: game.DirUp}) {
		t.Error("spectator input must be ignored")
	}
	if !r.OnInput(Input{PlayerID: "alice", Command: CmdMove, Direction: game.DirUp}) {
		t.Error("owner input should be accepted")
	}
	if r.OnInput(Input{PlayerID: "alice", Command: CmdMove, Direction: game.DirLeft}) {
		t.Error("reverse of the current heading must be ignored")
	}
	m := r.Metrics().Snapshot()
	if m["inputs_accepted"].(int64) != 1 || m["inputs_ignored"].(int64) != 2 {
		t.Errorf("unexpected input metrics: %v", m)
	}
}

func TestOwnerHandoffOnLeave(t *testing.T) {
	r, _ := newTestRoom(t)
	alice := &fakeSender{}
	r.JoinPlayer("alice", alice)
	r.JoinPlayer("bob", &fakeSender{})

	if left := r.LeavePlayer("alice", alice); left != 1 {
		t.Fatalf("expected 1 remaining, got %d", left)
	}
	if !alice.closed {
		t.Error("leaving player's connection should be closed")
	}
	if r.Owner() != "bob" {
		t.Errorf("expected bob to take control, got %q", r.Owner())
	}
}

func TestStaleLeaveAfterReconnect(t *testing.T) {
	r, _ := newTestRoom(t)
	first, second := &fakeSender{}, &fakeSender{}
	r.JoinPlayer("alice", first)
	r.JoinPlayer("alice", second)
	if !first.closed {
		t.Error("reconnect should close the previous connection")
	}
	if left := r.LeavePlayer("alice", first); left != 1 {
		t.Errorf("stale leave must not remove the new connection, remaining %d", left)
	}
}

func TestRestartAndPauseCommands(t *testing.T) {
	r, sched := newTestRoom(t)
	r.JoinPlayer("alice", &fakeSender{})
	r.Abort()
	if r.Session().State() != game.StateGameOver {
		t.Fatal("expected game over after abort")
	}
	if !r.OnInput(Input{PlayerID: "alice", Command: CmdRestart}) {
		t.Fatal("restart should be accepted")
	}
	if r.Session().State() != game.StateRunning {
		t.Error("expected running after restart")
	}
	if !r.OnInput(Input{PlayerID: "alice", Command: CmdPause}) || sched.Running() {
		t.Error("pause should stop the timer")
	}
	if !r.OnInput(Input{PlayerID: "alice", Command: CmdResume}) || !sched.Running() {
		t.Error("resume should restart the timer")
	}
}

func TestBroadcastCountsDroppedMessages(t *testing.T) {
	r, sched := newTestRoom(t)
	slow := &fakeSender{}
	r.JoinPlayer("alice", slow)
	slow.mu.Lock()
	slow.full = true
	slow.mu.Unlock()

	sched.Fire()
	if n := r.Metrics().Snapshot()["chan_full_discarded"].(int64); n != 1 {
		t.Errorf("expected one discarded message, got %d", n)
	}
}

func TestInputMessageToInput(t *testing.T) {
	cases := []struct {
		msg InputMessage
		cmd Command
		dir game.Direction
	}{
		{InputMessage{Type: "move", Command: "up"}, CmdMove, game.DirUp},
		{InputMessage{Type: "MOVE", Command: "ArrowLeft"}, CmdMove, game.DirLeft},
		{InputMessage{Type: "swipe", DX: 3, DY: 50}, CmdMove, game.DirDown},
		{InputMessage{Type: "restart"}, CmdRestart, game.DirNone},
		{InputMessage{Type: "pause"}, CmdPause, game.DirNone},
		{InputMessage{Type: "resume"}, CmdResume, game.DirNone},
		{InputMessage{Type: "chat"}, CmdUnknown, game.DirNone},
	}
	for _, c := range cases {
		in := c.msg.ToInput("p")
		if in.Command != c.cmd || in.Direction != c.dir {
			t.Errorf("%+v: got cmd=%v dir=%v", c.msg, in.Command, in.Direction)
		}
	}
}
