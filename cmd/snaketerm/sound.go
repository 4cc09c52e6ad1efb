package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snakearena/game"
)

const sampleRate = beep.SampleRate(44100)

// toneBox 用正弦波做简单提示音；nil 时所有方法为空操作
type toneBox struct{}

func newToneBox() (*toneBox, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &toneBox{}, nil
}

// OnEvent 在会话锁内调用，speaker.Play 不阻塞
func (t *toneBox) OnEvent(e game.Event) {
	if t == nil {
		return
	}
	switch e.Kind {
	case game.EventFoodEaten:
		t.play(880, 50*time.Millisecond)
	case game.EventLevelUp:
		t.play(1320, 120*time.Millisecond)
	case game.EventGameOver:
		t.play(220, 300*time.Millisecond)
	}
}

func (t *toneBox) play(freq int, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
