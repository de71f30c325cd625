package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// paintTone is the pitch played when a ball of that color repaints a cell.
func paintTone(c sim.Color) float64 {
	if c == sim.White {
		return 880
	}
	return 440
}

// sound plays short tones on the speaker. A zero value is muted.
type sound struct {
	enabled bool
}

// newSound initialises the speaker. Failure leaves the sound muted.
func newSound() (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &sound{}, err
	}
	return &sound{enabled: true}, nil
}

func (s *sound) playPaint(c sim.Color) {
	if s == nil || !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, paintTone(c))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

func (s *sound) close() {
	if s != nil && s.enabled {
		speaker.Close()
	}
}
