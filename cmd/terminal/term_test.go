package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

func newTestTerminal(debug bool) *terminal {
	cfg := sim.DefaultConfig()
	cfg.Debug = debug
	return &terminal{
		session: sim.NewSession(cfg, sim.WithSeed(5)),
		driver:  sim.NewDriver(debug, 2),
		speed:   2,
	}
}

func TestTrigger_StepsOnceInManualMode(t *testing.T) {
	term := newTestTerminal(true)
	term.trigger()
	if term.session.Tick() != 1 {
		t.Fatalf("manual trigger should run one tick, got %d", term.session.Tick())
	}
}

func TestTrigger_IgnoredInContinuousMode(t *testing.T) {
	term := newTestTerminal(false)
	term.trigger()
	if term.session.Tick() != 0 {
		t.Fatalf("continuous mode should ignore step requests, got tick %d", term.session.Tick())
	}
	// The speed accumulator must not have been fed either.
	if n := term.driver.Ticks(false); n != 2 {
		t.Fatalf("next frame should run 2 ticks at speed 2, got %d", n)
	}
}

func TestClickStarted_OnlyOnPress(t *testing.T) {
	cases := []struct {
		prev, cur tcell.ButtonMask
		want      bool
	}{
		{tcell.ButtonNone, tcell.Button1, true},
		{tcell.Button1, tcell.Button1, false},
		{tcell.Button1, tcell.ButtonNone, false},
		{tcell.ButtonNone, tcell.Button2, false},
	}
	for _, tc := range cases {
		if got := clickStarted(tc.prev, tc.cur); got != tc.want {
			t.Fatalf("clickStarted(%v,%v)=%v, want %v", tc.prev, tc.cur, got, tc.want)
		}
	}
}
