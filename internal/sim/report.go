package sim

import (
	"fmt"
	"strings"
)

// Report renders a plain-text snapshot of the session, including up to
// lastEvents entries from the event log.
func (s *Session) Report(lastEvents int) string {
	var b strings.Builder
	cfg := s.cfg
	a := s.arena

	fmt.Fprintf(&b, "--- BouncePaint session report ---\n")
	fmt.Fprintf(&b, "arena=%d cell=%d grid=%dx%d radius=%.0f debug=%v\n",
		cfg.ArenaSize, cfg.CellSize, a.N(), a.N(), cfg.BallRadius, cfg.Debug)
	fmt.Fprintf(&b, "tick=%d\n", s.tick)
	for _, ball := range []*Ball{s.white, s.black} {
		fmt.Fprintf(&b, "%-5s score=%d pos=(%.1f,%.1f) vel=(%.2f,%.2f)\n",
			ball.Color, ball.Score, ball.X, ball.Y, ball.DX, ball.DY)
	}
	fmt.Fprintf(&b, "cells white=%d black=%d\n", a.Count(White), a.Count(Black))
	fmt.Fprintf(&b, "leader=%s\n", s.Leader())

	if s.eventLog == nil || lastEvents <= 0 {
		return b.String()
	}
	events := s.eventLog.Last(lastEvents)
	if len(events) == 0 {
		b.WriteString("(no events recorded yet)\n")
		return b.String()
	}
	b.WriteString("events:\n")
	for _, e := range events {
		fmt.Fprintf(&b, "  - [T=%03d] %s %s\n", e.Tick, e.Ball, e.Message)
	}
	return b.String()
}
