package sim

import (
	"math"
	"strings"
	"testing"
)

func newTestSession(opts ...Option) *Session {
	opts = append([]Option{WithAngles(NewFixedAngles(10, 30))}, opts...)
	return NewSession(DefaultConfig(), opts...)
}

func TestNewSession_StartPositions(t *testing.T) {
	s := newTestSession()
	if s.Black().X != 136 || s.Black().Y != 264 {
		t.Fatalf("black ball at (%.1f,%.1f), want (136,264)", s.Black().X, s.Black().Y)
	}
	if s.White().X != 392 || s.White().Y != 264 {
		t.Fatalf("white ball at (%.1f,%.1f), want (392,264)", s.White().X, s.White().Y)
	}
	if s.Black().Color != Black || s.White().Color != White {
		t.Fatal("ball colors swapped")
	}
	wantDX := BallSpeed * math.Cos(10*math.Pi/180)
	if math.Abs(s.Black().DX-wantDX) > 1e-12 {
		t.Fatalf("black dx=%.6f, want %.6f from the first angle", s.Black().DX, wantDX)
	}
	if math.Abs(s.White().Speed()-BallSpeed) > 1e-12 {
		t.Fatalf("white speed=%.6f, want %.1f", s.White().Speed(), BallSpeed)
	}
	if s.Tick() != 0 || s.Leader() != LeaderNone {
		t.Fatalf("fresh session should be tick 0 and tied, got tick=%d leader=%s", s.Tick(), s.Leader())
	}
}

func TestSession_Leader(t *testing.T) {
	s := newTestSession()
	s.White().Score = 3
	s.Black().Score = 2
	if s.Leader() != LeaderWhite {
		t.Fatalf("expected white leader, got %s", s.Leader())
	}
	s.Black().Score = 5
	if s.Leader() != LeaderBlack {
		t.Fatalf("expected black leader, got %s", s.Leader())
	}
	s.White().Score = 5
	if s.Leader() != LeaderNone {
		t.Fatalf("expected tie, got %s", s.Leader())
	}
}

func TestSession_StepRecordsPaintEvents(t *testing.T) {
	sl := NewSimLog(false)
	el := NewEventLog()
	s := newTestSession(WithSimLog(sl), WithEventLog(el))

	got := s.RunUntil(func(s *Session) bool {
		return s.White().Score+s.Black().Score > 0
	}, 5000)
	if got < 0 {
		t.Fatal("no ball painted a cell within 5000 ticks")
	}
	if s.Tick() != got {
		t.Fatalf("tick=%d, RunUntil returned %d", s.Tick(), got)
	}
	paints := sl.Filter("paint", "cell")
	if len(paints) != 1 {
		t.Fatalf("expected exactly one paint entry, got %d:\n%s", len(paints), sl.Dump())
	}
	if paints[0].Tick != got || paints[0].NumVal != 1 {
		t.Fatalf("paint entry %+v does not match tick %d score 1", paints[0], got)
	}
	if el.Len() != 1 || !strings.HasPrefix(el.Recent()[0].Message, "paint") {
		t.Fatalf("expected one paint event in the event log, got %+v", el.Recent())
	}
	if !sl.HasEntry("session", "start", "arena=512") {
		t.Fatal("session start was not logged")
	}
}

func TestSession_RestartReplacesState(t *testing.T) {
	sl := NewSimLog(false)
	s := newTestSession(WithSimLog(sl))
	s.RunTicks(500)

	next := s.Restart(true)
	if next == s {
		t.Fatal("Restart should build a new session")
	}
	if !next.Debug() || s.Debug() {
		t.Fatalf("debug flags: old=%v new=%v, want false/true", s.Debug(), next.Debug())
	}
	if next.Tick() != 0 || next.White().Score != 0 || next.Black().Score != 0 {
		t.Fatal("restarted session should start from zero")
	}
	if next.Arena().Count(White) != 128 {
		t.Fatalf("restarted arena should be the half split, white=%d", next.Arena().Count(White))
	}
	if next.Arena() == s.Arena() {
		t.Fatal("restart must not share the old arena")
	}
	if sl.CountCategory("session", "start") != 2 {
		t.Fatalf("expected two session starts in the shared log, got %d", sl.CountCategory("session", "start"))
	}
}

func TestSession_VerboseLogsPositions(t *testing.T) {
	sl := NewSimLog(true)
	s := newTestSession(WithSimLog(sl))
	s.RunTicks(10)
	if n := len(sl.Filter("move", "position")); n != 20 {
		t.Fatalf("expected 20 position entries for 10 ticks, got %d", n)
	}
	if len(sl.FilterBall("white")) < 10 {
		t.Fatal("expected at least one entry per tick for the white ball")
	}
}

func TestSession_Report(t *testing.T) {
	el := NewEventLog()
	s := newTestSession(WithEventLog(el))
	report := s.Report(5)
	for _, want := range []string{
		"--- BouncePaint session report ---",
		"arena=512 cell=32 grid=16x16",
		"tick=0",
		"cells white=128 black=128",
		"leader=tie",
		"(no events recorded yet)",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}

	s.RunUntil(func(s *Session) bool { return el.Len() > 0 }, 5000)
	report = s.Report(5)
	if !strings.Contains(report, "events:\n  - [T=") {
		t.Fatalf("report should list events:\n%s", report)
	}
}
