package sim

import "fmt"

// Leader says which ball has the strictly higher score.
type Leader int

const (
	LeaderNone Leader = iota // scores are equal
	LeaderWhite
	LeaderBlack
)

func (l Leader) String() string {
	switch l {
	case LeaderWhite:
		return "white"
	case LeaderBlack:
		return "black"
	default:
		return "tie"
	}
}

// Session owns the arena and both balls for one game.
type Session struct {
	cfg    Config
	arena  *Arena
	white  *Ball
	black  *Ball
	tick   int
	angles AngleSource

	simLog   *SimLog
	eventLog *EventLog
}

// Option configures a Session at construction.
type Option func(*Session)

// WithAngles injects the launch angle source.
func WithAngles(src AngleSource) Option {
	return func(s *Session) { s.angles = src }
}

// WithSeed uses a seeded random angle source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.angles = NewRandomAngles(seed) }
}

// WithSimLog records paint and wall events into sl.
func WithSimLog(sl *SimLog) Option {
	return func(s *Session) { s.simLog = sl }
}

// WithEventLog records human-readable events into el.
func WithEventLog(el *EventLog) Option {
	return func(s *Session) { s.eventLog = el }
}

// NewSession creates a session from a validated config. The black ball starts
// in the left (white) half and the white ball in the right (black) half.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{cfg: cfg}
	for _, o := range opts {
		o(s)
	}
	if s.angles == nil {
		s.angles = NewRandomAngles(0)
	}
	s.init()
	return s
}

func (s *Session) init() {
	size := float64(s.cfg.ArenaSize)
	r := s.cfg.BallRadius
	s.arena = NewArena(s.cfg.ArenaSize, s.cfg.CellSize)
	s.tick = 0
	s.black = NewBall(size/4+r, size/2+r, r, s.angles.Angle(), Black)
	s.white = NewBall(3*size/4+r, size/2+r, r, s.angles.Angle(), White)
	s.logSession("start", fmt.Sprintf("arena=%d cell=%d debug=%v", s.cfg.ArenaSize, s.cfg.CellSize, s.cfg.Debug))
}

// Restart returns a fresh session with the same config, angle source and
// logs, and the given debug flag. The receiver should be discarded.
func (s *Session) Restart(debug bool) *Session {
	cfg := s.cfg
	cfg.Debug = debug
	next := &Session{
		cfg:      cfg,
		angles:   s.angles,
		simLog:   s.simLog,
		eventLog: s.eventLog,
	}
	next.init()
	return next
}

// Step advances the session by one tick: the white ball moves first and
// paints black, then the black ball moves and paints white.
func (s *Session) Step() {
	s.tick++
	s.record(s.white, MoveBall(s.white, Black, s.arena))
	s.record(s.black, MoveBall(s.black, White, s.arena))
}

// RunTicks advances the session n ticks.
func (s *Session) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// RunUntil advances up to maxTicks, stopping early once predicate returns
// true. Returns the tick at which the predicate held, or -1.
func (s *Session) RunUntil(predicate func(*Session) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.Step()
		if predicate(s) {
			return s.tick
		}
	}
	return -1
}

func (s *Session) record(b *Ball, res StepResult) {
	name := b.Color.String()
	if res.WallX || res.WallY {
		axis := "x"
		switch {
		case res.WallX && res.WallY:
			axis = "xy"
		case res.WallY:
			axis = "y"
		}
		if s.simLog != nil {
			s.simLog.Add(s.tick, name, "wall", "bounce", axis, 0)
		}
	}
	if res.Painted {
		msg := fmt.Sprintf("(%d,%d) %s", res.Cell.Row, res.Cell.Col, res.Edge)
		if s.simLog != nil {
			s.simLog.Add(s.tick, name, "paint", "cell", msg, float64(b.Score))
		}
		if s.eventLog != nil {
			s.eventLog.Add(s.tick, b.Color, fmt.Sprintf("paint %s -> %d", msg, b.Score))
		}
	}
	if s.simLog != nil {
		s.simLog.AddVerbose(s.tick, name, "move", "position", fmt.Sprintf("(%.2f,%.2f)", b.X, b.Y), 0)
	}
}

func (s *Session) logSession(key, value string) {
	if s.simLog != nil {
		s.simLog.Add(s.tick, "--", "session", key, value, 0)
	}
}

// Arena returns the cell grid.
func (s *Session) Arena() *Arena { return s.arena }

// White returns the white ball.
func (s *Session) White() *Ball { return s.white }

// Black returns the black ball.
func (s *Session) Black() *Ball { return s.black }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Debug reports whether the session runs in manual step mode.
func (s *Session) Debug() bool { return s.cfg.Debug }

// Tick returns the number of completed ticks.
func (s *Session) Tick() int { return s.tick }

// EventLog returns the attached event log, or nil.
func (s *Session) EventLog() *EventLog { return s.eventLog }

// Leader compares the two scores.
func (s *Session) Leader() Leader {
	switch {
	case s.white.Score > s.black.Score:
		return LeaderWhite
	case s.white.Score < s.black.Score:
		return LeaderBlack
	default:
		return LeaderNone
	}
}
