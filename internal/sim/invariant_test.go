package sim

import "testing"

// runInvariants steps a seeded session and checks the per-tick invariants.
func runInvariants(t *testing.T, seed int64, ticks int) {
	t.Helper()
	s := NewSession(DefaultConfig(), WithSeed(seed))
	a := s.Arena()
	total := a.N() * a.N()
	lo := s.Config().BallRadius
	hi := float64(s.Config().ArenaSize) - lo

	prevWhite, prevBlack := 0, 0
	for i := 0; i < ticks; i++ {
		s.Step()
		w, b := s.White(), s.Black()

		if a.Count(White)+a.Count(Black) != total {
			t.Fatalf("seed %d tick %d: cell counts do not add up to %d", seed, s.Tick(), total)
		}
		// Each paint flips exactly one cell of the painter's own color.
		if a.Count(White) != total/2+b.Score-w.Score {
			t.Fatalf("seed %d tick %d: white=%d, want %d from scores w=%d b=%d",
				seed, s.Tick(), a.Count(White), total/2+b.Score-w.Score, w.Score, b.Score)
		}

		for _, tc := range []struct {
			ball *Ball
			prev int
		}{{w, prevWhite}, {b, prevBlack}} {
			delta := tc.ball.Score - tc.prev
			if delta < 0 || delta > 1 {
				t.Fatalf("seed %d tick %d: %s score moved by %d", seed, s.Tick(), tc.ball.Color, delta)
			}
			// Without a paint the ball ends where wall reflection left it;
			// a paint rolls back at most one velocity step.
			slack := 1e-9
			if delta == 1 {
				slack += BallSpeed
			}
			if tc.ball.X < lo-slack || tc.ball.X > hi+slack || tc.ball.Y < lo-slack || tc.ball.Y > hi+slack {
				t.Fatalf("seed %d tick %d: %s ball out of bounds at (%.3f,%.3f)",
					seed, s.Tick(), tc.ball.Color, tc.ball.X, tc.ball.Y)
			}
			if sp := tc.ball.Speed(); sp < BallSpeed-1e-9 || sp > BallSpeed+1e-9 {
				t.Fatalf("seed %d tick %d: %s speed drifted to %.6f", seed, s.Tick(), tc.ball.Color, sp)
			}
		}
		prevWhite, prevBlack = w.Score, b.Score
	}
}

func TestInvariants_ManySeeds(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		runInvariants(t, seed, 4000)
	}
}

func TestInvariants_PlayProgresses(t *testing.T) {
	s := NewSession(DefaultConfig(), WithSeed(42))
	s.RunTicks(3000)
	if s.White().Score+s.Black().Score == 0 {
		t.Fatal("expected at least one paint in 3000 ticks")
	}
}
