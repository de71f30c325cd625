package sim

import (
	"math/rand"
	"time"
)

// AngleSource supplies launch angles in degrees.
type AngleSource interface {
	Angle() float64
}

// launchAngles holds 10°, 30°, ... 350° minus the axis-aligned 90° and 270°,
// so neither velocity component starts at zero.
var launchAngles = func() []float64 {
	var out []float64
	for k := 0; k < 18; k++ {
		deg := 10 + 20*k
		if deg%90 == 0 {
			continue
		}
		out = append(out, float64(deg))
	}
	return out
}()

// LaunchAngles returns a copy of the angles RandomAngles draws from.
func LaunchAngles() []float64 {
	return append([]float64(nil), launchAngles...)
}

// RandomAngles draws launch angles uniformly from LaunchAngles.
type RandomAngles struct {
	rng *rand.Rand
}

// NewRandomAngles creates a seeded angle source. A zero seed uses the clock.
func NewRandomAngles(seed int64) *RandomAngles {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomAngles{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- game only
}

func (ra *RandomAngles) Angle() float64 {
	return launchAngles[ra.rng.Intn(len(launchAngles))]
}

// FixedAngles replays the given angles in order, wrapping around.
type FixedAngles struct {
	angles []float64
	next   int
}

// NewFixedAngles creates a deterministic angle source for tests and replays.
func NewFixedAngles(angles ...float64) *FixedAngles {
	return &FixedAngles{angles: angles}
}

func (fa *FixedAngles) Angle() float64 {
	if len(fa.angles) == 0 {
		return launchAngles[0]
	}
	a := fa.angles[fa.next%len(fa.angles)]
	fa.next++
	return a
}
