package sim

// DriveMode selects how ticks are triggered.
type DriveMode int

const (
	DriveContinuous DriveMode = iota // one or more ticks every frame
	DriveManual                      // one tick per user trigger
)

func (m DriveMode) String() string {
	if m == DriveManual {
		return "manual"
	}
	return "continuous"
}

// Driver decides how many ticks to run for a frame. triggered is true when
// the user asked for a step during that frame.
type Driver interface {
	Ticks(triggered bool) int
	Mode() DriveMode
}

// speedSteps are the selectable continuous speeds.
var speedSteps = []float64{0.25, 0.5, 1, 2, 4}

// ContinuousDriver runs Speed ticks per frame. Fractional speeds accumulate
// across frames; zero pauses.
type ContinuousDriver struct {
	Speed  float64
	paused bool
	accum  float64
}

// NewContinuousDriver creates a driver running at the given speed.
func NewContinuousDriver(speed float64) *ContinuousDriver {
	return &ContinuousDriver{Speed: speed}
}

func (d *ContinuousDriver) Mode() DriveMode { return DriveContinuous }

func (d *ContinuousDriver) Ticks(_ bool) int {
	if d.paused || d.Speed <= 0 {
		return 0
	}
	d.accum += d.Speed
	n := 0
	for d.accum >= 1.0 {
		d.accum -= 1.0
		n++
	}
	return n
}

// TogglePause pauses or resumes the driver.
func (d *ContinuousDriver) TogglePause() {
	d.paused = !d.paused
}

// Paused reports whether the driver is paused.
func (d *ContinuousDriver) Paused() bool { return d.paused }

// Faster moves to the next speed step.
func (d *ContinuousDriver) Faster() {
	for _, s := range speedSteps {
		if s > d.Speed {
			d.Speed = s
			return
		}
	}
}

// Slower moves to the previous speed step.
func (d *ContinuousDriver) Slower() {
	for i := len(speedSteps) - 1; i >= 0; i-- {
		if speedSteps[i] < d.Speed {
			d.Speed = speedSteps[i]
			return
		}
	}
}

// ManualDriver runs a single tick whenever it is triggered.
type ManualDriver struct{}

func (ManualDriver) Mode() DriveMode { return DriveManual }

func (ManualDriver) Ticks(triggered bool) int {
	if triggered {
		return 1
	}
	return 0
}

// NewDriver picks the manual driver in debug mode and a continuous driver
// at speed otherwise.
func NewDriver(debug bool, speed float64) Driver {
	if debug {
		return ManualDriver{}
	}
	return NewContinuousDriver(speed)
}
