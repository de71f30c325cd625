package sim

import (
	"errors"
	"fmt"
)

const (
	DefaultArenaSize = 512
	DefaultCellSize  = 32
)

var (
	ErrArenaSize = errors.New("invalid arena size")
	ErrCellSize  = errors.New("invalid cell size")
)

// Config describes a session. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	ArenaSize  int     // side length in pixels
	CellSize   int     // cell side length in pixels
	BallRadius float64 // radius of both balls
	Debug      bool    // manual stepping and cell outlines
}

// DefaultConfig returns the 512px arena with 32px cells and 8px balls.
func DefaultConfig() Config {
	return Config{
		ArenaSize:  DefaultArenaSize,
		CellSize:   DefaultCellSize,
		BallRadius: DefaultBallRadius,
	}
}

// Validate checks that the arena can be tiled by cells and hold the balls.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: %d must be positive", ErrCellSize, c.CellSize)
	}
	if c.ArenaSize <= 0 || c.ArenaSize%c.CellSize != 0 {
		return fmt.Errorf("%w: %d is not a positive multiple of cell size %d", ErrArenaSize, c.ArenaSize, c.CellSize)
	}
	if n := c.ArenaSize / c.CellSize; n < 2 || n%2 != 0 {
		return fmt.Errorf("%w: %d cells per side, need an even count of at least 2", ErrArenaSize, n)
	}
	if c.BallRadius <= 0 || 2*c.BallRadius > float64(c.CellSize) {
		return fmt.Errorf("%w: ball radius %.1f does not fit cell size %d", ErrCellSize, c.BallRadius, c.CellSize)
	}
	return nil
}
