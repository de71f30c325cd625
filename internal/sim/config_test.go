package sim

import (
	"errors"
	"testing"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestConfig_RejectsBadSizes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero cell", func(c *Config) { c.CellSize = 0 }, ErrCellSize},
		{"not a multiple", func(c *Config) { c.ArenaSize = 500 }, ErrArenaSize},
		{"odd cell count", func(c *Config) { c.ArenaSize = 96 }, ErrArenaSize},
		{"ball too big", func(c *Config) { c.BallRadius = 20 }, ErrCellSize},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}
