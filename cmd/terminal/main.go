// Command terminal plays Bounce Paint in a terminal using tcell, with
// optional beep sounds on every repaint.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

func main() {
	cfg := sim.DefaultConfig()
	var seed int64
	var fps int
	var speed float64
	var mute bool

	flag.IntVar(&cfg.ArenaSize, "size", sim.DefaultArenaSize, "arena side length in pixels")
	flag.IntVar(&cfg.CellSize, "cell", sim.DefaultCellSize, "cell side length in pixels")
	flag.BoolVar(&cfg.Debug, "debug", false, "start in manual step mode")
	flag.Int64Var(&seed, "seed", 0, "launch angle seed (0 = clock)")
	flag.IntVar(&fps, "fps", 60, "frames per second")
	flag.Float64Var(&speed, "speed", 1, "ticks per frame in continuous mode")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if fps <= 0 {
		log.Fatal("error: -fps must be > 0")
	}

	// Audio starts before the screen takes over the terminal so a failure
	// message stays readable.
	var snd *sound
	if !mute {
		var err error
		snd, err = newSound()
		if err != nil {
			// Non-fatal, the game runs silently.
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		snd.close()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	t := newTerminal(screen, cfg, seed, speed, snd)
	defer t.cleanup()

	t.run(fps)
}
