package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/bounce-paint/internal/game"
	"github.com/Garsondee/bounce-paint/internal/sim"
)

func main() {
	cfg := sim.DefaultConfig()
	var seed int64
	var speed float64

	flag.IntVar(&cfg.ArenaSize, "size", sim.DefaultArenaSize, "arena side length in pixels")
	flag.IntVar(&cfg.CellSize, "cell", sim.DefaultCellSize, "cell side length in pixels")
	flag.BoolVar(&cfg.Debug, "debug", false, "start in manual step mode")
	flag.Int64Var(&seed, "seed", 0, "launch angle seed (0 = clock)")
	flag.Float64Var(&speed, "speed", 1, "ticks per frame in continuous mode")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	g := game.New(cfg, seed, speed)
	ebiten.SetWindowTitle("Bounce Paint")
	ebiten.SetWindowSize(g.WindowSize())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
