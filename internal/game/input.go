package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

// handleInput processes edge-triggered key presses. Stepping in manual mode
// is handled by the driver in Update.
func (g *Game) handleInput() error {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}
	defer func() { g.prevKeys = currentKeys }()

	if pressed(ebiten.KeyEscape) || pressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// R: restart in the current mode. D: flip debug mode, which also restarts.
	if pressed(ebiten.KeyR) {
		g.restart(g.session.Debug())
	}
	if pressed(ebiten.KeyD) {
		g.restart(!g.session.Debug())
	}

	if pressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}

	// Speed controls only apply to the continuous driver.
	if cd, ok := g.driver.(*sim.ContinuousDriver); ok {
		if pressed(ebiten.KeyP) {
			cd.TogglePause()
		}
		if pressed(ebiten.KeyComma) {
			cd.Slower()
			g.speed = cd.Speed
		}
		if pressed(ebiten.KeyPeriod) {
			cd.Faster()
			g.speed = cd.Speed
		}
	}
	return nil
}
