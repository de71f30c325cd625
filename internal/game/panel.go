package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

const (
	panelWidth     = 260
	panelLineH     = 14
	panelRecentHot = 3 // how many of the latest events get highlighted
)

// helpLines is the key legend shown at the top of the side panel.
var helpLines = []string{
	"R      restart",
	"D      toggle debug (manual step)",
	"Space  step (debug)  click also steps",
	"P      pause   , / .  speed",
	"C      copy report to clipboard",
	"H      hide help   Q quit",
}

// drawPanel renders the side panel: key legend, status line, and in debug
// mode the recent event log.
func (g *Game) drawPanel(screen *ebiten.Image) {
	px := g.offX + g.session.Arena().Size() + borderWidth
	ph := g.height

	vector.FillRect(screen, float32(px), 0, panelWidth, float32(ph), color.RGBA{R: 18, G: 20, B: 24, A: 255}, false)
	vector.StrokeLine(screen, float32(px), 0, float32(px), float32(ph), 1, color.RGBA{R: 60, G: 66, B: 80, A: 255}, false)

	y := borderWidth
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d", g.session.Tick()), px+8, y)
	y += panelLineH
	if g.statusFrames > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, px+8, y)
	}
	y += panelLineH * 2

	if g.showHelp {
		for _, l := range helpLines {
			ebitenutil.DebugPrintAt(screen, l, px+8, y)
			y += panelLineH
		}
		y += panelLineH
	}

	if !g.session.Debug() {
		return
	}

	vector.FillRect(screen, float32(px), float32(y), panelWidth, 16, color.RGBA{R: 30, G: 36, B: 44, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", px+8, y)
	y += 20

	maxVisible := (ph - y - borderWidth) / panelLineH
	if maxVisible <= 0 {
		return
	}
	visible := g.events.Last(maxVisible)
	for i, e := range visible {
		if i >= len(visible)-panelRecentHot {
			vector.FillRect(screen, float32(px+2), float32(y), panelWidth-4, panelLineH, color.RGBA{R: 36, G: 44, B: 56, A: 200}, false)
		}
		// Ball colour marker.
		vector.FillRect(screen, float32(px+5), float32(y+4), 4, 6, cellColor(e.Ball), false)
		if e.Ball == sim.Black {
			vector.StrokeRect(screen, float32(px+5), float32(y+4), 4, 6, 1, cellWhite, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %s", e.Tick, e.Message), px+14, y)
		y += panelLineH
	}
}
