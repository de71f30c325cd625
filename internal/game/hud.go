package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

var trophyGold = color.RGBA{R: 230, G: 180, B: 40, A: 255}

// trophies returns which leader indicators are visible. At most one is.
func trophies(l sim.Leader) (white, black bool) {
	return l == sim.LeaderWhite, l == sim.LeaderBlack
}

// drawHUD renders the score bar above the arena: white's score on the left,
// black's on the right, and a trophy beside whoever leads.
func (g *Game) drawHUD(screen *ebiten.Image) {
	barY := float32(borderWidth)
	barW := float32(g.session.Arena().Size())
	vector.FillRect(screen, float32(g.offX), barY, barW, hudHeight-8, color.RGBA{R: 24, G: 26, B: 32, A: 255}, false)

	showWhite, showBlack := trophies(g.session.Leader())
	textY := float64(barY) + 10

	// White swatch + score.
	wx := float32(g.offX) + 8
	vector.FillCircle(screen, wx+6, barY+16, 6, cellWhite, true)
	g.drawText(screen, fmt.Sprintf("WHITE %d", g.session.White().Score), float64(wx)+18, textY, cellWhite)
	if showWhite {
		drawTrophy(screen, wx+110, barY+6)
	}

	// Black swatch + score, right aligned to the arena edge.
	bx := float32(g.offX) + barW - 130
	vector.FillCircle(screen, bx+6, barY+16, 6, cellBlack, true)
	vector.StrokeCircle(screen, bx+6, barY+16, 6, 1, cellWhite, true)
	g.drawText(screen, fmt.Sprintf("BLACK %d", g.session.Black().Score), float64(bx)+18, textY, cellWhite)
	if showBlack {
		drawTrophy(screen, bx-24, barY+6)
	}

	// Mode indicator in the middle.
	mode := g.driver.Mode().String()
	if cd, ok := g.driver.(*sim.ContinuousDriver); ok {
		if cd.Paused() {
			mode = "paused"
		} else {
			mode = fmt.Sprintf("%s %.2gx", mode, cd.Speed)
		}
	}
	g.drawText(screen, mode, float64(g.offX)+float64(barW)/2-30, textY, color.RGBA{R: 150, G: 160, B: 170, A: 255})
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.hudFace, op)
}

// drawTrophy draws a small cup with its top-left corner at (x, y).
func drawTrophy(screen *ebiten.Image, x, y float32) {
	vector.FillRect(screen, x+2, y, 12, 9, trophyGold, false)
	vector.FillCircle(screen, x+8, y+9, 6, trophyGold, true)
	vector.StrokeCircle(screen, x+1, y+5, 3, 1.5, trophyGold, true)
	vector.StrokeCircle(screen, x+15, y+5, 3, 1.5, trophyGold, true)
	vector.FillRect(screen, x+7, y+14, 2, 4, trophyGold, false)
	vector.FillRect(screen, x+4, y+18, 8, 2, trophyGold, false)
}
