package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

// drawArena fills every cell with its color. In debug mode each cell also
// gets a green outline so cell boundaries are visible while stepping.
func (g *Game) drawArena(screen *ebiten.Image) {
	a := g.session.Arena()
	cs := float32(a.CellSize())
	ox := float32(g.offX)
	oy := float32(g.offY)
	debug := g.session.Debug()

	a.EachCell(func(row, col int, c sim.Color) {
		x := ox + float32(col)*cs
		y := oy + float32(row)*cs
		vector.FillRect(screen, x, y, cs, cs, cellColor(c), false)
		if debug {
			vector.StrokeRect(screen, x, y, cs, cs, 1, gridStroke, false)
		}
	})

	size := float32(a.Size())
	vector.StrokeRect(screen, ox-1, oy-1, size+2, size+2, 2, color.RGBA{R: 90, G: 96, B: 110, A: 255}, false)
}

func (g *Game) drawBalls(screen *ebiten.Image) {
	for _, b := range []*sim.Ball{g.session.White(), g.session.Black()} {
		cx := float32(g.offX) + float32(b.X)
		cy := float32(g.offY) + float32(b.Y)
		vector.FillCircle(screen, cx, cy, float32(b.Radius), cellColor(b.Color), true)
	}
}

// cellColor maps a cell state to its fill. Balls use the same palette, so a
// ball is always drawn on the cells of the other color.
func cellColor(c sim.Color) color.RGBA {
	if c == sim.White {
		return cellWhite
	}
	return cellBlack
}
