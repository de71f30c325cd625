package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

// cellCols is how many terminal columns one arena cell takes; terminal
// characters are roughly twice as tall as wide.
const cellCols = 2

// hudRows is the number of terminal rows above the arena.
const hudRows = 2

const ballGlyph = '●'

var (
	termWhite = tcell.NewRGBColor(0xDD, 0xDD, 0xDD)
	termBlack = tcell.NewRGBColor(0, 0, 0)
	termGreen = tcell.NewRGBColor(0, 0xFF, 0)
)

func termColor(c sim.Color) tcell.Color {
	if c == sim.White {
		return termWhite
	}
	return termBlack
}

// cellStyle is the background of an arena cell.
func cellStyle(c sim.Color) tcell.Style {
	return tcell.StyleDefault.Background(termColor(c)).Foreground(termGreen)
}

// ballPos maps a ball to the terminal column and row it is drawn at,
// relative to the arena origin.
func ballPos(b *sim.Ball, cellSize int) (x, y int) {
	cs := float64(cellSize)
	return int(b.X / cs * cellCols), int(b.Y / cs)
}

// cellRune is the fill character for a cell; debug mode marks cell borders.
func cellRune(debug bool, sub int) rune {
	if debug && sub == 0 {
		return '▏'
	}
	return ' '
}

// leaderMark is the trophy shown next to the leading score.
func leaderMark(l sim.Leader, c sim.Color) string {
	if (l == sim.LeaderWhite && c == sim.White) || (l == sim.LeaderBlack && c == sim.Black) {
		return " ★"
	}
	return ""
}

// drawText writes s starting at (x, y).
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
