package sim

import "math"

// EdgeKind names the orientation of a cell edge a ball bounced off.
type EdgeKind int

const (
	EdgeNone EdgeKind = iota
	EdgeHorizontal
	EdgeVertical
)

func (e EdgeKind) String() string {
	switch e {
	case EdgeHorizontal:
		return "horizontal"
	case EdgeVertical:
		return "vertical"
	default:
		return "none"
	}
}

// StepResult describes what happened to a ball during one MoveBall call.
type StepResult struct {
	WallX   bool // bounced off the left or right wall
	WallY   bool // bounced off the top or bottom wall
	Painted bool
	Cell    CellPos // repainted cell, valid when Painted
	Edge    EdgeKind
}

// neighbourOffsets lists the 8 cells around the ball's cell in scan order.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// cellEdge is one candidate segment of a neighbouring cell.
type cellEdge struct {
	cell CellPos
	kind EdgeKind
}

// MoveBall advances b by one tick inside a. The ball bounces off the walls
// and off cells of its own color; the nearest such cell is repainted with
// paint and scores a point.
func MoveBall(b *Ball, paint Color, a *Arena) StepResult {
	var res StepResult

	b.X += b.DX
	b.Y += b.DY

	fx, fy := 1.0, 1.0
	r := b.Radius
	hi := float64(a.size) - r

	// Walls: pull the ball back along its line of travel.
	if b.X < r {
		b.shiftX(b.X - r)
		fx = -1
	}
	if b.X > hi {
		b.shiftX(b.X - hi)
		fx = -1
	}
	if b.Y < r {
		b.shiftY(b.Y - r)
		fy = -1
	}
	if b.Y > hi {
		b.shiftY(b.Y - hi)
		fy = -1
	}
	// A ball rolled back out of bounds on the previous tick can still be
	// outside after the line-of-travel correction.
	b.X = clamp(b.X, r, hi)
	b.Y = clamp(b.Y, r, hi)
	res.WallX = fx < 0
	res.WallY = fy < 0

	if hit, ok := closestEdge(b, a); ok {
		a.SetColor(hit.cell.Row, hit.cell.Col, paint)
		b.Score++
		b.X -= b.DX
		b.Y -= b.DY
		if hit.kind == EdgeVertical {
			fx = -1
		} else {
			fy = -1
		}
		res.Painted = true
		res.Cell = hit.cell
		res.Edge = hit.kind
	}

	b.DX *= fx
	b.DY *= fy
	return res
}

// shiftX moves the ball back by overflow on X and by the matching amount on Y.
func (b *Ball) shiftX(overflow float64) {
	b.X -= overflow
	if b.DX != 0 {
		b.Y -= overflow * b.DY / b.DX
	}
}

// shiftY moves the ball back by overflow on Y and by the matching amount on X.
func (b *Ball) shiftY(overflow float64) {
	if b.DY != 0 {
		b.X -= overflow * b.DX / b.DY
	}
	b.Y -= overflow
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// closestEdge scans the neighbours of the ball's cell for edges of
// same-colored cells that the ball's circle crosses, and returns the one whose
// midpoint is nearest to the ball center.
func closestEdge(b *Ball, a *Arena) (cellEdge, bool) {
	x0, y0 := b.X, b.Y
	cs := float64(a.cellSize)
	center := a.CellAt(x0, y0)
	r2 := b.Radius * b.Radius

	best := math.Inf(1)
	var found cellEdge
	ok := false

	for _, off := range neighbourOffsets {
		row, col := center.Row+off[0], center.Col+off[1]
		if !a.InBounds(row, col) {
			continue
		}
		if a.Color(row, col) != b.Color {
			continue
		}

		xMin := float64(col) * cs
		xMax := xMin + cs
		yMin := float64(row) * cs
		yMax := yMin + cs

		lineY := yMax
		if row > center.Row {
			lineY = yMin
		}
		if spanHit(x0, r2-(lineY-y0)*(lineY-y0), xMin, xMax) {
			mid := (xMin + xMax) / 2
			d := (mid-x0)*(mid-x0) + (lineY-y0)*(lineY-y0)
			if d < best {
				best = d
				found = cellEdge{cell: CellPos{row, col}, kind: EdgeHorizontal}
				ok = true
			}
		}

		lineX := xMax
		if col > center.Col {
			lineX = xMin
		}
		if spanHit(y0, r2-(lineX-x0)*(lineX-x0), yMin, yMax) {
			mid := (yMin + yMax) / 2
			d := (mid-y0)*(mid-y0) + (lineX-x0)*(lineX-x0)
			if d < best {
				best = d
				found = cellEdge{cell: CellPos{row, col}, kind: EdgeVertical}
				ok = true
			}
		}
	}
	return found, ok
}

// spanHit reports whether a circle centered at c along the edge axis crosses
// the edge line inside [lo, hi). sq is the squared half chord; negative means
// the circle does not reach the line.
func spanHit(c, sq, lo, hi float64) bool {
	if sq < 0 {
		return false
	}
	h := math.Sqrt(sq)
	p1, p2 := c+h, c-h
	return (p1 >= lo && p1 < hi) || (p2 >= lo && p2 < hi)
}
