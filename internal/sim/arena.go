package sim

import "math"

// Color is the state of a single arena cell, and the identity of a ball.
type Color uint8

const (
	Black Color = iota
	White
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CellPos identifies a cell by row and column.
type CellPos struct {
	Row int
	Col int
}

// Arena is the square playfield split into n×n square cells.
// Cells are stored column after column: the first n entries are column 0.
type Arena struct {
	size     int
	cellSize int
	n        int
	cells    []Color
}

// NewArena creates an arena of the given pixel size. The left half of the
// cells start White and the right half Black. size must be a positive
// multiple of cellSize (see Config.Validate).
func NewArena(size, cellSize int) *Arena {
	n := size / cellSize
	a := &Arena{
		size:     size,
		cellSize: cellSize,
		n:        n,
		cells:    make([]Color, n*n),
	}
	for i := range a.cells {
		if i < len(a.cells)/2 {
			a.cells[i] = White
		} else {
			a.cells[i] = Black
		}
	}
	return a
}

// Size returns the arena side length in pixels.
func (a *Arena) Size() int { return a.size }

// CellSize returns the cell side length in pixels.
func (a *Arena) CellSize() int { return a.cellSize }

// N returns the number of cells along one side.
func (a *Arena) N() int { return a.n }

// Index maps (row, col) to the storage index.
func (a *Arena) Index(row, col int) int {
	return col*a.n + row
}

// RowCol is the inverse of Index.
func (a *Arena) RowCol(index int) (row, col int) {
	return index % a.n, index / a.n
}

// InBounds reports whether (row, col) names a cell of the arena.
func (a *Arena) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < a.n && col < a.n
}

// Color returns the color of cell (row, col). Out of range coordinates panic.
func (a *Arena) Color(row, col int) Color {
	return a.cells[a.Index(row, col)]
}

// SetColor overwrites the color of cell (row, col).
func (a *Arena) SetColor(row, col int, c Color) {
	a.cells[a.Index(row, col)] = c
}

// Count returns how many cells currently hold c.
func (a *Arena) Count(c Color) int {
	count := 0
	for _, v := range a.cells {
		if v == c {
			count++
		}
	}
	return count
}

// CellAt returns the cell containing the arena point (x, y).
func (a *Arena) CellAt(x, y float64) CellPos {
	cs := float64(a.cellSize)
	return CellPos{
		Row: int(math.Floor(y / cs)),
		Col: int(math.Floor(x / cs)),
	}
}

// EachCell calls fn for every cell in storage order.
func (a *Arena) EachCell(fn func(row, col int, c Color)) {
	for i, v := range a.cells {
		row, col := a.RowCol(i)
		fn(row, col, v)
	}
}
