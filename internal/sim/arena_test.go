package sim

import "testing"

func TestNewArena_HalfSplitByColumn(t *testing.T) {
	a := NewArena(512, 32)
	if a.N() != 16 {
		t.Fatalf("expected 16 cells per side, got %d", a.N())
	}
	for row := 0; row < a.N(); row++ {
		for col := 0; col < a.N(); col++ {
			want := Black
			if col < 8 {
				want = White
			}
			if got := a.Color(row, col); got != want {
				t.Fatalf("cell (%d,%d)=%s, want %s", row, col, got, want)
			}
		}
	}
}

func TestArena_IndexRoundTrip(t *testing.T) {
	a := NewArena(512, 32)
	seen := make(map[int]bool, a.N()*a.N())
	for row := 0; row < a.N(); row++ {
		for col := 0; col < a.N(); col++ {
			idx := a.Index(row, col)
			if seen[idx] {
				t.Fatalf("index %d produced twice", idx)
			}
			seen[idx] = true
			r, c := a.RowCol(idx)
			if r != row || c != col {
				t.Fatalf("RowCol(Index(%d,%d)) = (%d,%d)", row, col, r, c)
			}
		}
	}
	if len(seen) != a.N()*a.N() {
		t.Fatalf("expected %d distinct indices, got %d", a.N()*a.N(), len(seen))
	}
}

func TestArena_SetColorUpdatesCounts(t *testing.T) {
	a := NewArena(512, 32)
	if a.Count(White) != 128 || a.Count(Black) != 128 {
		t.Fatalf("expected 128/128 split, got white=%d black=%d", a.Count(White), a.Count(Black))
	}
	a.SetColor(3, 2, Black)
	if a.Color(3, 2) != Black {
		t.Fatal("SetColor did not stick")
	}
	if a.Color(2, 3) != White {
		t.Fatal("SetColor wrote the transposed cell")
	}
	if a.Count(White) != 127 || a.Count(Black) != 129 {
		t.Fatalf("expected 127/129 after repaint, got white=%d black=%d", a.Count(White), a.Count(Black))
	}
}

func TestArena_CellAt(t *testing.T) {
	a := NewArena(512, 32)
	if got := a.CellAt(176, 240); got != (CellPos{Row: 7, Col: 5}) {
		t.Fatalf("CellAt(176,240) = %+v, want row 7 col 5", got)
	}
	if got := a.CellAt(0, 511.9); got != (CellPos{Row: 15, Col: 0}) {
		t.Fatalf("CellAt(0,511.9) = %+v, want row 15 col 0", got)
	}
}

func TestArena_InBounds(t *testing.T) {
	a := NewArena(64, 32)
	if !a.InBounds(1, 1) || a.InBounds(2, 0) || a.InBounds(0, -1) {
		t.Fatal("InBounds disagrees with a 2x2 grid")
	}
}

func TestArena_EachCellVisitsAll(t *testing.T) {
	a := NewArena(128, 32)
	white := 0
	visits := 0
	a.EachCell(func(row, col int, c Color) {
		visits++
		if c != a.Color(row, col) {
			t.Fatalf("EachCell reported %s for (%d,%d), Color says %s", c, row, col, a.Color(row, col))
		}
		if c == White {
			white++
		}
	})
	if visits != 16 || white != 8 {
		t.Fatalf("expected 16 visits with 8 white, got %d visits %d white", visits, white)
	}
}

func TestColor_Opposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Fatal("Opposite should swap the two colors")
	}
}
