package engine

import (
	"github.com/lixenwraith/tetra-fall/constants"
)

// Point is a 2D board coordinate, bottom-left origin, y-up
type Point struct {
	X, Y int
}

// Board is the fixed playfield grid. Rows 0..VisibleHeight-1 are shown; rows
// above form the spawn buffer. Board is a plain value: copying it copies the
// grid, which keeps every operation an atomic whole-state transition.
type Board struct {
	cells [constants.BoardHeight][constants.BoardWidth]PieceType
}

// Cell returns the tag at (x, y). Out-of-range coordinates return PieceNone.
func (b Board) Cell(x, y int) PieceType {
	if x < 0 || x >= constants.BoardWidth || y < 0 || y >= constants.BoardHeight {
		return PieceNone
	}
	return b.cells[y][x]
}

// IsOccupied reports whether (x, y) blocks placement. The side walls and the
// floor block; cells at or above the top of the stored grid never do, so
// pieces may spawn and rotate above the grid without hitting a ceiling.
func (b Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= constants.BoardWidth || y < 0 {
		return true
	}
	if y >= constants.BoardHeight {
		return false
	}
	return b.cells[y][x] != PieceNone
}

// IsValid reports whether the piece, shifted by (dx, dy), collides with
// nothing. This is the single legality check for movement, rotation, gravity
// and spawning.
func (b Board) IsValid(p ActivePiece, dx, dy int) bool {
	for _, cell := range p.Offset(dx, dy).Cells() {
		if b.IsOccupied(cell.X, cell.Y) {
			return false
		}
	}
	return true
}

// Lock writes the piece's tag into every cell it occupies and returns the
// updated board. Cells above the stored grid are dropped.
func (b Board) Lock(p ActivePiece) Board {
	for _, cell := range p.Cells() {
		if cell.Y >= 0 && cell.Y < constants.BoardHeight &&
			cell.X >= 0 && cell.X < constants.BoardWidth {
			b.cells[cell.Y][cell.X] = p.Type
		}
	}
	return b
}

// CompletedRows returns the indices of fully occupied rows, bottom-up
func (b Board) CompletedRows() []int {
	var rows []int
	for y := 0; y < constants.BoardHeight; y++ {
		full := true
		for x := 0; x < constants.BoardWidth; x++ {
			if b.cells[y][x] == PieceNone {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows and shifts everything above down,
// leaving empty rows at the top. Row indices must be sorted ascending.
func (b Board) ClearRows(rows []int) Board {
	if len(rows) == 0 {
		return b
	}
	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}

	var out Board
	dst := 0
	for y := 0; y < constants.BoardHeight; y++ {
		if cleared[y] {
			continue
		}
		out.cells[dst] = b.cells[y]
		dst++
	}
	// rows above dst stay zero (PieceNone)
	return out
}

// VisibleRow copies one visible row into dst for presentation
func (b Board) VisibleRow(y int, dst *[constants.BoardWidth]PieceType) {
	if y >= 0 && y < constants.BoardHeight {
		*dst = b.cells[y]
	}
}
