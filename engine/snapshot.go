package engine

import (
	"github.com/lixenwraith/tetra-fall/constants"
)

// Snapshot is the read-only projection the presentation layer renders from.
// It carries no references into the Game, so a renderer on another goroutine
// can hold one safely while the loop advances.
type Snapshot struct {
	// Cells is the visible playfield, indexed [y][x] with y=0 the bottom row
	Cells [constants.VisibleHeight][constants.BoardWidth]PieceType

	ActiveCells []Point
	ActiveType  PieceType
	GhostCells  []Point

	Hold    PieceType
	CanHold bool
	Queue   []PieceType

	Stats Stats
	Phase Phase

	Events       []Event
	ClearedLines int
	LastSpin     TSpin
}

// Snapshot projects the current state for presentation
func (g Game) Snapshot() Snapshot {
	s := Snapshot{
		ActiveType:   g.Active.Type,
		Hold:         g.Hold,
		CanHold:      g.CanHold,
		Stats:        g.Stats,
		Phase:        g.Phase,
		ClearedLines: g.ClearedLines,
		LastSpin:     g.LastSpin,
	}
	for y := 0; y < constants.VisibleHeight; y++ {
		g.Board.VisibleRow(y, &s.Cells[y])
	}
	if g.Active.Type != PieceNone {
		s.ActiveCells = g.Active.Cells()
		s.GhostCells = g.GhostCells()
	}
	s.Queue = make([]PieceType, len(g.Queue))
	copy(s.Queue, g.Queue)
	s.Events = make([]Event, len(g.Events))
	copy(s.Events, g.Events)
	return s
}
