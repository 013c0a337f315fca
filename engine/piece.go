package engine

import (
	"time"

	"github.com/lixenwraith/tetra-fall/constants"
)

// PieceType identifies one of the seven tetrominoes.
// PieceNone doubles as the empty board cell and the empty hold slot.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceTypes lists the seven playable types in bag order
var PieceTypes = [7]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "none"
	}
}

// Action records the last successful operation applied to a piece.
// T-spin classification requires the last action to be a rotation.
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionRotate
	ActionDrop
)

// Mask is a 4x4 occupancy grid for one rotation state.
// Rows are listed top-down in source for readability; Cells converts a mask
// row index r to the bottom-up y offset 3-r.
type Mask [4][4]uint8

// shapeTable holds the four rotation states per piece type, indexed by
// PieceType. State order is spawn, clockwise, 180, counter-clockwise.
// J/L/S/T/Z live in the top-left 3x3 of the box, I uses the full box and O
// the center columns of the top rows, per SRS.
var shapeTable = [8][4]Mask{
	PieceI: {
		{{0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}, {0, 0, 1, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}},
	},
	PieceO: {
		{{0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	},
	PieceT: {
		{{0, 1, 0, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {1, 1, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {1, 1, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
	},
	PieceS: {
		{{0, 1, 1, 0}, {1, 1, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {0, 1, 1, 0}, {1, 1, 0, 0}, {0, 0, 0, 0}},
		{{1, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
	},
	PieceZ: {
		{{1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 1, 0}, {0, 1, 1, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {1, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 0}},
	},
	PieceJ: {
		{{1, 0, 0, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 1, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {1, 1, 1, 0}, {0, 0, 1, 0}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 0, 0}, {1, 1, 0, 0}, {0, 0, 0, 0}},
	},
	PieceL: {
		{{0, 0, 1, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
		{{0, 0, 0, 0}, {1, 1, 1, 0}, {1, 0, 0, 0}, {0, 0, 0, 0}},
		{{1, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}},
	},
}

// Shape returns the 4x4 mask for a piece type in a rotation state.
// Calling it for PieceNone is a programmer error.
func Shape(t PieceType, rotation int) Mask {
	return shapeTable[t][rotation&3]
}

// Cells returns the relative bottom-up offsets of the set cells
func (m Mask) Cells() []Point {
	cells := make([]Point, 0, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if m[r][c] != 0 {
				cells = append(cells, Point{X: c, Y: 3 - r})
			}
		}
	}
	return cells
}

// spawnTable holds the bounding-box origin each type spawns at. All types
// share the standard middle column with the piece resting on the first
// hidden row.
var spawnTable = [8]Point{
	PieceI: {X: constants.SpawnX, Y: constants.SpawnY},
	PieceO: {X: constants.SpawnX, Y: constants.SpawnY},
	PieceT: {X: constants.SpawnX, Y: constants.SpawnY},
	PieceS: {X: constants.SpawnX, Y: constants.SpawnY},
	PieceZ: {X: constants.SpawnX, Y: constants.SpawnY},
	PieceJ: {X: constants.SpawnX, Y: constants.SpawnY},
	PieceL: {X: constants.SpawnX, Y: constants.SpawnY},
}

// ActivePiece is the falling piece. It is a value type; every operation on it
// yields a new value so prior states stay valid.
type ActivePiece struct {
	Type     PieceType
	X, Y     int // bounding-box origin, bottom-left, y-up
	Rotation int // 0..3

	LockElapsed time.Duration
	MoveResets  int
	LastAction  Action
}

// NewActivePiece creates a piece of the given type at its spawn pose
func NewActivePiece(t PieceType) ActivePiece {
	spawn := spawnTable[t]
	return ActivePiece{
		Type: t,
		X:    spawn.X,
		Y:    spawn.Y,
	}
}

// Cells returns the absolute board coordinates the piece occupies
func (p ActivePiece) Cells() []Point {
	cells := Shape(p.Type, p.Rotation).Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Offset returns a copy of the piece shifted by (dx, dy)
func (p ActivePiece) Offset(dx, dy int) ActivePiece {
	p.X += dx
	p.Y += dy
	return p
}
