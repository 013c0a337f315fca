package engine

import (
	"github.com/lixenwraith/tetra-fall/constants"
)

// SRS wall kick tables.
//
// The authoritative SRS tables are written in the guideline's top-down
// coordinate convention. The engine is y-up, so every kick is applied as
// (kick.X, -kick.Y). That sign flip happens exactly once, in TryRotate;
// the tables below are stored verbatim in the top-down convention.
//
// Tables are indexed [fromState][direction] with direction 0 = clockwise,
// 1 = counter-clockwise, covering the 8 transitions per piece class. The
// first candidate is always the unkicked (0,0) rotation.

const (
	kickCW = iota
	kickCCW
)

// jlstzKicks covers J, L, S, T and Z
var jlstzKicks = [4][2][5]Point{
	0: {
		kickCW:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}, // 0->R
		kickCCW: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},    // 0->L
	},
	1: {
		kickCW:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}, // R->2
		kickCCW: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}}, // R->0
	},
	2: {
		kickCW:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},    // 2->L
		kickCCW: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}, // 2->R
	},
	3: {
		kickCW:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L->0
		kickCCW: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // L->2
	},
}

// iKicks covers the I piece, whose kicks differ because its box is 4 wide
var iKicks = [4][2][5]Point{
	0: {
		kickCW:  {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // 0->R
		kickCCW: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // 0->L
	},
	1: {
		kickCW:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}}, // R->2
		kickCCW: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // R->0
	},
	2: {
		kickCW:  {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}}, // 2->L
		kickCCW: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // 2->R
	},
	3: {
		kickCW:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}}, // L->0
		kickCCW: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, // L->2
	},
}

// TryRotate attempts an SRS rotation, direction +1 clockwise or -1
// counter-clockwise. Candidates from the kick table are tried in order; the
// first pose the board accepts is returned with ok=true, the rotation state
// advanced, the move-reset counter bumped (saturating at the cap) and the
// last action recorded as a rotation. If every candidate collides the piece
// is returned unchanged with ok=false.
func TryRotate(b Board, p ActivePiece, direction int) (ActivePiece, bool) {
	if p.Type == PieceO {
		// O never changes shape; the rotation trivially succeeds in place
		rotated := p
		rotated.Rotation = (p.Rotation + direction + 4) % 4
		rotated.LastAction = ActionRotate
		if rotated.MoveResets < constants.MaxMoveResets {
			rotated.MoveResets++
		}
		return rotated, true
	}

	dir := kickCW
	if direction < 0 {
		dir = kickCCW
	}
	var kicks [5]Point
	if p.Type == PieceI {
		kicks = iKicks[p.Rotation][dir]
	} else {
		kicks = jlstzKicks[p.Rotation][dir]
	}

	rotated := p
	rotated.Rotation = (p.Rotation + direction + 4) % 4
	for _, kick := range kicks {
		// top-down table, y-up board: flip the vertical component
		candidate := rotated.Offset(kick.X, -kick.Y)
		if b.IsValid(candidate, 0, 0) {
			candidate.LastAction = ActionRotate
			if candidate.MoveResets < constants.MaxMoveResets {
				candidate.MoveResets++
			}
			return candidate, true
		}
	}
	return p, false
}
