package engine

import (
	"time"

	"github.com/lixenwraith/tetra-fall/constants"
)

// TSpin classifies a lock for scoring purposes
type TSpin uint8

const (
	TSpinNone TSpin = iota
	TSpinMini
	TSpinFull
)

func (t TSpin) String() string {
	switch t {
	case TSpinMini:
		return "t-spin mini"
	case TSpinFull:
		return "t-spin"
	default:
		return "none"
	}
}

// Stats is the scoring and progression bookkeeping. Mutated only by the
// clear path in Game.lockActive.
type Stats struct {
	Score          int
	Level          int
	Lines          int
	LinesUntilNext int
}

// NewStats returns stats for a game starting at the given level
func NewStats(level int) Stats {
	if level < constants.StartLevel {
		level = constants.StartLevel
	}
	return Stats{
		Level:          level,
		LinesUntilNext: LinesForLevel(level),
	}
}

// LinesForLevel returns the number of cleared lines required to leave the
// given level
func LinesForLevel(level int) int {
	switch {
	case level >= constants.LevelBandHighStart:
		return constants.LinesPerLevelHigh
	case level >= constants.LevelBandMidStart:
		return constants.LinesPerLevelMid
	default:
		return constants.LinesPerLevelLow
	}
}

// gravityFrames is the frames-per-row drop table at the 60 Hz reference
// clock, indexed by level-1. Levels past the table floor at one frame.
var gravityFrames = [...]int{
	48, 43, 38, 33, 28, // 1-5
	23, 18, 13, 8, 6, // 6-10
	5, 5, 5, // 11-13
	4, 4, 4, // 14-16
	3, 3, 3, // 17-19
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 20-29
}

// GravityInterval returns how long a piece rests on each row before gravity
// pulls it down one, for the given level
func GravityInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	frames := 1
	if level <= len(gravityFrames) {
		frames = gravityFrames[level-1]
	}
	return time.Duration(frames) * time.Second / constants.GravityFrameRate
}

// baseScore is the pre-multiplier score for a clear. Mini T-spins are priced
// as plain clears.
func baseScore(lines int, spin TSpin) int {
	if spin == TSpinFull {
		switch lines {
		case 1:
			return constants.ScoreTSpinSingle
		case 2:
			return constants.ScoreTSpinDouble
		case 3:
			return constants.ScoreTSpinTriple
		}
		return 0
	}
	switch lines {
	case 1:
		return constants.ScoreSingle
	case 2:
		return constants.ScoreDouble
	case 3:
		return constants.ScoreTriple
	case 4:
		return constants.ScoreTetris
	}
	return 0
}

// isDifficult reports whether a clear sustains the back-to-back chain:
// a Tetris or any T-spin line clear
func isDifficult(lines int, spin TSpin) bool {
	if lines == 0 {
		return false
	}
	return lines == 4 || spin != TSpinNone
}

// CalculateScore computes the score delta for a clear at the given level.
// backToBack applies when both this clear and the previous qualifying clear
// were difficult; the bonus is x1.5 floored.
func CalculateScore(lines int, spin TSpin, level int, backToBack bool) int {
	score := baseScore(lines, spin) * (level + 1)
	if backToBack && isDifficult(lines, spin) {
		score = score * constants.BackToBackNumerator / constants.BackToBackDenominator
	}
	return score
}

// tSpinCorners returns the four diagonal cells around the T piece's 3x3
// center, front pair first relative to the facing direction of the given
// rotation state
func tSpinCorners(p ActivePiece) [4]Point {
	cx, cy := p.X+1, p.Y+2
	switch p.Rotation {
	case 1: // facing right
		return [4]Point{{cx + 1, cy + 1}, {cx + 1, cy - 1}, {cx - 1, cy + 1}, {cx - 1, cy - 1}}
	case 2: // facing down
		return [4]Point{{cx - 1, cy - 1}, {cx + 1, cy - 1}, {cx - 1, cy + 1}, {cx + 1, cy + 1}}
	case 3: // facing left
		return [4]Point{{cx - 1, cy + 1}, {cx - 1, cy - 1}, {cx + 1, cy + 1}, {cx + 1, cy - 1}}
	default: // facing up
		return [4]Point{{cx - 1, cy + 1}, {cx + 1, cy + 1}, {cx - 1, cy - 1}, {cx + 1, cy - 1}}
	}
}

// ClassifyTSpin applies the corner rule against the pre-lock board: the piece
// must be a T whose last successful action was a rotation, and at least three
// of the four diagonals around its center must be blocked. With both front
// corners blocked the spin counts as a mini, otherwise as a full T-spin.
func ClassifyTSpin(b Board, p ActivePiece) TSpin {
	if p.Type != PieceT || p.LastAction != ActionRotate {
		return TSpinNone
	}
	corners := tSpinCorners(p)
	blocked := 0
	frontBlocked := 0
	for i, c := range corners {
		if b.IsOccupied(c.X, c.Y) {
			blocked++
			if i < 2 {
				frontBlocked++
			}
		}
	}
	if blocked < 3 {
		return TSpinNone
	}
	if frontBlocked == 2 {
		return TSpinMini
	}
	return TSpinFull
}
