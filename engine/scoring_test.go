package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/tetra-fall/constants"
)

func TestCalculateScore_BaseTable(t *testing.T) {
	tests := []struct {
		name  string
		lines int
		spin  TSpin
		level int
		b2b   bool
		want  int
	}{
		{"single at level 1", 1, TSpinNone, 1, false, 200},
		{"double at level 1", 2, TSpinNone, 1, false, 600},
		{"triple at level 1", 3, TSpinNone, 1, false, 1000},
		{"tetris at level 1", 4, TSpinNone, 1, false, 1600},
		{"t-spin single at level 1", 1, TSpinFull, 1, false, 1600},
		{"t-spin double at level 1", 2, TSpinFull, 1, false, 2400},
		{"t-spin triple at level 1", 3, TSpinFull, 1, false, 3200},
		{"mini priced as plain single", 1, TSpinMini, 1, false, 200},
		{"single at level 4", 1, TSpinNone, 4, false, 500},
		{"no lines no score", 0, TSpinFull, 1, false, 0},
	}
	for _, tt := range tests {
		if got := CalculateScore(tt.lines, tt.spin, tt.level, tt.b2b); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCalculateScore_BackToBack(t *testing.T) {
	// consecutive difficult clears earn x1.5, floored
	if got := CalculateScore(4, TSpinNone, 1, true); got != 2400 {
		t.Errorf("back-to-back tetris: got %d, want 2400", got)
	}
	if got := CalculateScore(2, TSpinFull, 1, true); got != 3600 {
		t.Errorf("back-to-back t-spin double: got %d, want 3600", got)
	}
	// a plain single never qualifies, chain flag or not
	if got := CalculateScore(1, TSpinNone, 1, true); got != 200 {
		t.Errorf("plain single with chain flag: got %d, want 200", got)
	}
}

func TestCalculateScore_MonotonicInLevel(t *testing.T) {
	prev := 0
	for level := 1; level <= 30; level++ {
		got := CalculateScore(2, TSpinNone, level, false)
		if got < prev {
			t.Fatalf("score decreased at level %d: %d < %d", level, got, prev)
		}
		prev = got
	}
}

func TestCalculateScore_TSpinBeatsPlain(t *testing.T) {
	if CalculateScore(2, TSpinFull, 3, false) <= CalculateScore(2, TSpinNone, 3, false) {
		t.Error("t-spin double must outscore plain double")
	}
}

func TestLinesForLevel_Bands(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{1, 10}, {5, 10}, {9, 10},
		{10, 20}, {15, 20},
		{16, 30}, {40, 30},
	}
	for _, tt := range tests {
		if got := LinesForLevel(tt.level); got != tt.want {
			t.Errorf("LinesForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGravityInterval_Table(t *testing.T) {
	if got := GravityInterval(1); got != 48*time.Second/60 {
		t.Errorf("level 1: got %v, want 800ms", got)
	}
	if got := GravityInterval(10); got != 6*time.Second/60 {
		t.Errorf("level 10: got %v, want 100ms", got)
	}
	if got := GravityInterval(30); got != time.Second/60 {
		t.Errorf("level 30: got %v, want one frame", got)
	}
	if GravityInterval(99) != GravityInterval(30) {
		t.Error("gravity floors at one frame past the table")
	}
	prev := GravityInterval(1)
	for level := 2; level <= 35; level++ {
		got := GravityInterval(level)
		if got > prev {
			t.Fatalf("gravity slowed down at level %d: %v > %v", level, got, prev)
		}
		prev = got
	}
}

func TestClassifyTSpin_RequiresTAndRotation(t *testing.T) {
	var b Board
	for y := 0; y < 4; y++ {
		for x := 0; x < constants.BoardWidth; x++ {
			b.cells[y][x] = PieceI
		}
	}

	j := ActivePiece{Type: PieceJ, X: 0, Y: 0, LastAction: ActionRotate}
	if ClassifyTSpin(b, j) != TSpinNone {
		t.Error("only the T piece can t-spin")
	}

	moved := ActivePiece{Type: PieceT, X: 0, Y: 0, LastAction: ActionMove}
	if ClassifyTSpin(b, moved) != TSpinNone {
		t.Error("a t-spin requires the last action to be a rotation")
	}
}

func TestClassifyTSpin_CornerRule(t *testing.T) {
	// T facing down at (0,0): center (1,2), front corners (0,1) and (2,1),
	// back corners (0,3) and (2,3)
	p := ActivePiece{Type: PieceT, X: 0, Y: 0, Rotation: 2, LastAction: ActionRotate}

	occupy := func(pts ...Point) Board {
		var b Board
		for _, pt := range pts {
			b.cells[pt.Y][pt.X] = PieceL
		}
		return b
	}

	// one front corner open, three blocked: full t-spin
	b := occupy(Point{0, 1}, Point{0, 3}, Point{2, 3})
	if got := ClassifyTSpin(b, p); got != TSpinFull {
		t.Errorf("expected full t-spin, got %v", got)
	}

	// both front corners blocked: mini
	b = occupy(Point{0, 1}, Point{2, 1}, Point{0, 3})
	if got := ClassifyTSpin(b, p); got != TSpinMini {
		t.Errorf("expected mini t-spin, got %v", got)
	}

	// only two corners blocked: not a t-spin
	b = occupy(Point{0, 1}, Point{0, 3})
	if got := ClassifyTSpin(b, p); got != TSpinNone {
		t.Errorf("expected no t-spin, got %v", got)
	}
}

func TestClassifyTSpin_WallsAndFloorBlock(t *testing.T) {
	// T facing up resting on the floor at the left: the floor supplies both
	// back corners below y=0
	var b Board
	b.cells[1][0] = PieceZ
	p := ActivePiece{Type: PieceT, X: 0, Y: -2, LastAction: ActionRotate}

	if got := ClassifyTSpin(b, p); got != TSpinFull {
		t.Errorf("floor corners must count as blocking, got %v", got)
	}
}
