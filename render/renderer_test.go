package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tetra-fall/engine"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func TestDraw_LockedCellGetsPieceStyle(t *testing.T) {
	s := simScreen(t, 80, 30)
	defer s.Fini()
	r := NewRenderer(s)

	var snap engine.Snapshot
	snap.Phase = engine.PhasePlaying
	snap.Cells[0][0] = engine.PieceI // bottom-left board cell
	r.Draw(snap)

	// bottom-left board cell sits just inside the lower-left border corner
	sx, sy := r.cellScreenPos(0, 0)
	cells, w, _ := s.GetContents()
	style := cells[sy*w+sx].Style
	if style == tcell.StyleDefault {
		t.Error("locked cell rendered with default style")
	}
	_, bg, _ := style.Decompose()
	if bg != PieceColor(engine.PieceI) {
		t.Errorf("cell background = %v, want I-piece color", bg)
	}
}

func TestDraw_AllPhasesRenderWithoutPanic(t *testing.T) {
	s := simScreen(t, 80, 30)
	defer s.Fini()
	r := NewRenderer(s)

	phases := []engine.Phase{
		engine.PhaseMenu,
		engine.PhasePlaying,
		engine.PhasePaused,
		engine.PhaseGameOver,
		engine.PhaseLevelTransition,
	}
	for _, phase := range phases {
		var snap engine.Snapshot
		snap.Phase = phase
		r.Draw(snap)
	}
}

func TestResize_ClampsOriginOnTinyScreens(t *testing.T) {
	s := simScreen(t, 10, 5)
	defer s.Fini()
	r := NewRenderer(s)

	if r.originX < 0 || r.originY < 0 {
		t.Errorf("origin went negative: (%d, %d)", r.originX, r.originY)
	}

	// drawing on a too-small screen must not panic either
	var snap engine.Snapshot
	snap.Phase = engine.PhasePlaying
	r.Draw(snap)
}

func TestPieceColor_DistinctPerType(t *testing.T) {
	seen := make(map[tcell.Color]engine.PieceType)
	for _, pt := range engine.PieceTypes {
		c := PieceColor(pt)
		if c == tcell.ColorDefault {
			t.Errorf("%v has no color", pt)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("%v and %v share a color", pt, prev)
		}
		seen[c] = pt
	}
}
