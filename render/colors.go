package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tetra-fall/engine"
)

// Guideline piece colors
var pieceColors = map[engine.PieceType]tcell.Color{
	engine.PieceI: tcell.ColorDarkCyan,
	engine.PieceO: tcell.ColorYellow,
	engine.PieceT: tcell.ColorPurple,
	engine.PieceS: tcell.ColorGreen,
	engine.PieceZ: tcell.ColorRed,
	engine.PieceJ: tcell.ColorBlue,
	engine.PieceL: tcell.ColorOrange,
}

// PieceColor returns the display color for a piece type, default for empty
func PieceColor(t engine.PieceType) tcell.Color {
	if c, ok := pieceColors[t]; ok {
		return c
	}
	return tcell.ColorDefault
}

// PieceStyle returns the filled-block style for a piece type
func PieceStyle(t engine.PieceType) tcell.Style {
	return tcell.StyleDefault.Background(PieceColor(t))
}

// GhostStyle is the landing preview: same hue, dim outline instead of fill
func GhostStyle(t engine.PieceType) tcell.Style {
	return tcell.StyleDefault.Foreground(PieceColor(t)).Dim(true)
}
