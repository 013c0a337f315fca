package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tetra-fall/constants"
	"github.com/lixenwraith/tetra-fall/engine"
)

// Board cells are drawn two terminal columns wide so the playfield is
// roughly square on common fonts.
const cellWidth = 2

// Renderer draws engine snapshots onto a tcell screen. It owns no game
// state; every frame is drawn fresh from the snapshot.
type Renderer struct {
	screen tcell.Screen

	// top-left of the playfield border, recomputed on resize
	originX, originY int
}

// NewRenderer creates a renderer for the given screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize recenters the layout after a terminal geometry change
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	fieldW := constants.BoardWidth*cellWidth + 2
	fieldH := constants.VisibleHeight + 2
	r.originX = (w - fieldW) / 2
	if r.originX < 0 {
		r.originX = 0
	}
	r.originY = (h - fieldH) / 2
	if r.originY < 0 {
		r.originY = 0
	}
}

// Draw renders one frame from the snapshot
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()

	r.drawBorder()
	r.drawField(snap)
	r.drawSidePanel(snap)

	switch snap.Phase {
	case engine.PhaseMenu:
		r.drawCenteredOverlay("T E T R A - F A L L", "enter to start, q to quit")
	case engine.PhasePaused:
		r.drawCenteredOverlay("PAUSED", "p or esc to resume")
	case engine.PhaseGameOver:
		r.drawCenteredOverlay("GAME OVER", fmt.Sprintf("score %d - r to restart", snap.Stats.Score))
	case engine.PhaseLevelTransition:
		r.drawCenteredOverlay(fmt.Sprintf("LEVEL %d", snap.Stats.Level), "")
	}

	r.screen.Show()
}

// cellScreenPos converts board coordinates to the screen position of the
// cell's left column. Board y is bottom-up; the screen is top-down.
func (r *Renderer) cellScreenPos(x, y int) (int, int) {
	sx := r.originX + 1 + x*cellWidth
	sy := r.originY + 1 + (constants.VisibleHeight - 1 - y)
	return sx, sy
}

func (r *Renderer) drawBorder() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	fieldW := constants.BoardWidth * cellWidth
	for x := 0; x <= fieldW+1; x++ {
		r.screen.SetContent(r.originX+x, r.originY, tcell.RuneHLine, nil, style)
		r.screen.SetContent(r.originX+x, r.originY+constants.VisibleHeight+1, tcell.RuneHLine, nil, style)
	}
	for y := 0; y <= constants.VisibleHeight+1; y++ {
		r.screen.SetContent(r.originX, r.originY+y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(r.originX+fieldW+1, r.originY+y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(r.originX, r.originY, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(r.originX+fieldW+1, r.originY, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(r.originX, r.originY+constants.VisibleHeight+1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(r.originX+fieldW+1, r.originY+constants.VisibleHeight+1, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawField(snap engine.Snapshot) {
	for y := 0; y < constants.VisibleHeight; y++ {
		for x := 0; x < constants.BoardWidth; x++ {
			if t := snap.Cells[y][x]; t != engine.PieceNone {
				r.drawCell(x, y, PieceStyle(t), ' ')
			}
		}
	}
	for _, c := range snap.GhostCells {
		if c.Y < constants.VisibleHeight {
			r.drawCell(c.X, c.Y, GhostStyle(snap.ActiveType), '░')
		}
	}
	for _, c := range snap.ActiveCells {
		if c.Y < constants.VisibleHeight {
			r.drawCell(c.X, c.Y, PieceStyle(snap.ActiveType), ' ')
		}
	}
}

func (r *Renderer) drawCell(x, y int, style tcell.Style, fill rune) {
	sx, sy := r.cellScreenPos(x, y)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(sx+i, sy, fill, nil, style)
	}
}

func (r *Renderer) drawSidePanel(snap engine.Snapshot) {
	panelX := r.originX + constants.BoardWidth*cellWidth + 4
	y := r.originY + 1

	r.drawText(panelX, y, tcell.StyleDefault.Bold(true), "next")
	y++
	for i, t := range snap.Queue {
		if i >= constants.QueueLength {
			break
		}
		r.drawMiniPiece(panelX, y, t)
		y += 3
	}

	holdX := r.originX - 10
	if holdX < 0 {
		holdX = 0
	}
	hy := r.originY + 1
	r.drawText(holdX, hy, tcell.StyleDefault.Bold(true), "hold")
	if snap.Hold != engine.PieceNone {
		style := PieceStyle(snap.Hold)
		if !snap.CanHold {
			style = GhostStyle(snap.Hold)
		}
		r.drawMiniPieceStyled(holdX, hy+1, snap.Hold, style)
	}

	sy := hy + 5
	r.drawText(holdX, sy, tcell.StyleDefault, fmt.Sprintf("score %d", snap.Stats.Score))
	r.drawText(holdX, sy+1, tcell.StyleDefault, fmt.Sprintf("level %d", snap.Stats.Level))
	r.drawText(holdX, sy+2, tcell.StyleDefault, fmt.Sprintf("lines %d", snap.Stats.Lines))
	r.drawText(holdX, sy+3, tcell.StyleDefault, fmt.Sprintf("next  %d", snap.Stats.LinesUntilNext))
}

// drawMiniPiece renders a piece's spawn-state mask in a side panel slot
func (r *Renderer) drawMiniPiece(x, y int, t engine.PieceType) {
	r.drawMiniPieceStyled(x, y, t, PieceStyle(t))
}

func (r *Renderer) drawMiniPieceStyled(x, y int, t engine.PieceType, style tcell.Style) {
	for _, c := range engine.Shape(t, 0).Cells() {
		sx := x + c.X*cellWidth
		sy := y + (3 - c.Y)
		for i := 0; i < cellWidth; i++ {
			r.screen.SetContent(sx+i, sy, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCenteredOverlay(title, subtitle string) {
	w, h := r.screen.Size()
	style := tcell.StyleDefault.Bold(true)
	r.drawText((w-len(title))/2, h/2-1, style, title)
	if subtitle != "" {
		r.drawText((w-len(subtitle))/2, h/2+1, tcell.StyleDefault.Dim(true), subtitle)
	}
}
