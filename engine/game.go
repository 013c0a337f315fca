package engine

import (
	"time"

	"github.com/lixenwraith/tetra-fall/constants"
)

// Phase is the top-level game state
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseLevelTransition
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	case PhaseLevelTransition:
		return "level transition"
	default:
		return "unknown"
	}
}

// Event signals a state transition the frontend may react to (sound, flash).
// Events describe the most recent operation only and are replaced, not
// accumulated, across operations.
type Event uint8

const (
	EventLock Event = iota
	EventClear
	EventLevelUp
	EventGameOver
	EventHold
)

// Game is the whole engine state. It is a value: every public operation
// returns a new Game and never mutates the receiver, so a caller can keep
// any number of historical states alive.
type Game struct {
	Board  Board
	Active ActivePiece
	Phase  Phase
	Stats  Stats

	Hold    PieceType
	CanHold bool
	Queue   []PieceType

	// Events raised by the most recent operation, plus the row count of the
	// most recent clear for presentation
	Events       []Event
	ClearedLines int
	LastSpin     TSpin

	bag             Bag
	startLevel      int
	gravityInterval time.Duration
	gravityElapsed  time.Duration
	transition      time.Duration
	backToBack      bool
}

// NewGame creates a game in the menu phase. The seed fixes the piece
// sequence; startLevel below 1 is clamped.
func NewGame(seed uint64, startLevel int) Game {
	if startLevel < constants.StartLevel {
		startLevel = constants.StartLevel
	}
	g := Game{
		Phase:      PhaseMenu,
		Stats:      NewStats(startLevel),
		CanHold:    true,
		bag:        NewBag(seed),
		startLevel: startLevel,
	}
	g.gravityInterval = GravityInterval(g.Stats.Level)
	return g
}

// Start begins play from the menu, drawing the first piece and filling the
// lookahead queue. Outside the menu phase it is a no-op.
func (g Game) Start() Game {
	if g.Phase != PhaseMenu {
		return g
	}
	g.Events = nil
	g.Phase = PhasePlaying
	g = g.fillQueue()
	g = g.spawnNext()
	return g
}

// Restart reinitializes everything from scratch and begins play. The fresh
// bag is seeded from the current RNG state so successive games stay on the
// deterministic stream.
func (g Game) Restart() Game {
	next := NewGame(g.bag.State(), g.startLevel)
	return next.Start()
}

// TogglePause flips between playing and paused
func (g Game) TogglePause() Game {
	g.Events = nil
	switch g.Phase {
	case PhasePlaying:
		g.Phase = PhasePaused
	case PhasePaused:
		g.Phase = PhasePlaying
	}
	return g
}

// MoveLeft shifts the active piece one column left if legal
func (g Game) MoveLeft() Game {
	return g.shift(-1)
}

// MoveRight shifts the active piece one column right if legal
func (g Game) MoveRight() Game {
	return g.shift(1)
}

func (g Game) shift(dx int) Game {
	if g.Phase != PhasePlaying {
		return g
	}
	g.Events = nil
	if !g.Board.IsValid(g.Active, dx, 0) {
		return g
	}
	p := g.Active.Offset(dx, 0)
	p.LastAction = ActionMove
	// a shift while grounded restarts the lock timer, budget permitting
	if !g.Board.IsValid(p, 0, -1) && p.MoveResets < constants.MaxMoveResets {
		p.MoveResets++
		p.LockElapsed = 0
	}
	g.Active = p
	return g
}

// RotateCW rotates the active piece clockwise through the SRS kick table
func (g Game) RotateCW() Game {
	return g.rotate(1)
}

// RotateCCW rotates the active piece counter-clockwise
func (g Game) RotateCCW() Game {
	return g.rotate(-1)
}

func (g Game) rotate(direction int) Game {
	if g.Phase != PhasePlaying {
		return g
	}
	g.Events = nil
	hadBudget := g.Active.MoveResets < constants.MaxMoveResets
	rotated, ok := TryRotate(g.Board, g.Active, direction)
	if !ok {
		return g
	}
	if !g.Board.IsValid(rotated, 0, -1) && hadBudget {
		rotated.LockElapsed = 0
	}
	g.Active = rotated
	return g
}

// SoftDrop moves the active piece down one row if legal. A blocked soft drop
// leaves the state unchanged; locking is the lock-delay machine's job.
func (g Game) SoftDrop() Game {
	if g.Phase != PhasePlaying {
		return g
	}
	g.Events = nil
	if !g.Board.IsValid(g.Active, 0, -1) {
		return g
	}
	p := g.Active.Offset(0, -1)
	p.LastAction = ActionMove
	p.LockElapsed = 0
	g.Active = p
	g.gravityElapsed = 0
	return g
}

// HardDrop sends the active piece straight to its landing pose and locks it
// immediately, exhausting the move-reset budget so nothing can intervene
func (g Game) HardDrop() Game {
	if g.Phase != PhasePlaying {
		return g
	}
	g.Events = nil
	p := g.Active
	for g.Board.IsValid(p, 0, -1) {
		p = p.Offset(0, -1)
	}
	p.LastAction = ActionDrop
	p.MoveResets = constants.MaxMoveResets
	g.Active = p
	return g.lockActive()
}

// HoldPiece stores the active piece, swapping with any previously held type.
// Allowed once per lock; a swapped-in piece that collides at spawn ends the
// game.
func (g Game) HoldPiece() Game {
	if g.Phase != PhasePlaying || !g.CanHold {
		return g
	}
	g.Events = []Event{EventHold}
	held := g.Hold
	g.Hold = g.Active.Type
	g.CanHold = false
	g.gravityElapsed = 0
	if held == PieceNone {
		return g.spawnNext()
	}
	g.Active = NewActivePiece(held)
	if !g.Board.IsValid(g.Active, 0, 0) {
		return g.toGameOver()
	}
	return g
}

// Advance applies elapsed time: gravity pulls the piece down at the
// level-dependent rate, and a grounded piece accumulates lock delay until it
// locks. Advance also times the level-transition interstitial. All other
// phases ignore time.
func (g Game) Advance(delta time.Duration) Game {
	g.Events = nil
	switch g.Phase {
	case PhaseLevelTransition:
		g.transition += delta
		if g.transition >= constants.LevelTransitionDuration {
			g.transition = 0
			g.Phase = PhasePlaying
		}
		return g
	case PhasePlaying:
	default:
		return g
	}

	if g.Board.IsValid(g.Active, 0, -1) {
		// airborne for at least part of this tick; any descent restarts the
		// lock timer and the tick contributes nothing to lock delay
		g.gravityElapsed += delta
		for g.gravityElapsed >= g.gravityInterval {
			g.gravityElapsed -= g.gravityInterval
			if !g.Board.IsValid(g.Active, 0, -1) {
				break
			}
			g.Active = g.Active.Offset(0, -1)
			g.Active.LockElapsed = 0
		}
		return g
	}

	// grounded: accumulate lock delay toward the threshold
	g.Active.LockElapsed += delta
	if g.Active.LockElapsed >= constants.LockDelay {
		return g.lockActive()
	}
	return g
}

// GhostCells returns the cells of the active piece's landing pose
func (g Game) GhostCells() []Point {
	if g.Active.Type == PieceNone {
		return nil
	}
	p := g.Active
	for g.Board.IsValid(p, 0, -1) {
		p = p.Offset(0, -1)
	}
	return p.Cells()
}

// lockActive commits the active piece: T-spin classification, board write,
// line clear, scoring, level progression and the next spawn, as one atomic
// transition
func (g Game) lockActive() Game {
	spin := ClassifyTSpin(g.Board, g.Active)

	lockOut := false
	for _, cell := range g.Active.Cells() {
		if cell.Y >= constants.VisibleHeight {
			lockOut = true
			break
		}
	}
	g.Board = g.Board.Lock(g.Active)
	g.Events = append(g.Events, EventLock)

	if lockOut {
		return g.toGameOver()
	}

	rows := g.Board.CompletedRows()
	cleared := len(rows)
	g.ClearedLines = cleared
	g.LastSpin = spin
	if cleared > 0 {
		g.Board = g.Board.ClearRows(rows)
		g.Stats.Score += CalculateScore(cleared, spin, g.Stats.Level, g.backToBack)
		g.backToBack = isDifficult(cleared, spin)
		g.Stats.Lines += cleared
		g.Stats.LinesUntilNext -= cleared
		g.Events = append(g.Events, EventClear)

		leveled := false
		for g.Stats.LinesUntilNext <= 0 {
			g.Stats.Level++
			g.Stats.LinesUntilNext = LinesForLevel(g.Stats.Level)
			leveled = true
		}
		if leveled {
			g.gravityInterval = GravityInterval(g.Stats.Level)
			g.Phase = PhaseLevelTransition
			g.transition = 0
			g.Events = append(g.Events, EventLevelUp)
		}
	}

	g.CanHold = true
	g.gravityElapsed = 0
	return g.spawnNext()
}

// spawnNext draws the next piece from the queue into play. A spawn pose the
// board rejects is a block-out game over.
func (g Game) spawnNext() Game {
	g = g.fillQueue()
	t := g.Queue[0]
	rest := make([]PieceType, len(g.Queue)-1)
	copy(rest, g.Queue[1:])
	g.Queue = rest
	g = g.fillQueue()

	g.Active = NewActivePiece(t)
	if !g.Board.IsValid(g.Active, 0, 0) {
		return g.toGameOver()
	}
	return g
}

// fillQueue tops the lookahead queue back up from the bag
func (g Game) fillQueue() Game {
	if len(g.Queue) >= constants.QueueLength {
		return g
	}
	queue := make([]PieceType, len(g.Queue), constants.QueueLength)
	copy(queue, g.Queue)
	for len(queue) < constants.QueueLength {
		var t PieceType
		t, g.bag = g.bag.Draw()
		queue = append(queue, t)
	}
	g.Queue = queue
	return g
}

// toGameOver freezes the game. Stats stay as they were; the active piece is
// cleared.
func (g Game) toGameOver() Game {
	g.Phase = PhaseGameOver
	g.Active = ActivePiece{}
	g.Events = append(g.Events, EventGameOver)
	return g
}
