package constants

import "time"

// Playfield Geometry
const (
	// BoardWidth is the number of columns in the playfield
	BoardWidth = 10

	// BoardHeight is the total number of rows, including the hidden spawn buffer
	BoardHeight = 40

	// VisibleHeight is the number of rows shown to the player; rows at and
	// above this index form the spawn buffer
	VisibleHeight = 20
)

// Piece Spawning
const (
	// SpawnX is the column of the piece bounding box at spawn
	SpawnX = 3

	// SpawnY is the row of the piece bounding box at spawn; the box is placed
	// so the piece's lowest cells sit on the first hidden row
	SpawnY = 18

	// QueueLength is the visible next-piece lookahead
	QueueLength = 6
)

// Lock Delay
const (
	// LockDelay is how long a grounded piece may rest before it locks
	LockDelay = 500 * time.Millisecond

	// MaxMoveResets caps how many moves or rotations may restart the lock
	// delay timer for a single piece
	MaxMoveResets = 15
)

// Game Loop Timing
const (
	// FrameInterval is the frontend frame tick (~60 FPS)
	FrameInterval = time.Second / 60

	// LevelTransitionDuration is how long the level-up interstitial holds
	// before play resumes
	LevelTransitionDuration = time.Second
)
