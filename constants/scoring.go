package constants

// Line Clear Base Scores
// Awarded values are multiplied by (level + 1) at clear time.
const (
	ScoreSingle = 100
	ScoreDouble = 300
	ScoreTriple = 500
	ScoreTetris = 800

	ScoreTSpinSingle = 800
	ScoreTSpinDouble = 1200
	ScoreTSpinTriple = 1600
)

// Back-to-Back Bonus
const (
	// BackToBackNumerator and BackToBackDenominator encode the x1.5 bonus for
	// consecutive difficult clears as integer math (floored)
	BackToBackNumerator   = 3
	BackToBackDenominator = 2
)

// Level Progression
const (
	// StartLevel is the level a fresh game begins at
	StartLevel = 1

	// Lines required per level-up by level band
	LinesPerLevelLow  = 10 // levels 1-9
	LinesPerLevelMid  = 20 // levels 10-15
	LinesPerLevelHigh = 30 // levels 16+

	LevelBandMidStart  = 10
	LevelBandHighStart = 16
)

// Gravity Reference Clock
const (
	// GravityFrameRate is the reference frame rate the frames-per-drop table
	// is defined against
	GravityFrameRate = 60
)
