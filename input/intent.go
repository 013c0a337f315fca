package input

// IntentType discriminates the discrete actions the engine consumes.
// The engine treats illegal intents as no-ops, so the input layer never
// needs game-state awareness to filter them.
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Piece intents
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentHardDrop
	IntentRotateCW
	IntentRotateCCW
	IntentHold

	// Session intents
	IntentStart       // begin play from the menu or game-over screen
	IntentTogglePause // pause/resume
	IntentRestart     // fresh game, fresh bag
	IntentQuit        // leave the program
	IntentResize      // terminal geometry changed
)

// Intent is a parsed semantic action. Pure data with no engine dependencies.
type Intent struct {
	Type IntentType
}
