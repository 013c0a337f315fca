package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents. Two binding sets coexist: arrows
// plus the conventional guideline keys, and vi-style hjkl movement.
type KeyTable struct {
	keys  map[tcell.Key]IntentType
	runes map[rune]IntentType
}

// NewKeyTable creates the default bindings
func NewKeyTable() *KeyTable {
	return &KeyTable{
		keys: map[tcell.Key]IntentType{
			tcell.KeyLeft:  IntentMoveLeft,
			tcell.KeyRight: IntentMoveRight,
			tcell.KeyDown:  IntentSoftDrop,
			tcell.KeyUp:    IntentRotateCW,
			tcell.KeyEnter: IntentStart,
			tcell.KeyEsc:   IntentTogglePause,
			tcell.KeyCtrlC: IntentQuit,
		},
		runes: map[rune]IntentType{
			'h': IntentMoveLeft,
			'l': IntentMoveRight,
			'j': IntentSoftDrop,
			'k': IntentRotateCW,
			' ': IntentHardDrop,
			'z': IntentRotateCCW,
			'x': IntentRotateCW,
			'c': IntentHold,
			'p': IntentTogglePause,
			'r': IntentRestart,
			'q': IntentQuit,
		},
	}
}

// LookupKey resolves a special key to an intent type
func (kt *KeyTable) LookupKey(key tcell.Key) IntentType {
	return kt.keys[key]
}

// LookupRune resolves a printable key to an intent type
func (kt *KeyTable) LookupRune(r rune) IntentType {
	return kt.runes[r]
}
