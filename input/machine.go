package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents. Unlike a text-mode
// input machine there is no multi-keystroke state; every key resolves
// immediately through the key table.
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates an input machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: NewKeyTable()}
}

// Translate converts one terminal event into an intent.
// Events with no binding produce IntentNone.
func (m *Machine) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Intent{Type: m.keyTable.LookupRune(ev.Rune())}
		}
		return Intent{Type: m.keyTable.LookupKey(ev.Key())}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{Type: IntentNone}
}
