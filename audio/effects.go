// Package audio plays short synthesized effect tones for game events.
// The engine itself is silent; the frontend maps engine events to these
// calls. A failed speaker init degrades to silence, never to an error the
// game loop has to care about.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine owns the speaker and the mute flag
type Engine struct {
	ready bool
	muted bool
}

// NewEngine initializes the speaker. On failure the engine stays silent and
// the error is returned for logging only.
func NewEngine(muted bool) (*Engine, error) {
	e := &Engine{muted: muted}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return e, err
	}
	e.ready = true
	return e, nil
}

// SetMuted toggles effect playback
func (e *Engine) SetMuted(muted bool) {
	e.muted = muted
}

// tone plays a sine burst of the given frequency and length
func (e *Engine) tone(freq float64, d time.Duration) {
	if !e.ready || e.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Lock marks a piece committing to the stack
func (e *Engine) Lock() {
	e.tone(220, 30*time.Millisecond)
}

// Clear celebrates a line clear, pitched up with the row count
func (e *Engine) Clear(rows int) {
	if rows < 1 {
		return
	}
	if rows > 4 {
		rows = 4
	}
	e.tone(440*float64(rows), 60*time.Millisecond)
}

// LevelUp marks entering a new level
func (e *Engine) LevelUp() {
	e.tone(660, 120*time.Millisecond)
}

// GameOver plays the end-of-game tone
func (e *Engine) GameOver() {
	e.tone(110, 300*time.Millisecond)
}

// Hold acknowledges a hold-slot swap
func (e *Engine) Hold() {
	e.tone(330, 25*time.Millisecond)
}
