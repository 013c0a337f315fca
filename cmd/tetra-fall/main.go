package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tetra-fall/audio"
	"github.com/lixenwraith/tetra-fall/constants"
	"github.com/lixenwraith/tetra-fall/engine"
	"github.com/lixenwraith/tetra-fall/input"
	"github.com/lixenwraith/tetra-fall/render"
)

var (
	seedFlag  = flag.Uint64("seed", 0, "RNG seed for the piece sequence (0 = time-based)")
	levelFlag = flag.Int("level", 1, "starting level")
	muteFlag  = flag.Bool("mute", false, "disable sound effects")
	debugFlag = flag.Bool("debug", false, "write a debug log under ./logs")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack, or the
	// trace is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ntetra-fall crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound, err := audio.NewEngine(*muteFlag)
	if err != nil {
		log.Printf("audio init failed, continuing silent: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: seed=%d level=%d", seed, *levelFlag)

	run(screen, sound, seed, *levelFlag)
}

// run owns the frame loop: one goroutine polls terminal events, the main
// goroutine multiplexes them with the 60 Hz tick and serializes all engine
// calls, which is the only concurrency discipline the engine asks for.
func run(screen tcell.Screen, sound *audio.Engine, seed uint64, startLevel int) {
	machine := input.NewMachine()
	renderer := render.NewRenderer(screen)
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider())
	game := engine.NewGame(seed, startLevel)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	renderer.Draw(game.Snapshot())
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			intent := machine.Translate(ev)
			if intent.Type == input.IntentQuit {
				return
			}
			game = applyIntent(game, intent, renderer)
			playEvents(sound, game.Snapshot())
		case <-ticker.C:
			clock.SetPaused(game.Phase == engine.PhasePaused)
			game = game.Advance(clock.Delta())
			playEvents(sound, game.Snapshot())
			renderer.Draw(game.Snapshot())
		}
	}
}

// applyIntent maps one discrete intent onto the engine. Illegal intents are
// engine-level no-ops, so no phase checking happens here.
func applyIntent(game engine.Game, intent input.Intent, renderer *render.Renderer) engine.Game {
	switch intent.Type {
	case input.IntentMoveLeft:
		return game.MoveLeft()
	case input.IntentMoveRight:
		return game.MoveRight()
	case input.IntentSoftDrop:
		return game.SoftDrop()
	case input.IntentHardDrop:
		return game.HardDrop()
	case input.IntentRotateCW:
		return game.RotateCW()
	case input.IntentRotateCCW:
		return game.RotateCCW()
	case input.IntentHold:
		return game.HoldPiece()
	case input.IntentTogglePause:
		return game.TogglePause()
	case input.IntentStart:
		if game.Phase == engine.PhaseMenu {
			return game.Start()
		}
		if game.Phase == engine.PhaseGameOver {
			return game.Restart()
		}
		return game
	case input.IntentRestart:
		return game.Restart()
	case input.IntentResize:
		renderer.Resize()
		return game
	}
	return game
}

// playEvents maps engine events from the last transition to effect tones
func playEvents(sound *audio.Engine, snap engine.Snapshot) {
	for _, ev := range snap.Events {
		switch ev {
		case engine.EventLock:
			sound.Lock()
		case engine.EventClear:
			sound.Clear(snap.ClearedLines)
			log.Printf("clear: %d lines (%v), score %d", snap.ClearedLines, snap.LastSpin, snap.Stats.Score)
		case engine.EventLevelUp:
			sound.LevelUp()
			log.Printf("level up: %d", snap.Stats.Level)
		case engine.EventGameOver:
			sound.GameOver()
			log.Printf("game over: score %d lines %d", snap.Stats.Score, snap.Stats.Lines)
		case engine.EventHold:
			sound.Hold()
		}
	}
}
