package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-explorer/audio"
	"github.com/lixenwraith/maze-explorer/config"
	"github.com/lixenwraith/maze-explorer/game"
)

func main() {
	// Nothing may reach stderr before the debug decision is made
	log.SetOutput(io.Discard)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("[APP] config: %+v", cfg)

	session, err := game.NewSession(cfg.Maze(), time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create maze: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	registerCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager()
	soundOn := false
	if cfg.Sound {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("[AUDIO] initialization failed: %v", err)
		} else {
			soundOn = true
			defer sound.Cleanup()
		}
	}

	a := newApp(session, screen, sound, cfg.MoveDelay(), soundOn)
	a.run(cfg.FrameInterval())

	if session.Player.GoalReached() {
		sc := session.Score()
		log.Printf("[APP] session %s finished: %s (player=%d optimal=%d dfs=%d)",
			session.ID, sc.Verdict(), sc.Player, sc.Optimal, sc.Alternative)
	} else {
		log.Printf("[APP] session %s abandoned after %d moves", session.ID, session.Player.Moves())
	}
}
