package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-explorer/audio"
	"github.com/lixenwraith/maze-explorer/game"
	"github.com/lixenwraith/maze-explorer/input"
	"github.com/lixenwraith/maze-explorer/render"
)

// app binds one session to the screen, keys and sound
type app struct {
	session  *game.Session
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	cadence  *input.Cadence
	sound    *audio.SoundManager
}

func newApp(s *game.Session, screen tcell.Screen, sound *audio.SoundManager, moveDelay int, soundOn bool) *app {
	r := render.NewTerminalRenderer(screen)
	r.SoundOn = soundOn
	return &app{
		session:  s,
		screen:   screen,
		renderer: r,
		keys:     input.DefaultKeyTable(),
		cadence:  input.NewCadence(moveDelay),
		sound:    sound,
	}
}

// handleEvent applies one terminal event. Returns false to exit.
func (a *app) handleEvent(ev tcell.Event) bool {
	return a.handleIntent(a.keys.Translate(ev))
}

func (a *app) handleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentConfirm:
		if a.session.Player.GoalReached() {
			return false
		}
	case input.IntentToggleSound:
		muted := a.sound.ToggleMute()
		a.renderer.SoundOn = !muted
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentMove:
		if !a.session.Player.GoalReached() {
			a.cadence.Press(in.Direction)
		}
	}
	return true
}

// tick advances one frame: at most one move, then a redraw
func (a *app) tick(now time.Time) {
	if d, ok := a.cadence.Tick(); ok {
		wasDone := a.session.Player.GoalReached()
		if a.session.Move(d, now) {
			if !wasDone && a.session.Player.GoalReached() {
				a.sound.PlayGoal()
				a.cadence.Reset()
			}
		} else {
			log.Printf("[INPUT] blocked move %+v at %v", d, a.session.Player.Position())
			a.sound.PlayBump()
		}
	}
	a.renderer.RenderFrame(a.session, now)
}

// run polls events on a goroutine and ticks at frameInterval until exit
func (a *app) run(frameInterval time.Duration) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	goSafe(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.tick(now)
		}
	}
}
