package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/events"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/session"
)

// game wires one terminal to a sequence of sessions
type game struct {
	screen   tcell.Screen
	cfg      *config.Config
	sound    *audio.SoundManager
	renderer *render.TerminalRenderer
	input    *input.Handler
	router   *events.Router

	session *session.Session
	clock   *engine.PausableClock
	loop    *engine.FrameLoop

	eventChan <-chan tcell.Event
	quit      bool
}

func newGame(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) *game {
	g := &game{
		screen:   screen,
		cfg:      cfg,
		sound:    sound,
		renderer: render.NewTerminalRenderer(screen),
		input:    input.NewHandler(nil),
		router:   events.NewRouter(nil),
	}

	g.router.Register(sound)
	g.router.Register(g.renderer)
	g.router.Register(events.HandlerFunc{
		Types: []events.EventType{events.EventGameOver, events.EventPauseToggled},
		Fn:    g.logEvent,
	})
	return g
}

// newSession replaces the current session and resets per-session state
func (g *game) newSession() error {
	s, err := session.New(g.cfg.SessionConfig())
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}

	g.session = s
	g.clock = engine.NewPausableClock(nil)
	g.router.Attach(s.Events())
	g.sound.ResetLatch()

	g.loop = engine.NewFrameLoop(engine.FrameLoopConfig{
		Clock:         g.clock,
		Scheduler:     engine.NewTickScheduler(g.cfg.Timing.MoveInterval),
		Router:        g.router,
		FrameInterval: g.cfg.Timing.FrameInterval,
		Input:         g.drainInput,
		Step:          g.step,
		Render:        g.render,
	})
	return nil
}

// run plays sessions until quit; each finished session waits for restart or quit
func (g *game) run(ctx context.Context) error {
	g.eventChan = g.startPoller()

	for {
		if err := g.newSession(); err != nil {
			return err
		}

		if err := g.loop.Run(ctx); err != nil {
			return err
		}
		if g.quit {
			return nil
		}

		restart, err := g.awaitRestart(ctx)
		if err != nil || !restart {
			return err
		}
		log.Printf("session %s: restart requested", g.session.ID())
	}
}

// startPoller forwards tcell events until the screen is finalized
func (g *game) startPoller() <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	core.Go(func() {
		defer close(ch)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			ch <- ev
		}
	})
	return ch
}

func (g *game) drainInput() {
	for {
		select {
		case ev, ok := <-g.eventChan:
			if !ok {
				g.requestQuit()
				return
			}
			g.handleIntent(g.input.HandleEvent(ev))
		default:
			return
		}
	}
}

// handleIntent applies one intent to the running session
func (g *game) handleIntent(in input.Intent) {
	switch in.Type {
	case input.IntentQuit:
		g.requestQuit()
	case input.IntentDirection:
		if !g.clock.IsPaused() {
			g.session.SetDirection(in.Direction)
		}
	case input.IntentPause:
		if g.session.Over() {
			return
		}
		paused := g.clock.Toggle()
		err := g.session.Events().Push(events.GameEvent{
			Type:      events.EventPauseToggled,
			Payload:   &events.PausePayload{Paused: paused},
			Tick:      g.session.Ticks(),
			Timestamp: g.clock.RealTime(),
		})
		if err != nil {
			log.Printf("session %s: dropped pause event: %v", g.session.ID(), err)
		}
	case input.IntentMute:
		g.sound.ToggleMute()
	case input.IntentResize:
		g.screen.Sync()
	}
}

func (g *game) requestQuit() {
	g.quit = true
	if g.loop != nil {
		g.loop.Stop()
	}
}

// step advances the session, true ends the frame loop
func (g *game) step() bool {
	g.session.Tick()
	return g.session.Over()
}

func (g *game) render() {
	g.renderer.Render(render.Frame{
		Snapshot: g.session.Snapshot(),
		Paused:   g.clock.IsPaused(),
		Muted:    g.sound.IsMuted(),
		Now:      g.clock.RealTime(),
	})
}

// awaitRestart blocks on the game over screen, true means start a new session
func (g *game) awaitRestart(ctx context.Context) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case ev, ok := <-g.eventChan:
			if !ok {
				return false, nil
			}
			if restart, done := g.restartChoice(g.input.HandleEvent(ev)); done {
				return restart, nil
			}
		}
	}
}

// restartChoice handles one intent on the game over screen, done reports a decision
func (g *game) restartChoice(in input.Intent) (restart bool, done bool) {
	switch in.Type {
	case input.IntentRestart:
		return true, true
	case input.IntentQuit:
		g.quit = true
		return false, true
	case input.IntentMute:
		g.sound.ToggleMute()
		g.render()
	case input.IntentResize:
		g.screen.Sync()
		g.render()
	}
	return false, false
}

func (g *game) logEvent(ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.GameOverPayload:
		log.Printf("session %s: %s at tick %d, score %d (%s)",
			g.session.ID(), ev.Type, ev.Tick, p.Score, ev.Timestamp.Format(time.RFC3339))
	case *events.PausePayload:
		log.Printf("session %s: paused=%v at tick %d", g.session.ID(), p.Paused, ev.Tick)
	}
}
