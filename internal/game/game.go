// Package game drives the game-state machine and the terminal frontend.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"project-bones/internal/component"
	"project-bones/internal/config"
	"project-bones/internal/event"
	"project-bones/internal/factory"
	"project-bones/internal/input"
	"project-bones/internal/level"
	"project-bones/internal/render"
	"project-bones/internal/session"
	"project-bones/internal/system"

	"github.com/gdamore/tcell/v2"
)

// ErrNoPlayerStart is returned when the loaded level spawns no body.
var ErrNoPlayerStart = errors.New("level has no player start")

// Game is the top-level orchestrator.
type Game struct {
	cfg      config.Settings
	level    level.Level
	sess     *session.Session
	tracker  *input.Tracker
	renderer *render.Renderer // nil when headless
	state    State
	room     int
}

// New creates a Game in the Loading state. Nothing is spawned until the
// first Step.
func New(cfg config.Settings, lv level.Level, log *slog.Logger) *Game {
	return &Game{
		cfg:     cfg,
		level:   lv,
		sess:    session.New(cfg, log),
		tracker: input.NewTracker(nil, cfg.InputTiming()),
	}
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Session exposes the gameplay context.
func (g *Game) Session() *session.Session { return g.sess }

// Room is the index of the current room.
func (g *Game) Room() int { return g.room }

// Step advances the game by one frame at wall-clock time now. The setup
// phases need no input, so they all complete within the first Step.
func (g *Game) Step(now time.Time) error {
	if err := g.advance(); err != nil {
		return err
	}

	switch g.state {
	case StateMainMenu:
		g.tracker.Apply(now, g.sess.Actions, g.sess.Pointer)
		if g.sess.Actions.JustPressed(input.Interact) {
			g.sess.Say("You wake up in pieces. Press x or z to switch parts.")
			g.enter(StateRunning)
		}
	case StateRunning:
		g.tracker.Apply(now, g.sess.Actions, g.sess.Pointer)
		system.Tick(g.sess, system.Running)
	}

	g.changeRooms()
	g.sess.Bus.EndTick()
	g.sess.World.EndTick()
	return nil
}

// advance runs Loading, Setup and CameraSetup in order. Events pushed by
// one phase are consumed by the next in the same frame.
func (g *Game) advance() error {
	for {
		switch g.state {
		case StateLoading:
			if err := g.load(); err != nil {
				return err
			}
			g.enter(StateSetup)
		case StateSetup:
			g.setup()
			g.enter(StateCameraSetup)
		case StateCameraSetup:
			if err := g.setupCamera(); err != nil {
				return err
			}
			g.enter(StateMainMenu)
		default:
			return nil
		}
	}
}

// TogglePause switches between Running and Pause. Other states ignore it.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.enter(StatePause)
	case StatePause:
		g.enter(StateRunning)
	}
}

// HandleEvent feeds one terminal event into the game. It reports whether
// the player asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		if g.renderer != nil {
			g.renderer.Resize()
		}
		return false
	case *tcell.EventKey:
		switch keyToControl(ev) {
		case ControlQuit:
			return true
		case ControlPause:
			g.TogglePause()
			return false
		}
	}
	g.tracker.HandleEvent(ev)
	return false
}

// Draw renders the current state. It is a no-op when headless.
func (g *Game) Draw() {
	r := g.renderer
	if r == nil {
		return
	}
	switch g.state {
	case StateMainMenu:
		r.DrawMenu("PROJECT BONES", "Press e to begin", "p pauses, Esc quits")
	case StateRunning:
		r.DrawFrame(g.sess)
	case StatePause:
		r.DrawFrame(g.sess)
		r.DrawPause()
	default:
		r.DrawMenu("Loading...")
	}
	r.Show()
}

func (g *Game) enter(next State) {
	g.sess.Log.Info("state change", "from", g.state, "to", next)
	g.state = next
}

// load spawns the level, then builds the player aggregate around the Body
// part that appeared this frame.
func (g *Game) load() error {
	ids := factory.SpawnLevel(g.sess.World, g.level)
	g.sess.Log.Info("level spawned", "name", g.level.Name, "entities", len(ids))

	for _, id := range g.sess.World.Added(component.CBodyPart) {
		if g.sess.World.Get(id, component.CBodyPart).(component.BodyPart).Tag != component.PartBody {
			continue
		}
		g.sess.Player = factory.NewPlayerParent(g.sess.World, id)
		g.sess.Bus.RoomChanges.Push(event.RoomChange{Room: 0})
		return nil
	}
	return fmt.Errorf("loading %q: %w", g.level.Name, ErrNoPlayerStart)
}

// setup binds the configured keys and requests the camera.
func (g *Game) setup() {
	bindings := g.cfg.Bindings()
	g.tracker.SetKeyMap(input.NewKeyMap(bindings))
	g.sess.Log.Info("key map loaded", "bindings", len(bindings))
	g.sess.Bus.CameraSetups.Push(event.CameraSetup{})
}

// setupCamera consumes the camera request and spawns the camera on the
// Body.
func (g *Game) setupCamera() error {
	if len(g.sess.Bus.CameraSetups.Drain()) == 0 {
		return errors.New("camera setup: no request pending")
	}
	body := g.sess.BodyParts().Parts[0].Entity
	at, _ := g.sess.Transform(body)
	g.sess.Camera = factory.NewCamera(g.sess.World, at, g.cfg.Tuning.CameraScale)
	g.sess.Validate()
	return nil
}

func (g *Game) changeRooms() {
	for _, rc := range g.sess.Bus.RoomChanges.Drain() {
		g.room = rc.Room
		g.sess.Log.Info("room change", "room", rc.Room, "level", g.level.Name)
		if g.renderer != nil {
			g.renderer.SetRoom(g.level.Name)
		}
	}
}
