package game

import (
	"context"
	"fmt"
	"time"

	"project-bones/internal/render"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// eventBuffer bounds how far the event pump may run ahead of the tick loop.
const eventBuffer = 64

// Run drives the game on screen until the player quits or ctx is cancelled.
// One goroutine pumps terminal events while the tick loop steps, draws and
// applies them. Run owns screen and finalises it before returning.
func (g *Game) Run(ctx context.Context, screen tcell.Screen) error {
	screen.EnableMouse()
	g.renderer = render.NewRenderer(screen, g.cfg.Render.UnitsPerRow)
	// Mouse cells map through the camera that Draw keeps in sync.
	g.tracker.SetPointerMapper(g.renderer.Camera().ScreenToWorld)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	grp, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, eventBuffer)

	grp.Go(func() error {
		// PollEvent returns nil once the screen is finalised.
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	grp.Go(func() error {
		defer screen.Fini()
		defer cancel()
		return g.loop(gctx, events)
	})

	if err := grp.Wait(); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.sess.Log.Info("game loop stopped", "reason", context.Cause(ctx))
			return nil
		case ev := <-events:
			if g.HandleEvent(ev) {
				g.sess.Log.Info("player quit")
				return nil
			}
		case now := <-ticker.C:
			if err := g.Step(now); err != nil {
				return err
			}
			g.Draw()
		}
	}
}
