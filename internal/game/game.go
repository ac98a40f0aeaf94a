package game

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/termquest/internal/config"
	"github.com/samdwyer/termquest/internal/event"
	"github.com/samdwyer/termquest/internal/gamedata"
	"github.com/samdwyer/termquest/internal/logging"
	"github.com/samdwyer/termquest/internal/telemetry"
	"github.com/samdwyer/termquest/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg        config.Config
	screen     *ui.Screen
	renderer   *ui.Renderer
	queue      *event.Queue
	source     *event.Source
	dispatcher *event.Dispatcher
	ctx        *Context
	state      State
	encounter  *Encounter
	heroes     *gamedata.Registry
	enemies    *gamedata.Registry
	rng        *rand.Rand
}

// New creates a new game instance drawing to the terminal.
func New(cfg config.Config, logger *zap.Logger, debug *logging.Ring) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(screen, cfg, logger, debug)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

func newGame(screen *ui.Screen, cfg config.Config, logger *zap.Logger, debug *logging.Ring) (*Game, error) {
	heroes, err := gamedata.LoadHeroRegistry()
	if err != nil {
		return nil, err
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}

	c := NewContext(logger, debug)
	queue := event.NewQueue()
	return &Game{
		cfg:        cfg,
		screen:     screen,
		renderer:   ui.NewRenderer(screen),
		queue:      queue,
		source:     event.NewSource(screen, queue, cfg.TickInterval(), c.Logger()),
		dispatcher: event.NewDispatcher(queue, cfg.Policy()),
		ctx:        c,
		state:      StateWelcome,
		heroes:     heroes,
		enemies:    enemies,
		rng:        rand.New(rand.NewSource(cfg.Seed64())),
	}, nil
}

// Run executes the main game loop until the player quits or ctx is
// cancelled. The event source runs alongside the loop and both stop
// together.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Float64("game.tick_rate", g.cfg.TickRate),
		attribute.Int64("game.poll_budget_ms", g.cfg.PollBudget.Milliseconds()),
		attribute.String("game.policy", g.cfg.Policy().String()),
	)
	initSpan.End()
	g.ctx.Logger().Info("game started", zap.Duration("tick", g.cfg.TickInterval()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return g.source.Run(ctx)
	})
	eg.Go(func() error {
		defer cancel()
		return g.loop(ctx)
	})
	err := eg.Wait()

	g.screen.Close()

	_, endSpan := tracer.Start(ctx, "game.end")
	endSpan.SetAttributes(attribute.String("game.state", g.state.String()))
	if g.encounter != nil {
		endSpan.SetAttributes(
			attribute.Int("game.rounds", g.encounter.scheduler.Round()),
			attribute.Int("game.ticks", g.encounter.ticks),
		)
	}
	if err != nil {
		endSpan.RecordError(err)
	}
	endSpan.End()

	return err
}

// loop renders, collects one event and applies it, until quit.
func (g *Game) loop(ctx context.Context) error {
	for !g.ctx.ShouldQuit() {
		g.render()

		ev, err := g.dispatcher.Poll(g.cfg.PollBudget)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("update loop: %w", err)
		}
		if err := g.handle(ctx, ev); err != nil {
			return err
		}
	}
	g.ctx.Logger().Info("game quit", zap.Stringer("state", g.state))
	return nil
}

// handle applies one event to the active screen.
func (g *Game) handle(ctx context.Context, ev event.Event) error {
	switch ev.Type {
	case event.TypeResize:
		g.screen.Sync()
		return nil
	case event.TypeKey, event.TypeMouse:
		g.ctx.Logger().Info("input", zap.Stringer("event", ev))
	}

	switch g.state {
	case StateWelcome:
		return g.updateWelcome(ctx, ev)
	case StateInGame:
		g.encounter.Update(g.ctx, ev)
	}
	return nil
}

func (g *Game) updateWelcome(ctx context.Context, ev event.Event) error {
	if ev.Type == event.TypeKey {
		switch {
		case ev.Key.Code == event.KeyEscape, ev.Key.Code == event.KeyCtrlC,
			ev.Key.Code == event.KeyRune && ev.Key.Rune == 'q':
			g.ctx.Quit()
			return nil
		}
	}
	if next, ok := transition(g.state, ev); ok {
		return g.enter(ctx, next)
	}
	return nil
}

// enter switches to the given state, building what it needs.
func (g *Game) enter(ctx context.Context, next State) error {
	if next == StateInGame {
		e, err := spawnEncounter(ctx, g.heroes, g.enemies,
			g.cfg.Heroes, g.cfg.Enemies, g.cfg.TurnEvery, g.rng, g.ctx.Logger())
		if err != nil {
			return fmt.Errorf("start encounter: %w", err)
		}
		g.encounter = e
	}
	g.ctx.Logger().Info("state changed", zap.Stringer("from", g.state), zap.Stringer("to", next))
	g.state = next
	return nil
}

func (g *Game) render() {
	switch g.state {
	case StateWelcome:
		g.renderer.RenderWelcome(g.ctx.DebugLines())
	case StateInGame:
		g.renderer.RenderGame(g.encounter.View(g.ctx.DebugLines()))
	}
}

// State returns the active screen.
func (g *Game) State() State {
	return g.state
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
