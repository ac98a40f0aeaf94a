package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/event"
	"github.com/samdwyer/termquest/internal/gamedata"
	"github.com/samdwyer/termquest/internal/telemetry"
	"github.com/samdwyer/termquest/internal/turn"
	"github.com/samdwyer/termquest/internal/ui"
)

const maxLogLines = 100

// ErrNoParticipants is returned when an encounter would start with nobody
// to take turns.
var ErrNoParticipants = errors.New("encounter has no participants")

// Encounter holds all state of the in-game screen.
type Encounter struct {
	arena     *entity.Arena
	scheduler *turn.Scheduler
	command   Command
	focus     ui.Panel
	entered   bool
	log       []string
	ticks     int
	turnEvery int
}

// NewEncounter starts an encounter between everyone in the arena. The turn
// advances once every turnEvery ticks.
func NewEncounter(arena *entity.Arena, turnEvery int, observer turn.Observer) (*Encounter, error) {
	ids := arena.IDs()
	if len(ids) == 0 {
		return nil, ErrNoParticipants
	}
	if turnEvery < 1 {
		turnEvery = 1
	}

	s := turn.NewScheduler(arena)
	if observer != nil {
		s.SetObserver(observer)
	}
	s.SetParticipants(ids)

	return &Encounter{
		arena:     arena,
		scheduler: s,
		focus:     ui.PanelHeroes,
		turnEvery: turnEvery,
	}, nil
}

// spawnEncounter fills a fresh arena from the registries and starts an
// encounter on it.
func spawnEncounter(ctx context.Context, heroes, enemies *gamedata.Registry, nHeroes, nEnemies, turnEvery int, rng *rand.Rand, logger *zap.Logger) (*Encounter, error) {
	_, span := telemetry.Tracer("encounter").Start(ctx, "encounter.start")
	defer span.End()

	arena := entity.NewArena()
	if _, err := heroes.Populate(arena, nHeroes, rng); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("spawn heroes: %w", err)
	}
	if _, err := enemies.Populate(arena, nEnemies, rng); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("spawn enemies: %w", err)
	}

	e, err := NewEncounter(arena, turnEvery, newRoundObserver(ctx, arena, logger))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("encounter.heroes", len(arena.Heroes())),
		attribute.Int("encounter.enemies", len(arena.Enemies())),
		attribute.Int("encounter.turn_every", e.turnEvery),
	)
	return e, nil
}

// Update applies one event to the encounter.
func (e *Encounter) Update(c *Context, ev event.Event) {
	switch ev.Type {
	case event.TypeTick:
		e.tick(c)
	case event.TypeKey:
		e.handleKey(c, ev.Key)
	}
}

// tick refreshes the ordering and hands the turn on every turnEvery ticks.
func (e *Encounter) tick(c *Context) {
	e.ticks++
	e.scheduler.RefreshOrdering()
	if e.ticks%e.turnEvery != 0 {
		return
	}

	id, ok := e.scheduler.Advance()
	if !ok {
		return
	}
	name := e.nameOf(id)
	e.pushLog("Turn: " + name)
	c.Logger().Info("turn",
		zap.String("actor", name),
		zap.Int("round", e.scheduler.Round()),
	)
}

func (e *Encounter) handleKey(c *Context, k event.KeyInfo) {
	switch k.Code {
	case event.KeyEscape, event.KeyCtrlC:
		c.Quit()
		return
	}

	if e.command.Typing() {
		e.handleTyping(c, k)
		return
	}

	switch {
	case k.Code == event.KeyRune && k.Rune == 'q':
		c.Quit()
	case k.Code == event.KeyEnter:
		e.enterPanel()
	case e.entered && e.focus == ui.PanelTurn && e.moveCursor(k):
	default:
		if d, ok := directionOf(k); ok {
			e.focus = navigate(e.focus, d)
			e.entered = false
		}
	}
}

func (e *Encounter) handleTyping(c *Context, k event.KeyInfo) {
	switch k.Code {
	case event.KeyEnter:
		text := e.command.Execute()
		if text == "" {
			return
		}
		e.pushLog("> " + text)
		c.Logger().Info("command", zap.String("text", text))
	case event.KeyTab:
		e.command.Leave()
	case event.KeyBackspace:
		e.command.Pop()
	case event.KeyCtrlW:
		e.command.PopWord()
	case event.KeyRune:
		e.command.Push(k.Rune)
	}
}

// enterPanel starts typing in the command box, or toggles the cursor of
// any other panel.
func (e *Encounter) enterPanel() {
	if e.focus == ui.PanelCommand {
		e.command.Enter()
		return
	}
	e.entered = !e.entered
}

// moveCursor handles up and down inside the turn panel.
func (e *Encounter) moveCursor(k event.KeyInfo) bool {
	d, ok := directionOf(k)
	if !ok {
		return false
	}
	switch d {
	case dirUp:
		e.scheduler.MoveCursor(-1)
	case dirDown:
		e.scheduler.MoveCursor(1)
	default:
		return false
	}
	return true
}

func (e *Encounter) pushLog(line string) {
	e.log = append(e.log, line)
	if len(e.log) > maxLogLines {
		e.log = e.log[len(e.log)-maxLogLines:]
	}
}

func (e *Encounter) nameOf(id entity.ID) string {
	if ent := e.arena.Get(id); ent != nil {
		return ent.Name
	}
	return fmt.Sprintf("#%d", id)
}

// Focus returns the highlighted panel.
func (e *Encounter) Focus() ui.Panel { return e.focus }

// Scheduler returns the turn scheduler.
func (e *Encounter) Scheduler() *turn.Scheduler { return e.scheduler }

// Log returns the lines shown in the log panel.
func (e *Encounter) Log() []string { return e.log }

// View builds what the in-game screen draws.
func (e *Encounter) View(debug []string) ui.GameView {
	entries := e.scheduler.Entries()
	lines := make([]string, len(entries))
	for i, id := range entries {
		lines[i] = e.nameOf(id)
	}

	return ui.GameView{
		Heroes:  labels(e.arena.Heroes()),
		Enemies: labels(e.arena.Enemies()),
		Turn: ui.TurnView{
			Lines:   lines,
			Current: len(e.scheduler.RoundOrder()),
			Cursor:  e.scheduler.Cursor(),
			Round:   e.scheduler.Round(),
		},
		Log:     e.log,
		Command: e.command.Content(),
		Typing:  e.command.Typing(),
		Focus:   e.focus,
		Entered: e.entered,
		Debug:   debug,
	}
}

func labels(ents []*entity.Entity) []string {
	out := make([]string, len(ents))
	for i, ent := range ents {
		out[i] = ent.Label()
	}
	return out
}
