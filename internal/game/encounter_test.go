package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/event"
	"github.com/samdwyer/termquest/internal/gamedata"
	"github.com/samdwyer/termquest/internal/logging"
	"github.com/samdwyer/termquest/internal/ui"
)

// newTestArena adds one hero per speed, named A, B, C...
func newTestArena(t *testing.T, speeds ...int) *entity.Arena {
	t.Helper()
	a := entity.NewArena()
	for i, speed := range speeds {
		e := entity.New(entity.KindHero, string(rune('A'+i)))
		e.Stats.Speed = speed
		_, err := a.Add(e)
		require.NoError(t, err)
	}
	return a
}

func newTestEncounter(t *testing.T, turnEvery int, speeds ...int) *Encounter {
	t.Helper()
	e, err := NewEncounter(newTestArena(t, speeds...), turnEvery, nil)
	require.NoError(t, err)
	return e
}

func key(code event.KeyCode) event.Event {
	return event.Key(event.KeyInfo{Code: code})
}

func TestNewEncounterNeedsParticipants(t *testing.T) {
	_, err := NewEncounter(entity.NewArena(), 3, nil)
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestEncounterAdvancesEveryTurnEveryTicks(t *testing.T) {
	e := newTestEncounter(t, 3, 5, 1, 9)
	c := NewContext(nil, nil)

	first, ok := e.Scheduler().CurrentTurn()
	require.True(t, ok)
	assert.Equal(t, entity.ID(2), first)

	e.Update(c, event.Tick())
	e.Update(c, event.Tick())
	id, _ := e.Scheduler().CurrentTurn()
	assert.Equal(t, first, id, "turn moved before the cadence elapsed")
	assert.Empty(t, e.Log())

	e.Update(c, event.Tick())
	id, _ = e.Scheduler().CurrentTurn()
	assert.Equal(t, entity.ID(1), id)
	assert.Equal(t, []string{"Turn: A"}, e.Log())
}

func TestEncounterTickPicksUpSpeedChanges(t *testing.T) {
	arena := newTestArena(t, 5, 1, 9)
	e, err := NewEncounter(arena, 1, nil)
	require.NoError(t, err)
	c := NewContext(nil, nil)

	// Finish round one: B, A, C.
	for i := 0; i < 3; i++ {
		e.Update(c, event.Tick())
	}
	require.Equal(t, 2, e.Scheduler().Round())

	require.True(t, arena.SetSpeed(3, 0))
	e.Update(c, event.Tick())
	e.Update(c, event.Tick())
	e.Update(c, event.Tick())

	id, _ := e.Scheduler().CurrentTurn()
	assert.Equal(t, entity.ID(3), id, "C is fastest in round three")
}

func TestEncounterQuitKeys(t *testing.T) {
	for _, ev := range []event.Event{event.Rune('q'), key(event.KeyEscape), key(event.KeyCtrlC)} {
		e := newTestEncounter(t, 1, 1)
		c := NewContext(nil, nil)
		e.Update(c, ev)
		assert.True(t, c.ShouldQuit(), "%v should quit", ev)
	}
}

func TestEncounterTypingCommand(t *testing.T) {
	e := newTestEncounter(t, 1, 1)
	c := NewContext(nil, nil)

	e.Update(c, key(event.KeyDown))
	e.Update(c, key(event.KeyDown))
	require.Equal(t, ui.PanelCommand, e.Focus())

	e.Update(c, key(event.KeyEnter))
	for _, r := range "quick" {
		e.Update(c, event.Rune(r))
	}
	assert.False(t, c.ShouldQuit(), "q while typing is text")

	e.Update(c, key(event.KeyBackspace))
	e.Update(c, key(event.KeyEnter))
	assert.Equal(t, []string{"> quic"}, e.Log())

	e.Update(c, event.Rune('j'))
	assert.Equal(t, ui.PanelCommand, e.Focus(), "hjkl are text while typing")

	e.Update(c, key(event.KeyTab))
	e.Update(c, event.Rune('k'))
	assert.Equal(t, ui.PanelLog, e.Focus())
	assert.Equal(t, "j", e.View(nil).Command)
}

func TestEncounterTurnCursor(t *testing.T) {
	e := newTestEncounter(t, 1, 1, 2, 3)
	c := NewContext(nil, nil)

	e.Update(c, event.Rune('l'))
	e.Update(c, event.Rune('l'))
	require.Equal(t, ui.PanelTurn, e.Focus())

	e.Update(c, event.Rune('j'))
	assert.Equal(t, ui.PanelLog, e.Focus(), "down navigates until the panel is entered")

	e.Update(c, event.Rune('k'))
	e.Update(c, event.Rune('l'))
	e.Update(c, event.Rune('l'))
	e.Update(c, key(event.KeyEnter))
	e.Update(c, event.Rune('j'))
	e.Update(c, event.Rune('j'))
	assert.Equal(t, ui.PanelTurn, e.Focus())
	assert.Equal(t, 2, e.Scheduler().Cursor())

	e.Update(c, key(event.KeyUp))
	assert.Equal(t, 1, e.Scheduler().Cursor())

	v := e.View(nil)
	assert.True(t, v.Entered)
	assert.Equal(t, 1, v.Turn.Cursor)
}

func TestEncounterView(t *testing.T) {
	arena := entity.NewArena()
	_, err := arena.Add(entity.New(entity.KindHero, "Knight"))
	require.NoError(t, err)
	_, err = arena.Add(entity.New(entity.KindEnemy, "Goblin"))
	require.NoError(t, err)

	e, err := NewEncounter(arena, 1, nil)
	require.NoError(t, err)

	v := e.View([]string{"debug"})
	assert.Equal(t, []string{"Knight (15♥)"}, v.Heroes)
	assert.Equal(t, []string{"Goblin (15♥)"}, v.Enemies)
	assert.Equal(t, []string{"Knight", "Goblin", "Knight", "Goblin"}, v.Turn.Lines)
	assert.Equal(t, 2, v.Turn.Current)
	assert.Equal(t, 1, v.Turn.Round)
	assert.Equal(t, ui.PanelHeroes, v.Focus)
	assert.Equal(t, []string{"debug"}, v.Debug)
}

func TestEncounterLogIsCapped(t *testing.T) {
	e := newTestEncounter(t, 1, 1)
	c := NewContext(nil, nil)
	for i := 0; i < maxLogLines+10; i++ {
		e.Update(c, event.Tick())
	}
	assert.Len(t, e.Log(), maxLogLines)
}

func TestSpawnEncounterRecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	defer otel.SetTracerProvider(prev)

	ring := logging.NewRing(logging.DebugLines)
	logger, err := logging.New(t.TempDir()+"/test.log", "info", ring)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	e, err := spawnEncounter(context.Background(),
		gamedata.MustLoadHeroRegistry(), gamedata.MustLoadEnemyRegistry(), 2, 3, 1, rng, logger)
	require.NoError(t, err)
	assert.Len(t, e.View(nil).Heroes, 2)
	assert.Len(t, e.View(nil).Enemies, 3)

	c := NewContext(logger, ring)
	for i := 0; i < 5; i++ {
		e.Update(c, event.Tick())
	}

	var names []string
	for _, s := range sr.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"turn.rollover", "encounter.start", "turn.rollover"}, names)
	assert.Equal(t, 2, e.Scheduler().Round())
	assert.Contains(t, c.DebugLines()[len(c.DebugLines())-1], "INFO turn")
}
