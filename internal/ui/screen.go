// Package ui provides terminal rendering and input using tcell.
package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termquest/internal/event"
)

// ErrScreenClosed is returned by PollInput after Close.
var ErrScreenClosed = errors.New("ui: screen closed")

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen

	pumpOnce  sync.Once
	closeOnce sync.Once
	events    chan tcell.Event // Fed by the pump goroutine, closed when tcell shuts down
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// NewSimulationScreen creates an initialized in-memory screen of the given
// size. The returned tcell.SimulationScreen injects input and exposes the
// drawn cells.
func NewSimulationScreen(width, height int) (*Screen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreen(sim)
	if err != nil {
		return nil, nil, err
	}
	sim.SetSize(width, height)
	return s, sim, nil
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.Clear()
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, 32),
	}, nil
}

// Close finalizes the screen and restores terminal state.
// Calling it again has no effect.
func (s *Screen) Close() {
	s.closeOnce.Do(s.screen.Fini)
}

// PollInput waits up to timeout for the next input event and translates it.
// Events with no event.Event equivalent are consumed and reported as no
// input. It satisfies event.Poller.
func (s *Screen) PollInput(ctx context.Context, timeout time.Duration) (event.Event, bool, error) {
	s.pumpOnce.Do(func() { go s.pump() })

	var raw tcell.Event
	var open bool
	if timeout <= 0 {
		select {
		case raw, open = <-s.events:
		default:
			return event.Event{}, false, nil
		}
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case raw, open = <-s.events:
		case <-timer.C:
			return event.Event{}, false, nil
		case <-ctx.Done():
			return event.Event{}, false, nil
		}
	}
	if !open {
		return event.Event{}, false, ErrScreenClosed
	}

	ev, ok := Translate(raw)
	return ev, ok, nil
}

// pump forwards tcell events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.events <- ev
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
