// Package game provides the main game loop and state management.
package game

import (
	"github.com/samdwyer/termquest/internal/event"
	"github.com/samdwyer/termquest/internal/ui"
)

// State represents which screen the game shows.
type State int

const (
	// StateWelcome is the title screen shown at startup.
	StateWelcome State = iota
	// StateInGame is the encounter screen with the turn order.
	StateInGame
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateInGame:
		return "ingame"
	default:
		return "unknown"
	}
}

// transition returns the state an event leads to. The boolean is false when
// the event does not change the state.
func transition(current State, ev event.Event) (State, bool) {
	switch current {
	case StateWelcome:
		if ev.Type == event.TypeKey && ev.Key.Code == event.KeyEnter {
			return StateInGame, true
		}
	}
	return current, false
}

// direction is a navigation move between panels.
type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// navigate returns the panel reached by moving from p in direction d.
// Moves that lead nowhere keep p.
//
//	Heroes | Enemies | Turn
//	         Log
//	       Command
func navigate(p ui.Panel, d direction) ui.Panel {
	switch d {
	case dirUp:
		switch p {
		case ui.PanelCommand:
			return ui.PanelLog
		case ui.PanelLog:
			return ui.PanelHeroes
		}
	case dirDown:
		switch p {
		case ui.PanelLog:
			return ui.PanelCommand
		case ui.PanelHeroes, ui.PanelEnemies, ui.PanelTurn:
			return ui.PanelLog
		}
	case dirRight:
		switch p {
		case ui.PanelHeroes:
			return ui.PanelEnemies
		case ui.PanelEnemies:
			return ui.PanelTurn
		}
	case dirLeft:
		switch p {
		case ui.PanelEnemies:
			return ui.PanelHeroes
		case ui.PanelTurn:
			return ui.PanelEnemies
		}
	}
	return p
}

// directionOf maps arrow keys and hjkl to a direction.
func directionOf(k event.KeyInfo) (direction, bool) {
	switch k.Code {
	case event.KeyUp:
		return dirUp, true
	case event.KeyDown:
		return dirDown, true
	case event.KeyLeft:
		return dirLeft, true
	case event.KeyRight:
		return dirRight, true
	case event.KeyRune:
		switch k.Rune {
		case 'k':
			return dirUp, true
		case 'j':
			return dirDown, true
		case 'h':
			return dirLeft, true
		case 'l':
			return dirRight, true
		}
	}
	return 0, false
}
