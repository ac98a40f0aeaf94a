package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termquest/internal/event"
)

var keyCodes = map[tcell.Key]event.KeyCode{
	tcell.KeyEnter:     event.KeyEnter,
	tcell.KeyEscape:    event.KeyEscape,
	tcell.KeyBackspace: event.KeyBackspace,
	tcell.KeyDelete:    event.KeyDelete,
	tcell.KeyTab:       event.KeyTab,
	tcell.KeyUp:        event.KeyUp,
	tcell.KeyDown:      event.KeyDown,
	tcell.KeyLeft:      event.KeyLeft,
	tcell.KeyRight:     event.KeyRight,
	tcell.KeyCtrlC:     event.KeyCtrlC,
	tcell.KeyCtrlW:     event.KeyCtrlW,
}

func init() {
	// Aliased to KeyBackspace in some tcell releases.
	keyCodes[tcell.KeyBackspace2] = event.KeyBackspace
}

// Translate converts a tcell event into an event.Event. It reports false for
// events the game does not handle (focus, paste, interrupts).
//
// tcell only delivers key presses, so every key event has Kind KeyPress.
func Translate(ev tcell.Event) (event.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		info := event.KeyInfo{Mod: modifiers(ev.Modifiers()), Kind: event.KeyPress}
		if ev.Key() == tcell.KeyRune {
			info.Code = event.KeyRune
			info.Rune = ev.Rune()
			// Some terminals report control chords as a rune plus ModCtrl.
			if info.Mod&event.ModCtrl != 0 {
				switch info.Rune {
				case 'c', 'C':
					info.Code = event.KeyCtrlC
				case 'w', 'W':
					info.Code = event.KeyCtrlW
				}
			}
		} else if code, ok := keyCodes[ev.Key()]; ok {
			info.Code = code
		} else {
			info.Code = event.KeyOther
		}
		return event.Key(info), true
	case *tcell.EventMouse:
		x, y := ev.Position()
		return event.Mouse(event.MouseInfo{
			X:       x,
			Y:       y,
			Buttons: uint16(ev.Buttons()),
			Mod:     modifiers(ev.Modifiers()),
		}), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return event.Resize(w, h), true
	default:
		return event.Event{}, false
	}
}

func modifiers(m tcell.ModMask) event.Modifier {
	var mod event.Modifier
	if m&tcell.ModShift != 0 {
		mod |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= event.ModAlt
	}
	return mod
}
