// Package event multiplexes terminal input and a fixed-rate clock into a
// single stream of events for the update loop.
package event

import "fmt"

// Type identifies which variant an Event holds.
type Type int

const (
	TypeTick Type = iota
	TypeKey
	TypeMouse
	TypeResize
)

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case TypeTick:
		return "tick"
	case TypeKey:
		return "key"
	case TypeMouse:
		return "mouse"
	case TypeResize:
		return "resize"
	default:
		return "unknown"
	}
}

// KeyKind distinguishes presses from repeats and releases. Only presses
// reach the update loop.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// Key codes for non-character keys. KeyRune means the Rune field holds
// the character.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlW
	KeyOther
)

var keyNames = map[KeyCode]string{
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyTab:       "Tab",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlW:     "Ctrl+W",
}

// String returns the key name.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "Rune"
	}
	return "Other"
}

// Modifier flags held during a key or mouse event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// KeyInfo describes a keyboard event.
type KeyInfo struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
	Kind KeyKind
}

// MouseInfo describes a mouse event.
type MouseInfo struct {
	X, Y    int
	Buttons uint16
	Mod     Modifier
}

// Event is one item of the stream. Exactly the field matching Type is
// meaningful. Events are plain values and are copied between goroutines.
type Event struct {
	Type   Type
	Key    KeyInfo
	Mouse  MouseInfo
	Width  int // Resize only
	Height int // Resize only
}

// Tick returns a clock event.
func Tick() Event {
	return Event{Type: TypeTick}
}

// Key returns a key event.
func Key(info KeyInfo) Event {
	return Event{Type: TypeKey, Key: info}
}

// Rune returns a key press event for a character.
func Rune(r rune) Event {
	return Key(KeyInfo{Code: KeyRune, Rune: r})
}

// Mouse returns a mouse event.
func Mouse(info MouseInfo) Event {
	return Event{Type: TypeMouse, Mouse: info}
}

// Resize returns a terminal resize event.
func Resize(width, height int) Event {
	return Event{Type: TypeResize, Width: width, Height: height}
}

// String formats the event for the debug log.
func (e Event) String() string {
	switch e.Type {
	case TypeKey:
		if e.Key.Code == KeyRune {
			return fmt.Sprintf("key %q", e.Key.Rune)
		}
		return "key " + e.Key.Code.String()
	case TypeMouse:
		return fmt.Sprintf("mouse %d,%d", e.Mouse.X, e.Mouse.Y)
	case TypeResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	default:
		return e.Type.String()
	}
}
