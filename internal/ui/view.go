package ui

// Panel identifies a focusable panel of the in-game screen.
type Panel int

const (
	PanelHeroes Panel = iota
	PanelEnemies
	PanelTurn
	PanelLog
	PanelCommand
)

// String returns the panel name.
func (p Panel) String() string {
	switch p {
	case PanelHeroes:
		return "heroes"
	case PanelEnemies:
		return "enemies"
	case PanelTurn:
		return "turn"
	case PanelLog:
		return "log"
	case PanelCommand:
		return "command"
	default:
		return "unknown"
	}
}

// TurnView is the content of the turn panel.
type TurnView struct {
	Lines   []string // Round order followed by the next-round roster
	Current int      // Number of leading lines belonging to the round in progress
	Cursor  int      // Selected line
	Round   int
}

// GameView is everything the in-game screen draws.
type GameView struct {
	Heroes  []string
	Enemies []string
	Turn    TurnView
	Log     []string
	Command string
	Typing  bool  // Command box is accepting input
	Focus   Panel // Highlighted panel
	Entered bool  // Focused panel has been entered and shows its cursor
	Debug   []string
}
