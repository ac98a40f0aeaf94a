package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Colors shared by every panel.
var (
	Primary = tcell.ColorSilver
	Accent  = tcell.ColorGold
)

const (
	debugHeight   = 5 // Rows reserved for the debug panel, borders included
	commandHeight = 3
	maxTopHeight  = 9
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderWelcome draws the title screen.
func (r *Renderer) RenderWelcome(debug []string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	mainH := r.drawDebug(debug, w, h)

	style := tcell.StyleDefault.Foreground(Primary)
	title := "Welcome"
	r.drawText((w-len(title))/2, (mainH-1)/2, w, title, style)

	quit := "Press 'q' to close"
	cont := "Press 'enter' continue"
	r.drawText(0, mainH-1, w, quit, style)
	r.drawText(w-len(cont), mainH-1, w, cont, style)

	r.screen.Show()
}

// RenderGame draws the in-game screen.
func (r *Renderer) RenderGame(v GameView) {
	r.screen.Clear()
	w, h := r.screen.Size()
	mainH := r.drawDebug(v.Debug, w, h)

	topH := max(len(v.Heroes), len(v.Enemies)) + 2
	topH = min(max(topH, 3), maxTopHeight)
	col := w / 3

	r.drawList(0, 0, col, topH, " Heroes ", v.Heroes, r.panelStyle(v, PanelHeroes))
	r.drawList(col, 0, col, topH, " Enemies ", v.Enemies, r.panelStyle(v, PanelEnemies))
	r.drawTurn(2*col, 0, w-2*col, topH, v)

	logH := mainH - topH - commandHeight
	if logH >= 2 {
		lines := v.Log
		if inner := logH - 2; len(lines) > inner {
			lines = lines[len(lines)-inner:]
		}
		r.drawList(0, topH, w, logH, " Log ", lines, r.panelStyle(v, PanelLog))
	}
	r.drawCommand(0, mainH-commandHeight, w, v)

	r.screen.Show()
}

func (r *Renderer) panelStyle(v GameView, p Panel) tcell.Style {
	if v.Focus == p {
		return tcell.StyleDefault.Foreground(Accent)
	}
	return tcell.StyleDefault.Foreground(Primary)
}

// drawDebug draws the debug panel at the bottom and returns the height left
// above it.
func (r *Renderer) drawDebug(lines []string, w, h int) int {
	if h <= debugHeight+commandHeight {
		return h
	}
	r.drawList(0, h-debugHeight, w, debugHeight, " Debug ", lines, tcell.StyleDefault.Foreground(Primary))
	return h - debugHeight
}

func (r *Renderer) drawTurn(x, y, w, h int, v GameView) {
	style := r.panelStyle(v, PanelTurn)
	r.drawBox(x, y, w, h, fmt.Sprintf(" Turn %d ", v.Turn.Round), style)

	rows := h - 2
	offset := 0
	if v.Turn.Cursor >= rows {
		offset = v.Turn.Cursor - rows + 1
	}
	for row := 0; row < rows && offset+row < len(v.Turn.Lines); row++ {
		i := offset + row
		prefix := "  "
		lineStyle := style
		if i == 0 && v.Turn.Current > 0 {
			prefix = "> "
		}
		if i >= v.Turn.Current {
			lineStyle = lineStyle.Dim(true)
		}
		if v.Entered && v.Focus == PanelTurn && i == v.Turn.Cursor {
			lineStyle = lineStyle.Reverse(true)
		}
		r.drawText(x+1, y+1+row, w-2, prefix+v.Turn.Lines[i], lineStyle)
	}
}

func (r *Renderer) drawCommand(x, y, w int, v GameView) {
	style := r.panelStyle(v, PanelCommand)
	r.drawBox(x, y, w, commandHeight, " Command ", style)

	content := []rune(v.Command)
	room := w - 3
	if room < 1 {
		return
	}
	if len(content) >= room {
		content = content[len(content)-room+1:]
	}
	r.drawText(x+1, y+1, w-2, string(content), style)
	if v.Typing {
		r.screen.SetContent(x+1+len(content), y+1, ' ', style.Reverse(true))
	}
}

func (r *Renderer) drawList(x, y, w, h int, title string, lines []string, style tcell.Style) {
	r.drawBox(x, y, w, h, title, style)
	for i := 0; i < h-2 && i < len(lines); i++ {
		r.drawText(x+1, y+1+i, w-2, lines[i], style)
	}
}

// drawBox draws a bordered rectangle with a title on the top edge.
func (r *Renderer) drawBox(x, y, w, h int, title string, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for i := x + 1; i < x+w-1; i++ {
		r.screen.SetContent(i, y, tcell.RuneHLine, style)
		r.screen.SetContent(i, y+h-1, tcell.RuneHLine, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		r.screen.SetContent(x, j, tcell.RuneVLine, style)
		r.screen.SetContent(x+w-1, j, tcell.RuneVLine, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, style)
	r.drawText(x+1, y, w-2, title, style)
}

// drawText writes text starting at x, clipped to maxW cells.
func (r *Renderer) drawText(x, y, maxW int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= maxW {
			return
		}
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}
