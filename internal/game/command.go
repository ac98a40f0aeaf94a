package game

import "unicode"

// Command is the single-line text box at the bottom of the in-game screen.
// Edits are ignored unless the box is in typing mode.
type Command struct {
	content []rune
	typing  bool
}

// Push appends a character.
func (c *Command) Push(r rune) {
	if c.typing {
		c.content = append(c.content, r)
	}
}

// Pop deletes the last character.
func (c *Command) Pop() {
	if c.typing && len(c.content) > 0 {
		c.content = c.content[:len(c.content)-1]
	}
}

// PopWord deletes the last word along with anything after it, keeping the
// space that precedes it.
func (c *Command) PopWord() {
	if !c.typing {
		return
	}
	deletedLetter := false
	for len(c.content) > 0 {
		last := c.content[len(c.content)-1]
		if last == ' ' && deletedLetter {
			return
		}
		if unicode.IsLetter(last) {
			deletedLetter = true
		}
		c.content = c.content[:len(c.content)-1]
	}
}

// Execute returns the typed text and clears the box.
func (c *Command) Execute() string {
	text := string(c.content)
	c.content = c.content[:0]
	return text
}

// Enter starts typing mode.
func (c *Command) Enter() { c.typing = true }

// Leave stops typing mode. The text is kept.
func (c *Command) Leave() { c.typing = false }

// Typing reports whether the box accepts input.
func (c *Command) Typing() bool { return c.typing }

// Content returns the current text.
func (c *Command) Content() string { return string(c.content) }
