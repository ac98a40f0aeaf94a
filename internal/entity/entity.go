// Package entity provides the combat participants and the arena that owns them.
package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ID identifies a participant for the lifetime of a session.
type ID uint16

// Kind represents which side a participant fights on.
type Kind int

const (
	KindHero Kind = iota
	KindEnemy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHero:
		return "Hero"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Default value for every stat of a freshly created participant.
const DefaultStat = 15

// Stats holds a participant's attributes.
type Stats struct {
	PAtt  int // Physical attack
	MAtt  int // Magical attack
	PDef  int // Physical defense
	MDef  int // Magical defense
	HP    int // Current hit points
	MaxHP int // Maximum hit points
	Speed int // Turn ordering key, lower acts first
}

// DefaultStats returns stats with every attribute set to DefaultStat.
func DefaultStats() Stats {
	return Stats{
		PAtt:  DefaultStat,
		MAtt:  DefaultStat,
		PDef:  DefaultStat,
		MDef:  DefaultStat,
		HP:    DefaultStat,
		MaxHP: DefaultStat,
		Speed: DefaultStat,
	}
}

// Entity is a hero or enemy taking part in an encounter.
type Entity struct {
	ID    ID          // Assigned by the Arena
	Kind  Kind        // Hero or enemy
	Name  string      // Display name (e.g., "142. Goblin")
	Glyph rune        // Display symbol
	Color tcell.Color // Display color
	Stats Stats
}

// New creates an entity with default stats. The ID is assigned when it is
// added to an Arena.
func New(kind Kind, name string) *Entity {
	glyph := 'H'
	if kind == KindEnemy {
		glyph = 'E'
	}
	return &Entity{
		Kind:  kind,
		Name:  name,
		Glyph: glyph,
		Color: tcell.ColorWhite,
		Stats: DefaultStats(),
	}
}

// IsAlive returns true if the entity has HP remaining.
func (e *Entity) IsAlive() bool { return e.Stats.HP > 0 }

// Speed returns the entity's ordering key.
func (e *Entity) Speed() int { return e.Stats.Speed }

// Label returns the name followed by current HP, as shown in the roster panels.
func (e *Entity) Label() string {
	return fmt.Sprintf("%s (%d♥)", e.Name, e.Stats.HP)
}
