package entity

import (
	"errors"
	"math"
)

// ErrArenaFull is returned when every ID has been handed out this session.
var ErrArenaFull = errors.New("arena: no free entity ids")

// Arena owns every participant of a session. Other components refer to
// entities by ID only and look them up here.
type Arena struct {
	entities map[ID]*Entity
	order    []ID // Insertion order, for stable listing
	next     ID
	spent    bool // Set once MaxUint16 has been handed out
}

// NewArena creates an empty arena. The first assigned ID is 1.
func NewArena() *Arena {
	return &Arena{
		entities: make(map[ID]*Entity),
		next:     1,
	}
}

// Add assigns the next ID to e and stores it. IDs are never reused within
// the arena, even after Remove.
func (a *Arena) Add(e *Entity) (ID, error) {
	if a.spent {
		return 0, ErrArenaFull
	}
	id := a.next
	if a.next == math.MaxUint16 {
		a.spent = true
	} else {
		a.next++
	}
	e.ID = id
	a.entities[id] = e
	a.order = append(a.order, id)
	return id, nil
}

// Get returns the entity with the given ID, or nil if not present.
func (a *Arena) Get(id ID) *Entity {
	return a.entities[id]
}

// Speed returns the current speed of the entity.
func (a *Arena) Speed(id ID) (int, bool) {
	e, ok := a.entities[id]
	if !ok {
		return 0, false
	}
	return e.Stats.Speed, true
}

// SetSpeed updates an entity's speed and reports whether it exists.
func (a *Arena) SetSpeed(id ID, speed int) bool {
	e, ok := a.entities[id]
	if !ok {
		return false
	}
	e.Stats.Speed = speed
	return true
}

// Remove deletes the entity from the arena.
func (a *Arena) Remove(id ID) {
	if _, ok := a.entities[id]; !ok {
		return
	}
	delete(a.entities, id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// IDs returns all entity IDs in insertion order.
func (a *Arena) IDs() []ID {
	ids := make([]ID, len(a.order))
	copy(ids, a.order)
	return ids
}

// Heroes returns the heroes in insertion order.
func (a *Arena) Heroes() []*Entity {
	return a.ofKind(KindHero)
}

// Enemies returns the enemies in insertion order.
func (a *Arena) Enemies() []*Entity {
	return a.ofKind(KindEnemy)
}

// Len returns the number of entities in the arena.
func (a *Arena) Len() int {
	return len(a.order)
}

func (a *Arena) ofKind(kind Kind) []*Entity {
	var result []*Entity
	for _, id := range a.order {
		if e := a.entities[id]; e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}
