package gamedata

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/termquest/internal/entity"
)

// Registry holds archetypes of one kind and spawns participants from them.
type Registry struct {
	kind        entity.Kind
	defs        []ArchetypeDef
	totalWeight int
}

// NewRegistry creates a registry of the given kind.
func NewRegistry(kind entity.Kind, defs []ArchetypeDef) *Registry {
	totalWeight := 0
	for _, d := range defs {
		totalWeight += d.SpawnWeight
	}
	return &Registry{
		kind:        kind,
		defs:        defs,
		totalWeight: totalWeight,
	}
}

// LoadHeroRegistry creates a registry from the embedded heroes.json.
func LoadHeroRegistry() (*Registry, error) {
	return loadRegistry(entity.KindHero, "heroes.json", LoadHeroes)
}

// LoadEnemyRegistry creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*Registry, error) {
	return loadRegistry(entity.KindEnemy, "enemies.json", LoadEnemies)
}

// MustLoadEnemyRegistry loads the enemy registry, panicking on error.
func MustLoadEnemyRegistry() *Registry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// MustLoadHeroRegistry loads the hero registry, panicking on error.
func MustLoadHeroRegistry() *Registry {
	registry, err := LoadHeroRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

func loadRegistry(kind entity.Kind, filename string, load func() ([]ArchetypeDef, error)) (*Registry, error) {
	defs, err := load()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("no archetypes loaded from %s", filename)
	}
	return NewRegistry(kind, defs), nil
}

// SpawnRandom selects a random archetype using weighted probability.
// Archetypes with higher spawnWeight are more likely to be selected.
func (r *Registry) SpawnRandom(rng *rand.Rand) *ArchetypeDef {
	if r.totalWeight <= 0 || len(r.defs) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	cumulative := 0
	for i := range r.defs {
		cumulative += r.defs[i].SpawnWeight
		if roll < cumulative {
			return &r.defs[i]
		}
	}
	return &r.defs[0]
}

// Populate spawns n entities from weighted random archetypes into the arena
// and returns their IDs in spawn order.
func (r *Registry) Populate(arena *entity.Arena, n int, rng *rand.Rand) ([]entity.ID, error) {
	ids := make([]entity.ID, 0, n)
	for i := 0; i < n; i++ {
		def := r.SpawnRandom(rng)
		if def == nil {
			return ids, fmt.Errorf("registry has no spawnable %s archetypes", r.kind)
		}
		id, err := arena.Add(def.Spawn(r.kind, rng))
		if err != nil {
			return ids, fmt.Errorf("spawn %s: %w", def.ID, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetByID returns the archetype with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *ArchetypeDef {
	for i := range r.defs {
		if r.defs[i].ID == id {
			return &r.defs[i]
		}
	}
	return nil
}

// All returns all archetypes.
func (r *Registry) All() []ArchetypeDef {
	return r.defs
}

// Count returns the number of archetypes in the registry.
func (r *Registry) Count() int {
	return len(r.defs)
}
