package gamedata

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termquest/internal/entity"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 3 {
		t.Errorf("Expected 3 enemies, got %d", len(enemies))
	}

	expectedIDs := map[string]bool{"goblin": false, "orc": false, "skeleton": false}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestLoadHeroes(t *testing.T) {
	heroes, err := LoadHeroes()
	if err != nil {
		t.Fatalf("Failed to load heroes: %v", err)
	}

	for _, h := range heroes {
		if h.SpeedMax < h.SpeedMin {
			t.Errorf("Hero %q has speedMax %d below speedMin %d", h.ID, h.SpeedMax, h.SpeedMin)
		}
		if h.TCellColor() == tcell.ColorWhite {
			t.Errorf("Hero %q color %q did not parse", h.ID, h.Color)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 enemy types, got %d", registry.Count())
	}

	goblin := registry.GetByID("goblin")
	if goblin == nil {
		t.Error("Goblin not found by ID")
	} else if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}

	// Weighted spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a := registry.SpawnRandom(rng1).ID
		b := registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestEmptyRegistrySpawnsNothing(t *testing.T) {
	registry := NewRegistry(entity.KindEnemy, nil)

	if def := registry.SpawnRandom(rand.New(rand.NewSource(1))); def != nil {
		t.Errorf("SpawnRandom on empty registry = %v, want nil", def)
	}

	_, err := registry.Populate(entity.NewArena(), 1, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Error("Populate on empty registry should fail")
	}
}

func TestPopulate(t *testing.T) {
	registry := MustLoadHeroRegistry()
	arena := entity.NewArena()

	ids, err := registry.Populate(arena, 3, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	if len(ids) != 3 {
		t.Fatalf("Expected 3 ids, got %d", len(ids))
	}
	for _, id := range ids {
		e := arena.Get(id)
		if e == nil {
			t.Fatalf("Entity %d missing from arena", id)
		}
		if e.Kind != entity.KindHero {
			t.Errorf("Entity %d kind = %v, want Hero", id, e.Kind)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"gold", true},
		{"ForestGreen", true},
		{"invalid", false},
		{"#FFF", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestArchetypeSpawn(t *testing.T) {
	def := ArchetypeDef{
		ID:       "test",
		Name:     "Test Enemy",
		Glyph:    "T",
		Color:    "#FF0000",
		HP:       10,
		PAtt:     5,
		SpeedMin: 40,
		SpeedMax: 40,
	}

	e := def.Spawn(entity.KindEnemy, rand.New(rand.NewSource(1)))

	if e.Glyph != 'T' {
		t.Errorf("Expected glyph 'T', got %c", e.Glyph)
	}
	if e.Stats.Speed != 40 {
		t.Errorf("Expected speed 40, got %d", e.Stats.Speed)
	}
	if e.Stats.HP != 10 || e.Stats.MaxHP != 10 {
		t.Errorf("Expected HP 10/10, got %d/%d", e.Stats.HP, e.Stats.MaxHP)
	}
	if e.Stats.MDef != entity.DefaultStat {
		t.Errorf("Expected unset MDef to default to %d, got %d", entity.DefaultStat, e.Stats.MDef)
	}
	if !strings.HasPrefix(e.Name, "40. ") {
		t.Errorf("Expected name prefixed with speed, got %q", e.Name)
	}
	if e.Color != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red, got %v", e.Color)
	}
}

func TestRollSpeedStaysInRange(t *testing.T) {
	def := ArchetypeDef{SpeedMin: 10, SpeedMax: 12}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		if s := def.RollSpeed(rng); s < 10 || s > 12 {
			t.Fatalf("RollSpeed = %d, want within [10, 12]", s)
		}
	}
}
