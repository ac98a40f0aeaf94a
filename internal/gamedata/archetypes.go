package gamedata

import (
	"math/rand"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termquest/internal/entity"
)

// ArchetypeDef defines a hero or enemy template loaded from JSON.
type ArchetypeDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Color name or hex code
	HP          int    `json:"hp"`          // Base hit points
	PAtt        int    `json:"pAtt"`        // Physical attack
	MAtt        int    `json:"mAtt"`        // Magical attack
	PDef        int    `json:"pDef"`        // Physical defense
	MDef        int    `json:"mDef"`        // Magical defense
	SpeedMin    int    `json:"speedMin"`    // Lowest rolled speed (inclusive)
	SpeedMax    int    `json:"speedMax"`    // Highest rolled speed (inclusive)
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ArchetypeDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the archetype color, white if it cannot be parsed.
func (d *ArchetypeDef) TCellColor() tcell.Color {
	color, err := ParseColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// RollSpeed picks a speed in [SpeedMin, SpeedMax].
func (d *ArchetypeDef) RollSpeed(rng *rand.Rand) int {
	if d.SpeedMax <= d.SpeedMin {
		return d.SpeedMin
	}
	return d.SpeedMin + rng.Intn(d.SpeedMax-d.SpeedMin+1)
}

// Spawn creates an entity of the given kind from the archetype with a
// freshly rolled speed. The speed prefixes the name, so participants of the
// same archetype can be told apart.
func (d *ArchetypeDef) Spawn(kind entity.Kind, rng *rand.Rand) *entity.Entity {
	speed := d.RollSpeed(rng)
	e := entity.New(kind, strconv.Itoa(speed)+". "+d.Name)
	e.Glyph = d.GlyphRune()
	e.Color = d.TCellColor()
	e.Stats = entity.Stats{
		PAtt:  orDefault(d.PAtt),
		MAtt:  orDefault(d.MAtt),
		PDef:  orDefault(d.PDef),
		MDef:  orDefault(d.MDef),
		HP:    orDefault(d.HP),
		MaxHP: orDefault(d.HP),
		Speed: speed,
	}
	return e
}

func orDefault(v int) int {
	if v == 0 {
		return entity.DefaultStat
	}
	return v
}

// HeroesFile represents the structure of heroes.json.
type HeroesFile struct {
	Heroes []ArchetypeDef `json:"heroes"`
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []ArchetypeDef `json:"enemies"`
}

// LoadHeroes loads hero archetypes from the embedded heroes.json file.
func LoadHeroes() ([]ArchetypeDef, error) {
	file, err := Load[HeroesFile]("heroes.json")
	if err != nil {
		return nil, err
	}
	return file.Heroes, nil
}

// LoadEnemies loads enemy archetypes from the embedded enemies.json file.
func LoadEnemies() ([]ArchetypeDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
