package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindHero, "Hero"},
		{KindEnemy, "Enemy"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestNewEntityDefaults(t *testing.T) {
	e := New(KindEnemy, "Goblin")

	assert.Equal(t, 'E', e.Glyph)
	assert.Equal(t, DefaultStats(), e.Stats)
	assert.True(t, e.IsAlive())
	assert.Equal(t, "Goblin (15♥)", e.Label())
}

func TestArenaAssignsIncreasingIDs(t *testing.T) {
	a := NewArena()

	first, err := a.Add(New(KindHero, "a"))
	require.NoError(t, err)
	second, err := a.Add(New(KindHero, "b"))
	require.NoError(t, err)

	assert.Equal(t, ID(1), first)
	assert.Equal(t, ID(2), second)
	assert.Equal(t, first, a.Get(first).ID)
}

func TestArenaNeverReusesRemovedIDs(t *testing.T) {
	a := NewArena()
	id, err := a.Add(New(KindHero, "a"))
	require.NoError(t, err)

	a.Remove(id)
	assert.Nil(t, a.Get(id))
	assert.Equal(t, 0, a.Len())

	next, err := a.Add(New(KindHero, "b"))
	require.NoError(t, err)
	assert.NotEqual(t, id, next)
}

func TestArenaExhaustion(t *testing.T) {
	a := NewArena()
	a.next = math.MaxUint16

	id, err := a.Add(New(KindEnemy, "last"))
	require.NoError(t, err)
	assert.Equal(t, ID(math.MaxUint16), id)

	_, err = a.Add(New(KindEnemy, "overflow"))
	assert.ErrorIs(t, err, ErrArenaFull)
}

func TestArenaSpeed(t *testing.T) {
	a := NewArena()
	id, err := a.Add(New(KindHero, "a"))
	require.NoError(t, err)

	speed, ok := a.Speed(id)
	require.True(t, ok)
	assert.Equal(t, DefaultStat, speed)

	require.True(t, a.SetSpeed(id, 3))
	speed, _ = a.Speed(id)
	assert.Equal(t, 3, speed)

	assert.False(t, a.SetSpeed(ID(42), 1))
	_, ok = a.Speed(ID(42))
	assert.False(t, ok)
}

func TestArenaListsByKind(t *testing.T) {
	a := NewArena()
	for _, e := range []*Entity{
		New(KindHero, "h1"),
		New(KindEnemy, "e1"),
		New(KindHero, "h2"),
	} {
		_, err := a.Add(e)
		require.NoError(t, err)
	}

	heroes := a.Heroes()
	require.Len(t, heroes, 2)
	assert.Equal(t, "h1", heroes[0].Name)
	assert.Equal(t, "h2", heroes[1].Name)

	enemies := a.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, "e1", enemies[0].Name)

	assert.Equal(t, []ID{1, 2, 3}, a.IDs())
}
