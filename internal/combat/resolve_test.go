package combat

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexbalance/internal/hex"
)

// fixedRand rolls the same face every time and never reorders.
type fixedRand struct{ face Face }

func (r fixedRand) Intn(n int) int {
	if int(r.face) < n {
		return int(r.face)
	}
	return 0
}

func (fixedRand) Shuffle(int, func(i, j int)) {}

func testUnit(id string, owner Player, class Class, str, rng int, pos hex.Coord) *Unit {
	return &Unit{
		ID: id, Name: id, Class: class,
		MaxStrength: str, Strength: str, Movement: 2, Range: rng,
		Pos: pos, Deployed: true, Owner: owner,
	}
}

func TestHitTable(t *testing.T) {
	cases := []struct {
		class Class
		hits  []Face
	}{
		{Light, []Face{Sword, Circle, Magic}},
		{Medium, []Face{Sword, Triangle}},
		{Heavy, []Face{Sword, Square}},
		{Elite, []Face{Sword}},
	}
	for _, tc := range cases {
		t.Run(tc.class.String(), func(t *testing.T) {
			for f := Sword; f < faceCount; f++ {
				assert.Equal(t, slices.Contains(tc.hits, f), tc.class.HitBy(f), "face %s", f)
			}
			assert.False(t, tc.class.HitBy(Flag))
		})
	}
}

func TestDiceFor(t *testing.T) {
	cases := []struct {
		name          string
		str, rng, dst int
		want          int
	}{
		{"adjacent", 5, 3, 1, 5},
		{"ranged penalty", 5, 3, 2, 4},
		{"never below one", 1, 3, 3, 1},
		{"out of range", 5, 3, 4, 0},
		{"melee at two", 4, 1, 2, 0},
		{"dead attacker", 0, 3, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := testUnit("a", Player1, Medium, tc.str, tc.rng, hex.Coord{})
			assert.Equal(t, tc.want, DiceFor(u, tc.dst))
		})
	}
}

func TestResolveForcedCircle(t *testing.T) {
	att := testUnit("a", Player1, Medium, 4, 1, hex.Coord{Col: 2, Row: 4})
	light := testUnit("l", Player2, Light, 10, 1, hex.Coord{Col: 3, Row: 4})
	heavy := testUnit("h", Player2, Heavy, 10, 1, hex.Coord{Col: 3, Row: 4})

	hits, flags := Resolve(att, light, fixedRand{Circle})
	assert.Equal(t, 4, hits)
	assert.Zero(t, flags)
	assert.Equal(t, 6, light.Strength)

	hits, flags = Resolve(att, heavy, fixedRand{Circle})
	assert.Zero(t, hits)
	assert.Zero(t, flags)
	assert.Equal(t, 10, heavy.Strength)
}

func TestResolveCountsFlags(t *testing.T) {
	att := testUnit("a", Player1, Medium, 3, 1, hex.Coord{Col: 2, Row: 4})
	def := testUnit("d", Player2, Elite, 4, 1, hex.Coord{Col: 3, Row: 4})
	hits, flags := Resolve(att, def, fixedRand{Flag})
	assert.Zero(t, hits)
	assert.Equal(t, 3, flags)
	assert.Equal(t, 4, def.Strength)
}

func TestResolveOutOfRange(t *testing.T) {
	att := testUnit("a", Player1, Medium, 4, 1, hex.Coord{Col: 0, Row: 0})
	def := testUnit("d", Player2, Light, 4, 1, hex.Coord{Col: 6, Row: 6})
	hits, flags := Resolve(att, def, fixedRand{Sword})
	assert.Zero(t, hits)
	assert.Zero(t, flags)
	assert.Equal(t, 4, def.Strength)
}

func TestResolveFloorsStrength(t *testing.T) {
	att := testUnit("a", Player1, Medium, 4, 1, hex.Coord{Col: 2, Row: 4})
	def := testUnit("d", Player2, Heavy, 2, 1, hex.Coord{Col: 3, Row: 4})
	hits, _ := Resolve(att, def, fixedRand{Sword})
	assert.Equal(t, 4, hits)
	assert.Zero(t, def.Strength)
	assert.False(t, def.Alive())
}

func TestResolveRangedUsesOneDieLess(t *testing.T) {
	att := testUnit("a", Player1, Medium, 5, 3, hex.Coord{Col: 2, Row: 4})
	def := testUnit("d", Player2, Light, 10, 1, hex.Coord{Col: 4, Row: 4})
	require.Equal(t, 2, hex.Distance(att.Pos, def.Pos))
	hits, _ := Resolve(att, def, fixedRand{Sword})
	assert.Equal(t, 4, hits)
}

func TestResolveHitRates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const rolls = 60000
	rate := func(class Class) float64 {
		hits := 0
		for i := 0; i < rolls/6; i++ {
			att := testUnit("a", Player1, Medium, 6, 1, hex.Coord{Col: 2, Row: 4})
			def := testUnit("d", Player2, class, 100, 1, hex.Coord{Col: 3, Row: 4})
			h, _ := Resolve(att, def, rng)
			hits += h
		}
		return float64(hits) / rolls
	}
	assert.InDelta(t, 1.0/2, rate(Light), 0.02)
	assert.InDelta(t, 1.0/3, rate(Medium), 0.02)
	assert.InDelta(t, 1.0/3, rate(Heavy), 0.02)
	assert.InDelta(t, 1.0/6, rate(Elite), 0.02)
}
