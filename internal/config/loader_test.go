package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unitsYAML = `units:
  - {id: h1, name: Spear Levies, faction: humans, type: Light, strength: 3, range: 0, cost: 2}
  - {id: o1, name: Goblins, faction: orcs, type: light, cost: 4}
  - {id: n1, name: Giant, faction: neutral, type: heavy, cost: 6}
`

const factionsYAML = `factions:
  - {code: humans, name: Humans}
  - {code: orcs}
  - {code: neutral, name: Neutral}
`

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, "cfg/"+name, []byte(body), 0o644))
	}
	return fs
}

func TestLoadAll(t *testing.T) {
	fs := memFS(t, map[string]string{"units.yaml": unitsYAML, "factions.yaml": factionsYAML})
	cat, err := LoadAll(fs, "cfg")
	require.NoError(t, err)

	require.Len(t, cat.Units.Units, 3)
	h1 := cat.Units.Units[0]
	assert.Equal(t, "light", h1.Type)
	assert.Equal(t, 3, h1.Strength)
	assert.Equal(t, 2, h1.Cost)
	assert.Equal(t, DefaultExclude, cat.Sim.Exclude)

	var codes []string
	for _, f := range cat.Playable() {
		codes = append(codes, f.Code)
	}
	assert.Equal(t, []string{"humans", "orcs"}, codes)

	orcs, ok := cat.Faction("orcs")
	require.True(t, ok)
	assert.Equal(t, "orcs", orcs.DisplayName())
	_, ok = cat.Faction("dwarves")
	assert.False(t, ok)
}

func TestLoadAllSimConfig(t *testing.T) {
	fs := memFS(t, map[string]string{
		"units.yaml":    unitsYAML,
		"factions.yaml": factionsYAML,
		"sim.yaml":      "rules: {max_turns: 50}\nroster: {expansion: heroes}\nexclude: []\n",
	})
	cat, err := LoadAll(fs, "cfg")
	require.NoError(t, err)
	assert.Equal(t, 50, cat.Sim.Rules.MaxTurns)
	assert.Equal(t, "heroes", cat.Sim.Roster.Expansion)
	assert.Empty(t, cat.Sim.Exclude)
	assert.Len(t, cat.Playable(), 3)
}

func TestLoadAllAcceptsJSON(t *testing.T) {
	fs := memFS(t, map[string]string{
		"units.yaml":    `{"units": [{"id": "h1", "name": "Levies", "faction": "humans"}]}`,
		"factions.yaml": `{"factions": [{"code": "humans"}]}`,
	})
	cat, err := LoadAll(fs, "cfg")
	require.NoError(t, err)
	assert.Equal(t, "h1", cat.Units.Units[0].ID)
}

func TestLoadAllRejects(t *testing.T) {
	cases := []struct {
		name     string
		units    string
		factions string
		sim      string
	}{
		{"unknown class", "units:\n  - {id: x, name: X, faction: humans, type: huge}\n", factionsYAML, ""},
		{"missing id", "units:\n  - {name: X, faction: humans}\n", factionsYAML, ""},
		{"negative cost", "units:\n  - {id: x, name: X, faction: humans, cost: -1}\n", factionsYAML, ""},
		{"unknown faction", "units:\n  - {id: x, name: X, faction: dwarves}\n", factionsYAML, ""},
		{"duplicate faction", unitsYAML, factionsYAML + "  - {code: orcs}\n", ""},
		{"empty catalog", "units: []\n", factionsYAML, ""},
		{"tiny grid", unitsYAML, factionsYAML, "grid: {width: 1, height: 9}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			files := map[string]string{"units.yaml": tc.units, "factions.yaml": tc.factions}
			if tc.sim != "" {
				files["sim.yaml"] = tc.sim
			}
			_, err := LoadAll(memFS(t, files), "cfg")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	fs := memFS(t, map[string]string{"units.yaml": unitsYAML})
	_, err := LoadAll(fs, "cfg")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadAllBadYAML(t *testing.T) {
	fs := memFS(t, map[string]string{"units.yaml": "units: [", "factions.yaml": factionsYAML})
	_, err := LoadAll(fs, "cfg")
	assert.ErrorContains(t, err, "decode")
}

func TestLoadAllBundledAssets(t *testing.T) {
	cat, err := LoadAll(afero.NewOsFs(), "../../assets")
	require.NoError(t, err)
	assert.Len(t, cat.Playable(), 4)
}
