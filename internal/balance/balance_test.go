package balance

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexbalance/internal/combat"
	"hexbalance/internal/config"
)

func testCatalog() *config.Catalog {
	codes := []string{"humans", "elves", "orcs", "neutral"}
	var units []config.UnitDef
	var factions []config.Faction
	for _, f := range codes {
		units = append(units,
			config.UnitDef{ID: f + "1", Name: "Infantry", Faction: f, Type: "medium", Cost: 3},
			config.UnitDef{ID: f + "2", Name: "Archers", Faction: f, Type: "light", Range: 3, Cost: 4},
			config.UnitDef{ID: f + "3", Name: "Knights", Faction: f, Type: "heavy", Movement: 3, Cost: 5},
			config.UnitDef{ID: f + "h", Name: "Champion", Faction: f, Subtype: "hero", Expansion: "heroes", Cost: 6},
		)
		factions = append(factions, config.Faction{Code: f})
	}
	factions[0].Name = "Humans"
	return &config.Catalog{
		Units:    &config.UnitsConfig{Units: units},
		Factions: &config.FactionsConfig{Factions: factions},
		Sim:      &config.SimConfig{Exclude: config.DefaultExclude},
	}
}

func testDriver() *Driver {
	return NewDriver(testCatalog(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPairings(t *testing.T) {
	pairs := Pairings([]string{"a", "b", "c", "d"})
	require.Len(t, pairs, 6)
	assert.Equal(t, Pairing{A: "a", B: "b"}, pairs[0])
	assert.Equal(t, Pairing{A: "c", B: "d"}, pairs[5])
	for _, p := range pairs {
		assert.NotEqual(t, p.A, p.B)
	}
	assert.Empty(t, Pairings([]string{"a"}))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSpatial, m)
	m, err = ParseMode("Abstract")
	require.NoError(t, err)
	assert.Equal(t, ModeAbstract, m)
	_, err = ParseMode("hexless")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestDriverFactions(t *testing.T) {
	d := testDriver()

	codes, err := d.Factions(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"humans", "elves", "orcs"}, codes, "neutral is excluded")

	codes, err = d.Factions([]string{"orcs", "neutral", "orcs"})
	require.NoError(t, err)
	assert.Equal(t, []string{"orcs", "neutral"}, codes)

	_, err = d.Factions([]string{"humans", "dwarves"})
	assert.ErrorIs(t, err, ErrUnknownFaction)

	_, err = d.Factions([]string{"humans"})
	assert.ErrorIs(t, err, ErrNotEnoughFactions)
}

func TestRunAggregates(t *testing.T) {
	opts := DefaultOptions()
	opts.Games = 20
	opts.Workers = 4
	opts.Heroes = true
	sum, err := testDriver().Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 3*20, sum.Matches)
	assert.Equal(t, sum.Matches, sum.SeatWins[0]+sum.SeatWins[1]+sum.Draws)
	require.Len(t, sum.Factions, 3)

	games, wins := 0, 0
	for i, fs := range sum.Factions {
		assert.Equal(t, 40, fs.Games, fs.Faction)
		assert.Equal(t, fs.Games, fs.Wins+fs.Losses+fs.Draws, fs.Faction)
		vs := 0
		for _, n := range fs.WinsVs {
			vs += n
		}
		assert.Equal(t, fs.Wins, vs)
		if i > 0 {
			assert.GreaterOrEqual(t, sum.Factions[i-1].Wins, fs.Wins)
		}
		games += fs.Games
		wins += fs.Wins
	}
	assert.Equal(t, 2*sum.Matches, games)
	assert.Equal(t, sum.Matches-sum.Draws, wins)

	humans, ok := sum.Stats("humans")
	require.True(t, ok)
	assert.Equal(t, "Humans", humans.Name)

	require.NotNil(t, sum.Sample)
	assert.NotEmpty(t, sum.Sample.Events)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) *Summary {
		opts := DefaultOptions()
		opts.Games = 12
		opts.Seed = 77
		opts.Workers = workers
		sum, err := testDriver().Run(context.Background(), opts)
		require.NoError(t, err)
		return sum
	}
	a, b := run(1), run(6)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.SeatWins, b.SeatWins)
	assert.Equal(t, a.Draws, b.Draws)
	assert.Equal(t, a.Factions, b.Factions)
	assert.Equal(t, a.Sample.Outcome, b.Sample.Outcome)
}

func TestRunAbstractMode(t *testing.T) {
	opts := DefaultOptions()
	opts.Games = 10
	opts.Mode = ModeAbstract
	opts.Factions = []string{"humans", "orcs"}
	sum, err := testDriver().Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 10, sum.Matches)
	assert.Nil(t, sum.Sample)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := testDriver().Run(ctx, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sum)
	assert.Zero(t, sum.Matches)
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = "hexless"
	_, err := testDriver().Run(context.Background(), opts)
	assert.ErrorIs(t, err, ErrUnknownMode)

	opts = DefaultOptions()
	opts.Factions = []string{"dwarves", "orcs"}
	_, err = testDriver().Run(context.Background(), opts)
	assert.ErrorIs(t, err, ErrUnknownFaction)
}

func TestSummaryRecord(t *testing.T) {
	s := newSummary(DefaultOptions(), combat.DefaultRules(), testCatalog(), []string{"humans", "orcs"})
	s.record("humans", "orcs", combat.Outcome{Status: combat.Player2Victory, Turns: 10})
	s.record("orcs", "humans", combat.Outcome{Status: combat.Player2Victory, Turns: 20})
	s.record("humans", "orcs", combat.Outcome{Status: combat.Drawn, Turns: 200})
	s.record("orcs", "humans", combat.Outcome{Status: combat.Player1Victory, Turns: 30})
	s.finish()

	assert.Equal(t, 4, s.Matches)
	assert.Equal(t, [2]int{1, 2}, s.SeatWins)
	orcs := s.Factions[0]
	assert.Equal(t, "orcs", orcs.Faction)
	assert.Equal(t, 2, orcs.Wins)
	assert.Equal(t, 1, orcs.Losses)
	assert.Equal(t, 1, orcs.Draws)
	assert.InDelta(t, 20.0, orcs.AvgWinTurns, 1e-9)
	assert.InDelta(t, 0.5, orcs.WinRate, 1e-9)
	assert.Equal(t, map[string]int{"humans": 2}, orcs.WinsVs)
}

func TestWriteReport(t *testing.T) {
	s := newSummary(DefaultOptions(), combat.DefaultRules(), testCatalog(), []string{"humans", "orcs"})
	for i := 0; i < 1500; i++ {
		s.record("humans", "orcs", combat.Outcome{Status: combat.Player1Victory, Turns: 12})
	}
	s.finish()

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, s))
	out := buf.String()
	assert.Contains(t, out, "# Balance Report")
	assert.Contains(t, out, "### Humans (humans)")
	assert.Contains(t, out, "- Wins: 1,500 / 1,500 (100.0%)")
	assert.Contains(t, out, "  - vs orcs: 1,500")
	assert.Contains(t, out, "seed: 12,345")
	assert.Contains(t, out, "- Avg turns (win): 12.0")
}
