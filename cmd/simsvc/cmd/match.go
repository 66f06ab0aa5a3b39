package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"hexbalance/internal/balance"
	"hexbalance/internal/combat"
	"hexbalance/internal/util"
)

var (
	matchP1     string
	matchP2     string
	matchHeroes bool
	matchSeed   int64
	matchOut    string
	matchLog    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Play a single match and export it as JSON",
	Long: `Match plays one spatial match between two factions and writes the
outcome, unit sheet and (with --log) the full event log to --out.

Example:
  simsvc match --p1 humans --p2 undead --seed 7 --out match.json`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	d, err := newDriver()
	if err != nil {
		return err
	}
	for _, code := range []string{matchP1, matchP2} {
		if _, ok := d.Catalog.Faction(code); !ok {
			return fmt.Errorf("%w: %q", balance.ErrUnknownFaction, code)
		}
	}
	seed := settings.Seed
	if cmd.Flags().Changed("seed") {
		seed = matchSeed
	}

	rng := util.New(seed)
	p1 := d.Book.BuildRoster(matchP1, combat.Player1, matchHeroes, d.Rules.Grid, rng)
	p2 := d.Book.BuildRoster(matchP2, combat.Player2, matchHeroes, d.Rules.Grid, rng)
	res := combat.RunSingle(p1, p2, d.Rules, rng, matchLog)

	if err := afero.WriteFile(fs, matchOut, combat.MarshalPretty(res), 0o644); err != nil {
		return err
	}
	logger.Info("match exported", "match_id", res.MatchID, "events", len(res.Events), "path", matchOut)
	o := res.Outcome
	fmt.Fprintf(cmd.OutOrStdout(), "Match %s vs %s finished: %s after %d turns, medals %d-%d -> %s\n",
		matchP1, matchP2, o.Winner, o.Turns, o.Medals[0], o.Medals[1], matchOut)
	return nil
}

func init() {
	f := matchCmd.Flags()
	f.StringVar(&matchP1, "p1", "", "faction code for player 1")
	f.StringVar(&matchP2, "p2", "", "faction code for player 2")
	f.BoolVar(&matchHeroes, "heroes", false, "add each faction's hero to its army")
	f.Int64Var(&matchSeed, "seed", 12345, "random seed (default from HEXSIM_SEED)")
	f.StringVarP(&matchOut, "out", "o", "match.json", "output file")
	f.BoolVar(&matchLog, "log", true, "include the full event log")
	_ = matchCmd.MarkFlagRequired("p1")
	_ = matchCmd.MarkFlagRequired("p2")
	rootCmd.AddCommand(matchCmd)
}
