package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"hexbalance/internal/balance"
	"hexbalance/internal/combat"
)

var (
	runGames     int
	runHeroes    bool
	runSeed      int64
	runWorkers   int
	runMode      string
	runSwapSeats bool
	runFactions  []string
	runOut       string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play every faction pairing and report win rates",
	Long: `Run plays --games matches for each pair of playable factions and prints
a Markdown report ranked by wins.

Examples:
  simsvc run --games 500 --heroes
  simsvc run --factions humans,orcs --mode abstract --out summary.json`,
	Args: cobra.NoArgs,
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	mode, err := balance.ParseMode(runMode)
	if err != nil {
		return err
	}
	d, err := newDriver()
	if err != nil {
		return err
	}

	opts := balance.DefaultOptions()
	opts.Games = runGames
	opts.Heroes = runHeroes
	opts.Seed = settings.Seed
	opts.Workers = settings.Workers
	opts.Mode = mode
	opts.SwapSeats = runSwapSeats
	opts.Factions = runFactions
	if cmd.Flags().Changed("seed") {
		opts.Seed = runSeed
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = runWorkers
	}

	sum, runErr := d.Run(cmd.Context(), opts)
	if sum == nil {
		return runErr
	}
	if err := balance.WriteReport(cmd.OutOrStdout(), sum); err != nil {
		return err
	}
	if runOut != "" {
		if err := afero.WriteFile(fs, runOut, combat.MarshalPretty(sum), 0o644); err != nil {
			return err
		}
		logger.Info("summary written", "path", runOut)
	}
	return runErr
}

func init() {
	f := runCmd.Flags()
	f.IntVarP(&runGames, "games", "n", 100, "matches per faction pairing")
	f.BoolVar(&runHeroes, "heroes", false, "add each faction's hero to its army")
	f.Int64Var(&runSeed, "seed", 12345, "base random seed (default from HEXSIM_SEED)")
	f.IntVar(&runWorkers, "workers", 8, "parallel workers (default from HEXSIM_WORKERS)")
	f.StringVar(&runMode, "mode", string(balance.ModeSpatial), "match model: spatial or abstract")
	f.BoolVar(&runSwapSeats, "swap-seats", true, "alternate who moves first within each pairing")
	f.StringSliceVar(&runFactions, "factions", nil, "faction codes to play (default every playable faction)")
	f.StringVarP(&runOut, "out", "o", "", "also write the summary as JSON to this file")
	rootCmd.AddCommand(runCmd)
}
