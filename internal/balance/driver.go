package balance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hexbalance/internal/combat"
	"hexbalance/internal/config"
	"hexbalance/internal/util"
)

// Driver runs batches of matches over a loaded catalog.
type Driver struct {
	Catalog *config.Catalog
	Book    *combat.UnitBook
	Rules   combat.Rules
	Log     *slog.Logger
}

func NewDriver(cat *config.Catalog, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	rules, army := combat.RulesFromConfig(cat.Sim)
	return &Driver{
		Catalog: cat,
		Book:    combat.NewUnitBook(cat.Units, army),
		Rules:   rules,
		Log:     log,
	}
}

// Factions resolves the faction codes a run plays with: the requested ones,
// or every playable faction when none are named.
func (d *Driver) Factions(requested []string) ([]string, error) {
	var codes []string
	if len(requested) == 0 {
		for _, f := range d.Catalog.Playable() {
			codes = append(codes, f.Code)
		}
	} else {
		seen := map[string]bool{}
		for _, code := range requested {
			if _, ok := d.Catalog.Faction(code); !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFaction, code)
			}
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	if len(codes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughFactions, len(codes))
	}
	return codes, nil
}

type job struct {
	index int
	pair  Pairing
	game  int
}

type played struct {
	p1, p2  string
	outcome combat.Outcome
	sample  *combat.SimResult
}

// Run plays opts.Games matches for every pairing on a fixed pool of
// workers. Each job seeds its own source from the run seed and its index,
// so results do not depend on the worker count. On cancellation the jobs
// already played are returned with ctx's error.
func (d *Driver) Run(ctx context.Context, opts Options) (*Summary, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	codes, err := d.Factions(opts.Factions)
	if err != nil {
		return nil, err
	}
	opts.Factions = codes
	pairs := Pairings(codes)
	total := len(pairs) * opts.Games

	sum := newSummary(opts, d.Rules, d.Catalog, codes)
	log := d.Log.With("run_id", sum.RunID)
	log.Info("balance run started",
		"factions", len(codes), "pairings", len(pairs), "games", opts.Games,
		"matches", total, "workers", opts.Workers, "mode", opts.Mode, "heroes", opts.Heroes)
	start := time.Now()

	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan job, opts.Workers)
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := d.play(ctx, log, j, opts)
				mu.Lock()
				sum.record(res.p1, res.p2, res.outcome)
				if res.sample != nil {
					sum.Sample = res.sample
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			break
		}
		j := job{index: i, pair: pairs[i/opts.Games], game: i % opts.Games}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- j:
		}
	}
	close(jobs)
	wg.Wait()

	sum.finish()
	if err := ctx.Err(); err != nil {
		log.Warn("balance run interrupted", "played", sum.Matches, "of", total, "err", err)
		return sum, err
	}
	log.Info("balance run finished", "matches", sum.Matches, "draws", sum.Draws, "elapsed", time.Since(start))
	return sum, nil
}

func (d *Driver) play(ctx context.Context, log *slog.Logger, j job, opts Options) played {
	rng := util.New(util.Derive(opts.Seed, j.index))
	a, b := j.pair.A, j.pair.B
	if opts.SwapSeats && j.game%2 == 1 {
		a, b = b, a
	}
	grid := d.Rules.Grid
	p1 := d.Book.BuildRoster(a, combat.Player1, opts.Heroes, grid, rng)
	p2 := d.Book.BuildRoster(b, combat.Player2, opts.Heroes, grid, rng)
	res := played{p1: a, p2: b}

	switch {
	case opts.Mode == ModeAbstract:
		res.outcome = combat.RunAbstract(p1, p2, d.Rules, rng)
	case j.index == 0:
		sample := combat.RunSingle(p1, p2, d.Rules, rng, true)
		if log.Enabled(ctx, slog.LevelDebug) {
			for _, ev := range sample.Events {
				log.Debug("sample event", "match_id", sample.MatchID, "turn", ev.Turn, "type", ev.Type, "payload", ev.Payload)
			}
		}
		res.outcome, res.sample = sample.Outcome, &sample
	default:
		res.outcome = combat.RunMatch(p1, p2, d.Rules, rng)
	}
	return res
}
