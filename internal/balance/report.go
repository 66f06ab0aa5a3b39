package balance

import (
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport renders s as a Markdown balance report, ranked by wins.
func WriteReport(w io.Writer, s *Summary) error {
	p := message.NewPrinter(language.English)
	pw := &errWriter{w: w, p: p}

	pw.printf("# Balance Report\n\n")
	pw.printf("- Run: %s\n", s.RunID)
	pw.printf("- Mode: %s, heroes: %t, seed: %d\n", s.Options.Mode, s.Options.Heroes, s.Options.Seed)
	pw.printf("- Games per pairing: %d\n", s.Options.Games)
	pw.printf("- Matches: %d (draws: %d)\n", s.Matches, s.Draws)
	pw.printf("- Seat wins: P1 %d, P2 %d\n", s.SeatWins[0], s.SeatWins[1])
	pw.printf("\n## Results by Faction\n\n")

	for _, fs := range s.Factions {
		pw.printf("### %s (%s)\n", fs.Name, fs.Faction)
		pw.printf("- Wins: %d / %d (%.1f%%)\n", fs.Wins, fs.Games, fs.WinRate*100)
		pw.printf("- Losses: %d\n", fs.Losses)
		pw.printf("- Draws: %d\n", fs.Draws)
		pw.printf("- Avg turns (win): %.1f\n", fs.AvgWinTurns)

		opps := make([]string, 0, len(fs.WinsVs))
		for code := range fs.WinsVs {
			opps = append(opps, code)
		}
		sort.Strings(opps)
		for _, code := range opps {
			pw.printf("  - vs %s: %d\n", code, fs.WinsVs[code])
		}
		pw.printf("\n")
	}
	return pw.err
}

type errWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = e.p.Fprintf(e.w, format, args...)
}
