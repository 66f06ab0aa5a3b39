package balance

import (
	"sort"

	"github.com/google/uuid"

	"hexbalance/internal/combat"
	"hexbalance/internal/config"
)

type FactionStats struct {
	Faction     string         `json:"faction"`
	Name        string         `json:"name"`
	Games       int            `json:"games"`
	Wins        int            `json:"wins"`
	Losses      int            `json:"losses"`
	Draws       int            `json:"draws"`
	WinTurns    int            `json:"win_turns"`
	AvgWinTurns float64        `json:"avg_win_turns"`
	WinRate     float64        `json:"win_rate"`
	WinsVs      map[string]int `json:"wins_vs"`
}

// Summary aggregates a balance run. Factions is ranked by wins once the
// run is over.
type Summary struct {
	RunID    string            `json:"run_id"`
	Options  Options           `json:"options"`
	Rules    combat.Rules      `json:"rules"`
	Matches  int               `json:"matches"`
	Draws    int               `json:"draws"`
	SeatWins [2]int            `json:"seat_wins"`
	Factions []*FactionStats   `json:"factions"`
	Sample   *combat.SimResult `json:"sample,omitempty"`

	byCode map[string]*FactionStats
}

func newSummary(opts Options, rules combat.Rules, cat *config.Catalog, codes []string) *Summary {
	s := &Summary{
		RunID:   uuid.NewString(),
		Options: opts,
		Rules:   rules,
		byCode:  make(map[string]*FactionStats, len(codes)),
	}
	for _, code := range codes {
		name := code
		if f, ok := cat.Faction(code); ok {
			name = f.DisplayName()
		}
		fs := &FactionStats{Faction: code, Name: name, WinsVs: map[string]int{}}
		s.byCode[code] = fs
		s.Factions = append(s.Factions, fs)
	}
	return s
}

// Stats returns the line of one faction.
func (s *Summary) Stats(code string) (*FactionStats, bool) {
	for _, fs := range s.Factions {
		if fs.Faction == code {
			return fs, true
		}
	}
	return nil, false
}

func (s *Summary) record(p1, p2 string, out combat.Outcome) {
	s.Matches++
	first, second := s.byCode[p1], s.byCode[p2]
	first.Games++
	second.Games++

	seat := out.WinnerSeat()
	if seat == 0 {
		s.Draws++
		first.Draws++
		second.Draws++
		return
	}
	s.SeatWins[seat-1]++
	winner, loser := first, second
	if seat == combat.Player2 {
		winner, loser = second, first
	}
	winner.Wins++
	winner.WinTurns += out.Turns
	winner.WinsVs[loser.Faction]++
	loser.Losses++
}

func (s *Summary) finish() {
	for _, fs := range s.Factions {
		if fs.Wins > 0 {
			fs.AvgWinTurns = float64(fs.WinTurns) / float64(fs.Wins)
		}
		if fs.Games > 0 {
			fs.WinRate = float64(fs.Wins) / float64(fs.Games)
		}
	}
	sort.SliceStable(s.Factions, func(i, j int) bool {
		return s.Factions[i].Wins > s.Factions[j].Wins
	})
}
