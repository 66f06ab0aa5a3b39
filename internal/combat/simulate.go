package combat

import (
	"encoding/json"

	"github.com/google/uuid"

	"hexbalance/internal/hex"
)

// Draw is the winner label of a match nobody won.
const Draw = "draw"

type Rules struct {
	Grid        hex.Grid `json:"grid"`
	Activations int      `json:"activations"`
	MedalsToWin int      `json:"medals_to_win"`
	MaxTurns    int      `json:"max_turns"`
}

func DefaultRules() Rules {
	return Rules{Grid: hex.DefaultGrid, Activations: 3, MedalsToWin: 5, MaxTurns: 200}
}

// WithDefaults fills zero fields from DefaultRules.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if r.Grid.Width <= 0 || r.Grid.Height <= 0 {
		r.Grid = d.Grid
	}
	if r.Activations <= 0 {
		r.Activations = d.Activations
	}
	if r.MedalsToWin <= 0 {
		r.MedalsToWin = d.MedalsToWin
	}
	if r.MaxTurns <= 0 {
		r.MaxTurns = d.MaxTurns
	}
	return r
}

type Status int

const (
	InProgress Status = iota
	Player1Victory
	Player2Victory
	Drawn
)

var statusNames = [...]string{"in-progress", "player-1-victory", "player-2-victory", "draw"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func victoryFor(p Player) Status {
	if p == Player1 {
		return Player1Victory
	}
	return Player2Victory
}

// Outcome is all that escapes a finished match.
type Outcome struct {
	Status Status `json:"status"`
	Winner string `json:"winner"`
	Turns  int    `json:"turns"`
	Medals [2]int `json:"medals"`
}

// WinnerSeat returns the winning player, or 0 for a draw.
func (o Outcome) WinnerSeat() Player {
	switch o.Status {
	case Player1Victory:
		return Player1
	case Player2Victory:
		return Player2
	}
	return 0
}

type Match struct {
	State *MatchState
	Rules Rules
	Rng   Rand
	Emit  func(Event)
}

func NewMatch(p1, p2 Roster, rules Rules, rng Rand) *Match {
	return &Match{State: NewMatchState(p1, p2), Rules: rules.WithDefaults(), Rng: rng}
}

func (m *Match) emit(typ string, payload map[string]any) {
	if m.Emit == nil {
		return
	}
	m.Emit(Event{Turn: m.State.Turn, Type: typ, Payload: payload})
}

func (m *Match) won(p Player) bool {
	return m.State.AliveCount(p.Opponent()) == 0 || m.State.MedalsOf(p) >= m.Rules.MedalsToWin
}

// Run plays rounds until one side is wiped out, reaches the medal target,
// or the turn cap is hit. Player 2 does not get its half of the round once
// player 1 has won.
func (m *Match) Run() Outcome {
	return m.run(m.PlayTurn)
}

func (m *Match) run(turn func(Player)) Outcome {
	st := m.State
	for st.Turn < m.Rules.MaxTurns {
		st.Turn++
		for _, p := range [2]Player{Player1, Player2} {
			turn(p)
			if m.won(p) {
				return m.finish(victoryFor(p))
			}
		}
	}
	m1, m2 := st.MedalsOf(Player1), st.MedalsOf(Player2)
	switch {
	case m1 > m2:
		return m.finish(Player1Victory)
	case m2 > m1:
		return m.finish(Player2Victory)
	}
	return m.finish(Drawn)
}

func (m *Match) finish(s Status) Outcome {
	out := Outcome{Status: s, Winner: Draw, Turns: m.State.Turn, Medals: m.State.Medals}
	if p := out.WinnerSeat(); p != 0 {
		out.Winner = m.State.FactionOf(p)
	}
	m.emit("MatchEnd", map[string]any{
		"status": s.String(), "winner": out.Winner, "medals": []int{out.Medals[0], out.Medals[1]},
	})
	return out
}

// RunMatch plays one match between two prepared rosters.
func RunMatch(p1, p2 Roster, rules Rules, rng Rand) Outcome {
	return NewMatch(p1, p2, rules, rng).Run()
}

type SimResult struct {
	MatchID string  `json:"match_id"`
	Outcome Outcome `json:"outcome"`
	Events  []Event `json:"events,omitempty"`
	Meta    SimMeta `json:"meta"`
}

type SimMeta struct {
	Rules    Rules         `json:"rules"`
	Factions [2]string     `json:"factions"`
	Units    []SimUnitMeta `json:"units"`
}

type SimUnitMeta struct {
	Index         int    `json:"index"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Faction       string `json:"faction"`
	Owner         int    `json:"owner"`
	Class         string `json:"class"`
	Hero          bool   `json:"hero,omitempty"`
	MaxStrength   int    `json:"max_strength"`
	FinalStrength int    `json:"final_strength"`
	Movement      int    `json:"movement"`
	Range         int    `json:"range"`
	Col           int    `json:"col"`
	Row           int    `json:"row"`
}

// RunSingle plays one match and packs it for export. With record set the
// full event log is kept.
func RunSingle(p1, p2 Roster, rules Rules, rng Rand, record bool) SimResult {
	m := NewMatch(p1, p2, rules, rng)
	var events []Event
	if record {
		m.Emit = func(ev Event) { events = append(events, ev) }
	}

	meta := SimMeta{Rules: m.Rules, Factions: m.State.Factions}
	for i, u := range m.State.Units {
		meta.Units = append(meta.Units, SimUnitMeta{
			Index: i, ID: u.ID, Name: u.Name, Faction: u.Faction, Owner: int(u.Owner),
			Class: u.Class.String(), Hero: u.Hero,
			MaxStrength: u.MaxStrength, Movement: u.Movement, Range: u.Range,
			Col: u.Pos.Col, Row: u.Pos.Row,
		})
	}

	out := m.Run()
	for i, u := range m.State.Units {
		meta.Units[i].FinalStrength = u.Strength
	}
	return SimResult{
		MatchID: uuid.NewString(),
		Outcome: out,
		Events:  events,
		Meta:    meta,
	}
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
