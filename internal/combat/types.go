package combat

import (
	"fmt"
	"strings"

	"hexbalance/internal/hex"
)

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) Opponent() Player { return 3 - p }
func (p Player) index() int       { return int(p) - 1 }
func (p Player) String() string   { return fmt.Sprintf("P%d", int(p)) }

// Class is the defensive tier of a unit.
type Class int

const (
	Light Class = iota
	Medium
	Heavy
	Elite
	classCount
)

var classNames = [classCount]string{"light", "medium", "heavy", "elite"}

func (c Class) String() string {
	if c < 0 || c >= classCount {
		return "unknown"
	}
	return classNames[c]
}

func ParseClass(s string) (Class, bool) {
	for i, n := range classNames {
		if strings.EqualFold(s, n) {
			return Class(i), true
		}
	}
	return Medium, false
}

type Unit struct {
	ID      string
	Name    string
	Faction string
	Class   Class
	Subtype string
	Hero    bool

	MaxStrength int
	Strength    int
	Movement    int
	Range       int
	Cost        int

	Pos      hex.Coord
	Deployed bool
	Owner    Player
}

// NewUnit instantiates a fresh unit at full strength, not yet deployed.
func NewUnit(tpl UnitTemplate, owner Player) *Unit {
	return &Unit{
		ID: tpl.ID, Name: tpl.Name, Faction: tpl.Faction,
		Class: tpl.Class, Subtype: tpl.Subtype, Hero: tpl.Hero,
		MaxStrength: tpl.Strength, Strength: tpl.Strength,
		Movement: tpl.Movement, Range: tpl.Range, Cost: tpl.Cost,
		Owner: owner,
	}
}

func (u *Unit) Alive() bool { return u.Strength > 0 }

func (u *Unit) TakeDamage(hits int) {
	if hits <= 0 {
		return
	}
	u.Strength -= hits
	if u.Strength < 0 {
		u.Strength = 0
	}
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s[%s %s] str=%d/%d pos=%v", u.Name, u.Owner, u.Class, u.Strength, u.MaxStrength, u.Pos)
}

// Roster is one side's ready-to-play army.
type Roster struct {
	Faction string
	Units   []*Unit
}

// MatchState is everything a single match mutates. Dead units stay in
// Units so indices remain stable for the whole match.
type MatchState struct {
	Units    []*Unit
	Medals   [2]int
	Turn     int
	Factions [2]string
}

func NewMatchState(p1, p2 Roster) *MatchState {
	st := &MatchState{Factions: [2]string{p1.Faction, p2.Faction}}
	st.Units = make([]*Unit, 0, len(p1.Units)+len(p2.Units))
	for _, u := range p1.Units {
		u.Owner = Player1
		st.Units = append(st.Units, u)
	}
	for _, u := range p2.Units {
		u.Owner = Player2
		st.Units = append(st.Units, u)
	}
	return st
}

func (s *MatchState) Alive(p Player) []*Unit {
	var out []*Unit
	for _, u := range s.Units {
		if u.Alive() && u.Owner == p {
			out = append(out, u)
		}
	}
	return out
}

func (s *MatchState) AliveCount(p Player) int {
	n := 0
	for _, u := range s.Units {
		if u.Alive() && u.Owner == p {
			n++
		}
	}
	return n
}

// Occupied reports whether an alive unit stands on c.
func (s *MatchState) Occupied(c hex.Coord) bool {
	for _, u := range s.Units {
		if u.Alive() && u.Pos == c {
			return true
		}
	}
	return false
}

func (s *MatchState) MedalsOf(p Player) int     { return s.Medals[p.index()] }
func (s *MatchState) award(p Player)            { s.Medals[p.index()]++ }
func (s *MatchState) FactionOf(p Player) string { return s.Factions[p.index()] }
