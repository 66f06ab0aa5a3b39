package balance

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFaction    = errors.New("unknown faction")
	ErrNotEnoughFactions = errors.New("need at least two factions")
	ErrUnknownMode       = errors.New("unknown mode")
)

// Mode selects the match model.
type Mode string

const (
	ModeSpatial  Mode = "spatial"
	ModeAbstract Mode = "abstract"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case "", ModeSpatial:
		return ModeSpatial, nil
	case ModeAbstract:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Options struct {
	Games     int      `json:"games"`
	Heroes    bool     `json:"heroes"`
	Seed      int64    `json:"seed"`
	Workers   int      `json:"workers"`
	SwapSeats bool     `json:"swap_seats"`
	Mode      Mode     `json:"mode"`
	Factions  []string `json:"factions,omitempty"`
}

func DefaultOptions() Options {
	return Options{Games: 100, Seed: 12345, Workers: 8, SwapSeats: true, Mode: ModeSpatial}
}

func (o Options) withDefaults() (Options, error) {
	d := DefaultOptions()
	if o.Games <= 0 {
		o.Games = d.Games
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	m, err := ParseMode(string(o.Mode))
	if err != nil {
		return o, err
	}
	o.Mode = m
	return o, nil
}

// Pairing is one unordered matchup; A takes the first seat unless seats
// are swapped.
type Pairing struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Pairings lists every unordered pair of distinct factions, in input order.
func Pairings(factions []string) []Pairing {
	var out []Pairing
	for i := 0; i < len(factions); i++ {
		for j := i + 1; j < len(factions); j++ {
			out = append(out, Pairing{A: factions[i], B: factions[j]})
		}
	}
	return out
}
