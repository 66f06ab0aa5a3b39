package combat

import "hexbalance/internal/hex"

// Strike is the detail of one resolved attack.
type Strike struct {
	Distance int    `json:"distance"`
	Dice     int    `json:"dice"`
	Faces    []Face `json:"-"`
	Hits     int    `json:"hits"`
	Flags    int    `json:"flags"`
}

// DiceFor returns how many dice attacker rolls at the given distance:
// zero when out of range, otherwise current strength with a one die
// penalty for non-adjacent shots, never below one.
func DiceFor(attacker *Unit, dist int) int {
	if dist > attacker.Range || attacker.Strength <= 0 {
		return 0
	}
	n := attacker.Strength
	if dist > 1 {
		n = max(1, n-1)
	}
	return n
}

// Resolve rolls attacker's dice against defender and applies the damage.
// It never fails: an out of range attack simply scores nothing.
func Resolve(attacker, defender *Unit, rng Rand) (hits, flags int) {
	s := strike(attacker, defender, hex.Distance(attacker.Pos, defender.Pos), rng)
	return s.Hits, s.Flags
}

func strike(attacker, defender *Unit, dist int, rng Rand) Strike {
	s := Strike{Distance: dist, Dice: DiceFor(attacker, dist)}
	if s.Dice == 0 {
		return s
	}
	s.Faces = RollDice(rng, s.Dice)
	for _, f := range s.Faces {
		switch {
		case defender.Class.HitBy(f):
			s.Hits++
		case f == Flag:
			s.Flags++
		}
	}
	defender.TakeDamage(s.Hits)
	return s
}
