package combat

import "hexbalance/internal/hex"

// nearestEnemy scans the roster in order; the first enemy at the minimum
// distance wins ties.
func (m *Match) nearestEnemy(u *Unit) (*Unit, int) {
	var best *Unit
	bestDist := 0
	for _, e := range m.State.Units {
		if !e.Alive() || e.Owner == u.Owner {
			continue
		}
		d := hex.Distance(u.Pos, e.Pos)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}

// selectActivations picks up to the activation quota of p's units, units
// that can already attack first. Each bucket is shuffled so roster order
// does not bias who acts.
func (m *Match) selectActivations(p Player) []*Unit {
	var ready, moving []*Unit
	for _, u := range m.State.Alive(p) {
		e, d := m.nearestEnemy(u)
		if e == nil {
			continue
		}
		if d <= u.Range {
			ready = append(ready, u)
		} else {
			moving = append(moving, u)
		}
	}
	shuffleUnits(m.Rng, ready)
	shuffleUnits(m.Rng, moving)

	quota := m.Rules.Activations
	out := make([]*Unit, 0, quota)
	for _, bucket := range [2][]*Unit{ready, moving} {
		for _, u := range bucket {
			if len(out) >= quota {
				return out
			}
			out = append(out, u)
		}
	}
	return out
}

func shuffleUnits(rng Rand, us []*Unit) {
	rng.Shuffle(len(us), func(i, j int) { us[i], us[j] = us[j], us[i] })
}

// PlayTurn runs one player's turn. Every activation sees the results of
// the ones before it.
func (m *Match) PlayTurn(p Player) {
	for _, u := range m.selectActivations(p) {
		m.activate(u, p)
	}
}

func (m *Match) activate(u *Unit, p Player) {
	if !u.Alive() {
		return
	}
	target, dist := m.nearestEnemy(u)
	if target == nil {
		return
	}
	if dist > u.Range {
		from := u.Pos
		steps := Advance(u, target.Pos, m.Rules.Grid, m.State.Occupied)
		if steps > 0 {
			m.emit("Move", map[string]any{
				"unit": u.ID, "owner": int(p), "steps": steps,
				"from": []int{from.Col, from.Row}, "to": []int{u.Pos.Col, u.Pos.Row},
				"section": string(m.Rules.Grid.Section(u.Pos.Col)),
			})
		}
		// move-then-attack against whoever is closest now
		target, dist = m.nearestEnemy(u)
		if target == nil || dist > u.Range {
			return
		}
	}
	m.attack(u, target, dist, p)
}

func (m *Match) attack(u, target *Unit, dist int, p Player) {
	s := strike(u, target, dist, m.Rng)
	if m.Emit != nil {
		faces := make([]string, len(s.Faces))
		for i, f := range s.Faces {
			faces[i] = f.String()
		}
		m.emit("Attack", map[string]any{
			"attacker": u.ID, "defender": target.ID, "owner": int(p),
			"distance": s.Distance, "dice": s.Dice, "faces": faces,
			"hits": s.Hits, "flags": s.Flags, "strength": target.Strength,
		})
	}
	if !target.Alive() {
		m.State.award(p)
		m.emit("Eliminated", map[string]any{
			"unit": target.ID, "name": target.Name, "by": u.ID,
			"owner": int(p), "medals": m.State.MedalsOf(p),
		})
	}
}
