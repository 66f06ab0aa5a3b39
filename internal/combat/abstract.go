package combat

import "hexbalance/internal/hex"

// RunAbstract plays the lane model: no coordinates, each unit sits in one
// of the three board sections. Units start in lane i%3 by roster index.
// On its turn a player activates units from its most crowded lane; a unit
// with no enemy in its lane relocates to a lane that has one, otherwise it
// attacks a random enemy in its lane. Ranged units shoot at distance two.
func RunAbstract(p1, p2 Roster, rules Rules, rng Rand) Outcome {
	m := NewMatch(p1, p2, rules, rng)
	lanes := make(map[*Unit]hex.Section, len(m.State.Units))
	for _, r := range [2]Roster{p1, p2} {
		for i, u := range r.Units {
			lanes[u] = hex.Sections[i%len(hex.Sections)]
		}
	}
	return m.run(func(p Player) { m.playLaneTurn(p, lanes) })
}

// busiestLane returns the lane holding most of units; ties go to the lane
// seen first in unit order.
func busiestLane(units []*Unit, lanes map[*Unit]hex.Section) hex.Section {
	counts := map[hex.Section]int{}
	var order []hex.Section
	for _, u := range units {
		l := lanes[u]
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}
	best := order[0]
	for _, l := range order[1:] {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best
}

func (m *Match) playLaneTurn(p Player, lanes map[*Unit]hex.Section) {
	alive := m.State.Alive(p)
	if len(alive) == 0 {
		return
	}
	lane := busiestLane(alive, lanes)

	var active []*Unit
	for _, u := range alive {
		if lanes[u] == lane && len(active) < m.Rules.Activations {
			active = append(active, u)
		}
	}

	for _, u := range active {
		if !u.Alive() {
			continue
		}
		enemies := m.State.Alive(p.Opponent())
		if len(enemies) == 0 {
			return
		}
		var here []*Unit
		for _, e := range enemies {
			if lanes[e] == lanes[u] {
				here = append(here, e)
			}
		}
		if len(here) == 0 {
			occupied := map[hex.Section]bool{}
			for _, e := range enemies {
				occupied[lanes[e]] = true
			}
			var options []hex.Section
			for _, s := range hex.Sections {
				if occupied[s] {
					options = append(options, s)
				}
			}
			to := options[m.Rng.Intn(len(options))]
			m.emit("Move", map[string]any{
				"unit": u.ID, "owner": int(p), "from": string(lanes[u]), "section": string(to),
			})
			lanes[u] = to
			continue
		}

		target := here[m.Rng.Intn(len(here))]
		dist := 1
		if u.Range > 1 {
			dist = 2
		}
		m.attack(u, target, dist, p)
	}
}
