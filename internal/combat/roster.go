package combat

import (
	"fmt"

	"hexbalance/internal/hex"
)

// Army instantiates a faction's force: every unit of the configured
// expansion, two copies of the cheap ones, plus the faction hero when
// heroes are in play. Copies get a numbered ID.
func (ub *UnitBook) Army(faction string, owner Player, heroes bool) []*Unit {
	if ub == nil {
		return nil
	}
	var out []*Unit
	for _, tpl := range ub.Templates(faction) {
		if tpl.Expansion != ub.rules.Expansion {
			continue
		}
		copies := 1
		if tpl.Cost < ub.rules.DoubleBelowCost {
			copies = 2
		}
		for i := 0; i < copies; i++ {
			u := NewUnit(tpl, owner)
			if i > 0 {
				u.ID = fmt.Sprintf("%s-%d", tpl.ID, i+1)
			}
			out = append(out, u)
		}
	}
	if heroes {
		if h, ok := ub.Hero(faction); ok {
			out = append(out, NewUnit(h, owner))
		}
	}
	return out
}

// DeployRows returns the two rows a player sets up on, in fill order.
func DeployRows(owner Player, grid hex.Grid) [2]int {
	if owner == Player2 {
		return [2]int{grid.Height - 1, grid.Height - 2}
	}
	return [2]int{0, 1}
}

// Deploy shuffles units and places them column by column on the owner's
// home rows. Whatever does not fit on two rows stays home; the returned
// slice holds only the deployed units.
func Deploy(units []*Unit, owner Player, grid hex.Grid, rng Rand) []*Unit {
	shuffleUnits(rng, units)
	slots := make([]hex.Coord, 0, 2*grid.Width)
	for _, r := range DeployRows(owner, grid) {
		for c := 0; c < grid.Width; c++ {
			slots = append(slots, hex.Coord{Col: c, Row: r})
		}
	}
	n := min(len(units), len(slots))
	for i := 0; i < n; i++ {
		units[i].Pos = slots[i]
		units[i].Deployed = true
		units[i].Owner = owner
	}
	return units[:n]
}

// BuildRoster is Army followed by Deploy.
func (ub *UnitBook) BuildRoster(faction string, owner Player, heroes bool, grid hex.Grid, rng Rand) Roster {
	units := ub.Army(faction, owner, heroes)
	return Roster{Faction: faction, Units: Deploy(units, owner, grid, rng)}
}
