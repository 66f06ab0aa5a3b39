package combat

import "hexbalance/internal/hex"

// Advance walks u up to u.Movement hexes toward target, one neighbour at a
// time, always onto the free neighbour closest to target. It stops as soon
// as no neighbour is strictly closer than the current hex. This is a local
// greedy stepper, not a path search: units can get stuck behind others.
// The position is written once, after the walk. Returns the steps taken.
func Advance(u *Unit, target hex.Coord, grid hex.Grid, occupied func(hex.Coord) bool) int {
	cur := u.Pos
	steps := 0
	for steps < u.Movement {
		best := cur
		bestDist := hex.Distance(cur, target)
		for _, n := range grid.Neighbors(cur) {
			if occupied(n) {
				continue
			}
			if d := hex.Distance(n, target); d < bestDist {
				best, bestDist = n, d
			}
		}
		if best == cur {
			break
		}
		cur = best
		steps++
	}
	u.Pos = cur
	return steps
}
