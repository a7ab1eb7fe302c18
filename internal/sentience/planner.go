package sentience

import "sort"

// Planner chooses moves on a grid. It holds no per-call state and is safe to
// reuse across ticks.
type Planner struct {
	grid Grid
}

// NewPlanner creates a planner for the grid.
func NewPlanner(g Grid) *Planner {
	return &Planner{grid: g}
}

type frontier struct {
	cell  Cell
	first Direction
}

// FindStep runs a breadth-first search from origin to target and returns the
// first direction of a shortest path. Neighbours are visited in Up, Down,
// Left, Right order, which decides between equally short paths. Obstacles
// block every cell except target itself. In bounded mode the search stays
// inside the grid; otherwise coordinates wrap.
//
// ok is false when origin equals target or target cannot be reached.
func (p *Planner) FindStep(origin, target Cell, obstacles CellSet, bounded bool) (Direction, bool) {
	if origin == target {
		return Up, false
	}

	visited := NewCellSet(origin)
	queue := make([]frontier, 0, p.grid.Width()*p.grid.Height())

	// Seed with the origin's neighbours so each entry remembers its first step.
	for _, d := range Directions {
		n, ok := p.admissible(origin, d, target, obstacles, bounded)
		if !ok || visited.Has(n) {
			continue
		}
		if n == target {
			return d, true
		}
		visited.Add(n)
		queue = append(queue, frontier{cell: n, first: d})
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, d := range Directions {
			n, ok := p.admissible(cur.cell, d, target, obstacles, bounded)
			if !ok || visited.Has(n) {
				continue
			}
			if n == target {
				return cur.first, true
			}
			visited.Add(n)
			queue = append(queue, frontier{cell: n, first: cur.first})
		}
	}

	return Up, false
}

func (p *Planner) admissible(from Cell, d Direction, target Cell, obstacles CellSet, bounded bool) (Cell, bool) {
	n, inside := p.grid.Neighbor(from, d, bounded)
	if !inside {
		return n, false
	}
	if n != target && obstacles.Has(n) {
		return n, false
	}
	return n, true
}

// Fallback is the greedy move used when FindStep has nothing to offer. It
// considers every direction except the reverse of current, drops moves that
// land on an obstacle (after wrapping, in wrapped mode) and keeps the one
// closest to target by Manhattan distance. Off-grid landings are allowed in
// bounded mode since that is the way out. If nothing qualifies the current
// direction is returned unchanged.
func (p *Planner) Fallback(origin, target Cell, current Direction, obstacles CellSet, bounded bool) Direction {
	best := current
	bestDist := -1
	for _, d := range Directions {
		if d == current.Opposite() {
			continue
		}
		n := origin.Step(d)
		if !bounded {
			n = p.grid.Wrap(n)
		}
		if obstacles.Has(n) {
			continue
		}
		if dist := n.Manhattan(target); bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// NearestExit returns the boundary cell closest to origin (Manhattan) that
// FindStep can reach in bounded mode, together with the first step towards
// it. Boundary cells at equal distance keep their clockwise ring order.
// Occupied boundary cells are skipped: reaching one would mean a collision.
func (p *Planner) NearestExit(origin Cell, obstacles CellSet) (Cell, Direction, bool) {
	cells := p.grid.BoundaryCells()
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Manhattan(origin) < cells[j].Manhattan(origin)
	})
	for _, c := range cells {
		if obstacles.Has(c) {
			continue
		}
		if d, ok := p.FindStep(origin, c, obstacles, true); ok {
			return c, d, true
		}
	}
	return OffGrid, Up, false
}
