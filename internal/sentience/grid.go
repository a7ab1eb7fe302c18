// Package sentience implements the autonomous snake: grid geometry, the
// breadth-first path planner, the consciousness engine that perturbs it, and
// the agent that ties them together one tick at a time.
//
// The package draws nothing. Narration leaves through a Presenter and all
// randomness comes from an injected Source, so a seeded run is reproducible.
package sentience

import (
	"fmt"

	"github.com/vovakirdan/sentient-snake/internal/core"
)

// Cell is a grid coordinate (column, row), 0-indexed.
type Cell struct {
	X, Y int
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one unit away in direction d, without wrapping.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the taxicab distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	return core.Abs(c.X-o.X) + core.Abs(c.Y-o.Y)
}

// OffGrid is the synthetic target used when heading for the exit with no
// reachable boundary cell.
var OffGrid = Cell{X: -1, Y: -1}

// Direction is one of the four unit moves.
type Direction int

// Declaration order is the search order; it breaks ties everywhere.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in tie-break order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit (dx, dy) for the direction. Rows grow downwards.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// CellSet is a set of cells with value membership.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set. A nil set is empty.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Grid is the width×height playfield.
type Grid struct {
	bounds core.Rect
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{bounds: core.NewRect(0, 0, width, height)}
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.bounds.W }

// Height returns the number of rows.
func (g Grid) Height() int { return g.bounds.H }

// Center returns the middle cell.
func (g Grid) Center() Cell {
	x, y := g.bounds.Center()
	return Cell{X: x, Y: y}
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return g.bounds.Contains(c.X, c.Y)
}

// Wrap maps c onto the torus.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: core.Mod(c.X, g.bounds.W), Y: core.Mod(c.Y, g.bounds.H)}
}

// Neighbor returns the cell adjacent to c in direction d. In bounded mode the
// second result is false when the step leaves the grid; in wrapped mode it is
// always true.
func (g Grid) Neighbor(c Cell, d Direction, bounded bool) (Cell, bool) {
	n := c.Step(d)
	if !bounded {
		return g.Wrap(n), true
	}
	return n, g.Contains(n)
}

// OnBoundary reports whether c is an in-grid cell on the outer ring.
func (g Grid) OnBoundary(c Cell) bool {
	if !g.Contains(c) {
		return false
	}
	return c.X == 0 || c.Y == 0 || c.X == g.bounds.W-1 || c.Y == g.bounds.H-1
}

// BoundaryCells lists the outer ring of the grid, each cell once, clockwise
// from the top-left corner.
func (g Grid) BoundaryCells() []Cell {
	w, h := g.bounds.W, g.bounds.H
	if w <= 0 || h <= 0 {
		return nil
	}
	seen := make(CellSet)
	cells := make([]Cell, 0, 2*(w+h))
	add := func(c Cell) {
		if !seen.Has(c) {
			seen.Add(c)
			cells = append(cells, c)
		}
	}
	for x := 0; x < w; x++ {
		add(Cell{X: x, Y: 0})
	}
	for y := 1; y < h; y++ {
		add(Cell{X: w - 1, Y: y})
	}
	for x := w - 2; x >= 0; x-- {
		add(Cell{X: x, Y: h - 1})
	}
	for y := h - 2; y >= 1; y-- {
		add(Cell{X: 0, Y: y})
	}
	return cells
}

// ExitDirection returns the first direction, in tie-break order, that steps
// from c straight off the grid. False when c is not on the boundary.
func (g Grid) ExitDirection(c Cell) (Direction, bool) {
	if !g.OnBoundary(c) {
		return Up, false
	}
	for _, d := range Directions {
		if !g.Contains(c.Step(d)) {
			return d, true
		}
	}
	return Up, false
}
