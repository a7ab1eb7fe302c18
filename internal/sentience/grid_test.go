package sentience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite(), "opposite of opposite of %s", d)
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(30, 20)

	tests := []struct {
		in, want Cell
	}{
		{Cell{X: 30, Y: 10}, Cell{X: 0, Y: 10}},
		{Cell{X: -1, Y: 10}, Cell{X: 29, Y: 10}},
		{Cell{X: 5, Y: -1}, Cell{X: 5, Y: 19}},
		{Cell{X: 5, Y: 20}, Cell{X: 5, Y: 0}},
		{Cell{X: 7, Y: 7}, Cell{X: 7, Y: 7}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, g.Wrap(tc.in), "Wrap(%s)", tc.in)
	}
}

func TestGridNeighbor(t *testing.T) {
	g := NewGrid(5, 5)

	n, ok := g.Neighbor(Cell{X: 0, Y: 0}, Left, false)
	assert.True(t, ok)
	assert.Equal(t, Cell{X: 4, Y: 0}, n)

	_, ok = g.Neighbor(Cell{X: 0, Y: 0}, Left, true)
	assert.False(t, ok, "bounded neighbour off the grid")

	n, ok = g.Neighbor(Cell{X: 2, Y: 2}, Up, true)
	assert.True(t, ok)
	assert.Equal(t, Cell{X: 2, Y: 1}, n)
}

func TestBoundaryCells(t *testing.T) {
	g := NewGrid(4, 3)
	cells := g.BoundaryCells()

	// 2*(w+h) - 4 corners counted once
	require.Len(t, cells, 10)
	seen := NewCellSet()
	for _, c := range cells {
		assert.True(t, g.OnBoundary(c), "%s should be on the boundary", c)
		assert.False(t, seen.Has(c), "%s listed twice", c)
		seen.Add(c)
	}
	assert.False(t, seen.Has(Cell{X: 1, Y: 1}))
	assert.Equal(t, Cell{X: 0, Y: 0}, cells[0])
}

func TestBoundaryCellsDegenerate(t *testing.T) {
	assert.Len(t, NewGrid(1, 1).BoundaryCells(), 1)
	assert.Len(t, NewGrid(3, 1).BoundaryCells(), 3)
	assert.Empty(t, NewGrid(0, 0).BoundaryCells())
}

func TestExitDirection(t *testing.T) {
	g := NewGrid(5, 5)

	tests := []struct {
		cell Cell
		want Direction
		ok   bool
	}{
		{Cell{X: 2, Y: 0}, Up, true},
		{Cell{X: 2, Y: 4}, Down, true},
		{Cell{X: 0, Y: 2}, Left, true},
		{Cell{X: 4, Y: 2}, Right, true},
		{Cell{X: 0, Y: 0}, Up, true}, // corner: Up comes first
		{Cell{X: 4, Y: 4}, Down, true},
		{Cell{X: 2, Y: 2}, Up, false},
		{Cell{X: -1, Y: 2}, Up, false},
	}
	for _, tc := range tests {
		d, ok := g.ExitDirection(tc.cell)
		assert.Equal(t, tc.ok, ok, "ExitDirection(%s) ok", tc.cell)
		if tc.ok {
			assert.Equal(t, tc.want, d, "ExitDirection(%s)", tc.cell)
		}
	}
}

func TestCellManhattan(t *testing.T) {
	assert.Equal(t, 5, Cell{X: 15, Y: 10}.Manhattan(Cell{X: 20, Y: 10}))
	assert.Equal(t, 7, Cell{X: 0, Y: 0}.Manhattan(Cell{X: -3, Y: 4}))
}

func TestCellSetNil(t *testing.T) {
	var s CellSet
	assert.False(t, s.Has(Cell{}))
}
