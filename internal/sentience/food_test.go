package sentience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelocateAvoidsOccupied(t *testing.T) {
	g := NewGrid(6, 4)
	spawner := NewFoodSpawner(g, NewSource(3))
	occupied := NewCellSet(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 0}, Cell{X: 2, Y: 0}, Cell{X: 3, Y: 3})

	for i := 0; i < 200; i++ {
		c, ok := spawner.Relocate(occupied)
		require.True(t, ok)
		assert.True(t, g.Contains(c), "%s outside grid", c)
		assert.False(t, occupied.Has(c), "%s is occupied", c)
	}
}

func TestRelocateLastFreeCell(t *testing.T) {
	g := NewGrid(3, 3)
	occupied := NewCellSet()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			occupied.Add(Cell{X: x, Y: y})
		}
	}

	spawner := NewFoodSpawner(g, NewSource(1))
	c, ok := spawner.Relocate(occupied)
	assert.False(t, ok)
	assert.Equal(t, OffGrid, c)

	delete(occupied, Cell{X: 1, Y: 2})
	c, ok = spawner.Relocate(occupied)
	require.True(t, ok)
	assert.Equal(t, Cell{X: 1, Y: 2}, c)
}
