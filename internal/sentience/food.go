package sentience

// FoodSpawner picks food positions.
type FoodSpawner struct {
	grid Grid
	rng  Source
}

// NewFoodSpawner creates a spawner for the grid.
func NewFoodSpawner(g Grid, rng Source) *FoodSpawner {
	return &FoodSpawner{grid: g, rng: rng}
}

// Relocate returns a uniformly random cell not in occupied. It returns false
// (and OffGrid) when the grid is full.
func (f *FoodSpawner) Relocate(occupied CellSet) (Cell, bool) {
	free := make([]Cell, 0, f.grid.Width()*f.grid.Height())
	for y := 0; y < f.grid.Height(); y++ {
		for x := 0; x < f.grid.Width(); x++ {
			c := Cell{X: x, Y: y}
			if !occupied.Has(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return OffGrid, false
	}
	return free[f.rng.Intn(len(free))], true
}
