package rules

/*
Next applies Conway's Game of Life rules to determine whether a cell is alive in the next generation.

A dead cell with exactly 3 neighbors is born, a live cell survives with 2 or 3
neighbors, and every other cell keeps or falls into the dead state.
*/
func Next(alive bool, neighbors uint32) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
