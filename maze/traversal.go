package maze

// borderCells returns every logical cell on the edge of the grid, row-major.
func (g *Generator) borderCells() []CellPosition {
	cells := make([]CellPosition, 0, 2*(g.width+g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x == 0 || y == 0 || x == g.width-1 || y == g.height-1 {
				cells = append(cells, CellPosition{X: x, Y: y})
			}
		}
	}
	return cells
}

// traverse runs an iterative randomized backtracker over the logical grid
// and returns the walls to break, in visiting order.
//
// A cell is pushed as a branch point only when it still has unvisited
// neighbors right after being visited; reaching a dead end pops the stack
// until a cell with unexplored neighbors is found. Reordering these steps
// changes which tree a given seed produces.
func (g *Generator) traverse() []CarvePair {
	total := g.width * g.height
	path := make([]CarvePair, 0, total-1)
	visited := make(map[CellPosition]struct{}, total)
	stack := make([]CellPosition, 0, total)

	candidates := g.borderCells()
	start := candidates[g.rng.Intn(len(candidates))]
	visited[start] = struct{}{}
	stack = append(stack, start)

	last := start
	frontier := start.UnvisitedAdjacent(g.width, g.height, visited)

	for len(visited) < total {
		next := frontier[g.rng.Intn(len(frontier))]
		visited[next] = struct{}{}
		path = append(path, CarvePair{From: last, To: next})
		last = next
		frontier = next.UnvisitedAdjacent(g.width, g.height, visited)

		backtracked := false
		for len(frontier) == 0 && len(stack) > 0 {
			last = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			frontier = last.UnvisitedAdjacent(g.width, g.height, visited)
			backtracked = true
		}
		if backtracked {
			continue
		}
		stack = append(stack, next)
	}

	return path
}
