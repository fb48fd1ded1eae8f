package maze

// maxExitWallNeighbors is the most walls an exit may touch before it is
// considered to open into a dead pocket instead of the maze interior.
const maxExitWallNeighbors = 2

// borderTiles enumerates the four edges of the physical grid.
// Corners appear twice; they are never valid exits.
func (g *Generator) borderTiles() []TilePosition {
	tiles := make([]TilePosition, 0, 2*(g.maxWidth+g.maxHeight))
	for y := 0; y < g.maxHeight; y++ {
		tiles = append(tiles,
			TilePosition{X: 0, Y: y},
			TilePosition{X: g.maxWidth - 1, Y: y},
		)
	}
	for x := 0; x < g.maxWidth; x++ {
		tiles = append(tiles,
			TilePosition{X: x, Y: 0},
			TilePosition{X: x, Y: g.maxHeight - 1},
		)
	}
	return tiles
}

// isValidExit reports whether p can be opened as the exit of grid.
func (g *Generator) isValidExit(grid *Grid, p TilePosition) bool {
	if !p.onBorder(g.maxWidth, g.maxHeight) || p.isCorner(g.maxWidth, g.maxHeight) {
		return false
	}
	return grid.wallNeighbors(p) <= maxExitWallNeighbors
}

// placeExit picks a valid border tile, opens it and returns it.
// Random sampling is tried first; once the attempts run out the border is
// scanned in order.
func (g *Generator) placeExit(grid *Grid) (TilePosition, error) {
	candidates := g.borderTiles()

	for attempt := 0; attempt < g.exitAttempts; attempt++ {
		c := candidates[g.rng.Intn(len(candidates))]
		if g.isValidExit(grid, c) {
			grid.set(c, Passage)
			return c, nil
		}
	}

	for _, c := range candidates {
		if g.isValidExit(grid, c) {
			grid.set(c, Passage)
			return c, nil
		}
	}

	return TilePosition{}, ErrNoValidExit
}

// quadrant classifies p into one of the four quadrants split at the grid
// midpoints. Tiles on a midpoint line belong to the lower-numbered quadrant.
func (g *Generator) quadrant(p TilePosition) int {
	midX, midY := g.maxWidth/2, g.maxHeight/2
	switch {
	case p.X <= midX && p.Y <= midY:
		return 1
	case p.X <= midX && p.Y >= midY:
		return 2
	case p.X > midX && p.Y <= midY:
		return 3
	default:
		return 4
	}
}

// placeEntry returns the innermost corner passage of the quadrant
// diagonally opposite the exit.
func (g *Generator) placeEntry(exit TilePosition) TilePosition {
	switch g.quadrant(exit) {
	case 1:
		return TilePosition{X: g.maxWidth - 2, Y: g.maxHeight - 2}
	case 2:
		return TilePosition{X: g.maxWidth - 2, Y: 1}
	case 3:
		return TilePosition{X: 1, Y: g.maxHeight - 2}
	default:
		return TilePosition{X: 1, Y: 1}
	}
}
