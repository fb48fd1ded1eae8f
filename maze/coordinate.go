package maze

// CellPosition is a position on the logical grid, one unit per maze cell.
type CellPosition struct {
	X int `json:"x" bson:"x"` // Column of the cell
	Y int `json:"y" bson:"y"` // Row of the cell
}

// TilePosition is a position on the physical wall/passage grid.
type TilePosition struct {
	X int `json:"x" bson:"x"` // Column of the tile
	Y int `json:"y" bson:"y"` // Row of the tile
}

// neighborOffsets lists the four directions in enumeration order: up, down, left, right.
var neighborOffsets = [4]struct{ dx, dy int }{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// Adjacent returns the cells directly above, below, left and right of c that
// lie inside a width x height grid, in that order.
func (c CellPosition) Adjacent(width, height int) []CellPosition {
	result := make([]CellPosition, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := CellPosition{X: c.X + d.dx, Y: c.Y + d.dy}
		if n.X >= 0 && n.X < width && n.Y >= 0 && n.Y < height {
			result = append(result, n)
		}
	}
	return result
}

// UnvisitedAdjacent returns Adjacent filtered by exclusion from visited.
// Enumeration order is the same as Adjacent.
func (c CellPosition) UnvisitedAdjacent(width, height int, visited map[CellPosition]struct{}) []CellPosition {
	result := make([]CellPosition, 0, len(neighborOffsets))
	for _, n := range c.Adjacent(width, height) {
		if _, seen := visited[n]; !seen {
			result = append(result, n)
		}
	}
	return result
}

// anchor maps a cell to the top-left tile of its block.
func (c CellPosition) anchor() TilePosition {
	return TilePosition{
		X: c.X*(CellSize+WallSize) + 1,
		Y: c.Y*(CellSize+WallSize) + 1,
	}
}

// Adjacent returns the in-bounds 4-neighbors of t on a maxWidth x maxHeight grid.
func (t TilePosition) Adjacent(maxWidth, maxHeight int) []TilePosition {
	result := make([]TilePosition, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := TilePosition{X: t.X + d.dx, Y: t.Y + d.dy}
		if n.X >= 0 && n.X < maxWidth && n.Y >= 0 && n.Y < maxHeight {
			result = append(result, n)
		}
	}
	return result
}

// onBorder reports whether t lies on the outer edge of a maxWidth x maxHeight grid.
func (t TilePosition) onBorder(maxWidth, maxHeight int) bool {
	return t.X == 0 || t.Y == 0 || t.X == maxWidth-1 || t.Y == maxHeight-1
}

// isCorner reports whether t is one of the four outer corners.
func (t TilePosition) isCorner(maxWidth, maxHeight int) bool {
	return (t.X == 0 || t.X == maxWidth-1) && (t.Y == 0 || t.Y == maxHeight-1)
}
