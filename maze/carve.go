package maze

// CarvePair is one spanning-tree edge: two adjacent cells whose separating
// wall is removed.
type CarvePair struct {
	From CellPosition
	To   CellPosition
}

// carve opens the wall segment between adjacent cells a and b.
// Adjacency is the caller's responsibility.
func (g *Grid) carve(a, b CellPosition) {
	pa, pb := a.anchor(), b.anchor()

	switch {
	case pa.Y < pb.Y: // b is below a
		for x := pa.X; x < pa.X+CellSize; x++ {
			g.set(TilePosition{X: x, Y: pb.Y - 1}, Passage)
		}
	case pa.Y > pb.Y: // b is above a
		for x := pa.X; x < pa.X+CellSize; x++ {
			g.set(TilePosition{X: x, Y: pa.Y - 1}, Passage)
		}
	case pa.X < pb.X: // b is right of a
		for y := pa.Y; y < pa.Y+CellSize; y++ {
			g.set(TilePosition{X: pb.X - 1, Y: y}, Passage)
		}
	default: // b is left of a
		for y := pa.Y; y < pa.Y+CellSize; y++ {
			g.set(TilePosition{X: pa.X - 1, Y: y}, Passage)
		}
	}
}
