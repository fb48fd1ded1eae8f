package maze

import (
	"fmt"
	"strings"
)

// Tile is the state of a single physical grid position.
type Tile uint8

const (
	Wall Tile = iota
	Passage
)

const (
	wallGlyph    = '#'
	passageGlyph = ' '
)

// String returns the glyph used for t in ASCII renderings.
func (t Tile) String() string {
	if t == Passage {
		return string(passageGlyph)
	}
	return string(wallGlyph)
}

// Grid is the physical wall/passage grid of a maze.
// Tiles are stored row-major.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// Dimensions returns the physical grid size for a width x height logical grid.
func Dimensions(width, height int) (maxWidth, maxHeight int) {
	maxWidth = width*CellSize + (width-1)*WallSize + 2*WallSize
	maxHeight = height*CellSize + (height-1)*WallSize + 2*WallSize
	return maxWidth, maxHeight
}

// newGrid builds the uncarved grid: every cell block is open, every wall
// line between blocks and the whole border are solid.
func newGrid(width, height int) *Grid {
	maxWidth, maxHeight := Dimensions(width, height)
	g := &Grid{
		width:  maxWidth,
		height: maxHeight,
		tiles:  make([]Tile, maxWidth*maxHeight),
	}
	for i := range g.tiles {
		g.tiles[i] = Passage
	}

	// Separators between cell blocks.
	for x := WallSize*2 + 1; x < maxWidth-WallSize; x += CellSize + WallSize {
		g.fillColumn(x, Wall)
	}
	for y := WallSize*2 + 1; y < maxHeight-WallSize; y += CellSize + WallSize {
		g.fillRow(y, Wall)
	}

	// Outer boundary.
	g.fillColumn(0, Wall)
	g.fillColumn(maxWidth-1, Wall)
	g.fillRow(0, Wall)
	g.fillRow(maxHeight-1, Wall)

	return g
}

// GridFromRows rebuilds a grid from the output of Rows.
func GridFromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedGrid)
	}

	g := &Grid{
		width:  len(rows[0]),
		height: len(rows),
		tiles:  make([]Tile, len(rows[0])*len(rows)),
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedGrid, y, len(row), g.width)
		}
		for x, glyph := range []byte(row) {
			switch glyph {
			case wallGlyph:
				g.tiles[y*g.width+x] = Wall
			case passageGlyph:
				g.tiles[y*g.width+x] = Passage
			default:
				return nil, fmt.Errorf("%w: unexpected glyph %q at (%d,%d)", ErrMalformedGrid, glyph, x, y)
			}
		}
	}
	return g, nil
}

// Width returns the number of tile columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of tile rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether p lies inside the grid.
func (g *Grid) InBound(p TilePosition) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Tile returns the state at p.
func (g *Grid) Tile(p TilePosition) (Tile, error) {
	if !g.InBound(p) {
		return Wall, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	return g.at(p), nil
}

// IsPassage reports whether p is in bounds and open.
func (g *Grid) IsPassage(p TilePosition) bool {
	return g.InBound(p) && g.at(p) == Passage
}

// Rows renders the grid one string per row, '#' for walls and ' ' for passages.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		b.Grow(g.width)
		for x := 0; x < g.width; x++ {
			b.WriteString(g.tiles[y*g.width+x].String())
		}
		rows[y] = b.String()
	}
	return rows
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}

func (g *Grid) at(p TilePosition) Tile {
	return g.tiles[p.Y*g.width+p.X]
}

func (g *Grid) set(p TilePosition, t Tile) {
	g.tiles[p.Y*g.width+p.X] = t
}

func (g *Grid) fillRow(y int, t Tile) {
	for x := 0; x < g.width; x++ {
		g.tiles[y*g.width+x] = t
	}
}

func (g *Grid) fillColumn(x int, t Tile) {
	for y := 0; y < g.height; y++ {
		g.tiles[y*g.width+x] = t
	}
}

// wallNeighbors counts the in-bounds 4-neighbors of p that are walls.
func (g *Grid) wallNeighbors(p TilePosition) int {
	walls := 0
	for _, n := range p.Adjacent(g.width, g.height) {
		if g.at(n) == Wall {
			walls++
		}
	}
	return walls
}
