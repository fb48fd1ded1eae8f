/*
Package maze generates perfect rectangular mazes.

A maze is built on a logical width x height grid of cells. A randomized
backtracking walk decides which walls between neighboring cells to remove,
producing a spanning tree, so exactly one path joins any two cells.

The result is rendered into a physical tile grid where each cell occupies a
2x2 block separated by 1-wide wall lines inside a solid border. A single exit
is opened on the border and an entry is placed in the corner diagonally
opposite the exit.
*/
package maze

import (
	"errors"
	"math/rand"
	"time"
)

const (
	CellSize = 2 // Tiles per side of a cell block
	WallSize = 1 // Thickness of a wall line in tiles

	minDimension        = 2
	defaultExitAttempts = 64
)

var (
	ErrInvalidDimensions = errors.New("width and height must both be greater than 1")
	ErrNoValidExit       = errors.New("no valid exit on maze border")
	ErrOutOfBounds       = errors.New("position out of grid bounds")
	ErrMalformedGrid     = errors.New("malformed grid")
)

// Rand is the random source a Generator draws from.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Maze bundles a generated grid with its entry and exit tiles.
type Maze struct {
	Grid   *Grid        // Physical wall/passage grid
	Entry  TilePosition // Innermost corner passage opposite the exit
	Exit   TilePosition // Opened border tile
	Seed   int64        // Seed of the random source, meaningful only when Seeded
	Seeded bool         // False when the source was supplied through WithRand
}

// Generator produces mazes of fixed logical dimensions.
// A Generator is not safe for concurrent use.
type Generator struct {
	width        int
	height       int
	maxWidth     int
	maxHeight    int
	exitAttempts int
	seed         int64
	seeded       bool
	rng          Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator's random source so output is reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the generator draw from r.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.seed = 0
		g.seeded = false
		g.rng = r
	}
}

// WithExitAttempts bounds the random exit sampling before falling back to a
// full border scan. Non-positive values skip sampling entirely.
func WithExitAttempts(n int) Option {
	return func(g *Generator) {
		g.exitAttempts = max(n, 0)
	}
}

// New creates a Generator for a width x height maze.
func New(width, height int, opts ...Option) (*Generator, error) {
	if width < minDimension || height < minDimension {
		return nil, ErrInvalidDimensions
	}

	maxWidth, maxHeight := Dimensions(width, height)
	g := &Generator{
		width:        width,
		height:       height,
		maxWidth:     maxWidth,
		maxHeight:    maxHeight,
		exitAttempts: defaultExitAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.seed = time.Now().UnixNano()
		g.seeded = true
		g.rng = rand.New(rand.NewSource(g.seed))
	}

	return g, nil
}

// Width returns the logical width.
func (g *Generator) Width() int {
	return g.width
}

// Height returns the logical height.
func (g *Generator) Height() int {
	return g.height
}

// Generate builds a new maze. Each call consumes the random source, so
// successive calls on one Generator yield different mazes.
func (g *Generator) Generate() (*Maze, error) {
	grid := newGrid(g.width, g.height)
	for _, pair := range g.traverse() {
		grid.carve(pair.From, pair.To)
	}

	exit, err := g.placeExit(grid)
	if err != nil {
		return nil, err
	}

	return &Maze{
		Grid:   grid,
		Entry:  g.placeEntry(exit),
		Exit:   exit,
		Seed:   g.seed,
		Seeded: g.seeded,
	}, nil
}
