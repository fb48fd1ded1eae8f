package maze

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidDimensions(t *testing.T) {
	dims := []struct{ width, height int }{
		{1, 5}, {5, 1}, {3, 0}, {0, 0}, {-2, 3}, {1, 1},
	}

	for _, d := range dims {
		t.Run(fmt.Sprintf("%dx%d", d.width, d.height), func(t *testing.T) {
			g, err := New(d.width, d.height)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, g)
		})
	}
}

func TestGenerateThreeByThree(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g, err := New(3, 3, WithSeed(seed))
		require.NoError(t, err)

		m, err := g.Generate()
		require.NoError(t, err)
		require.Equal(t, 10, m.Grid.Width())
		require.Equal(t, 10, m.Grid.Height())

		assertMazeProperties(t, g, m)
	}
}

func TestGenerateRectangular(t *testing.T) {
	sizes := []struct{ width, height int }{{2, 2}, {2, 9}, {12, 3}, {20, 20}}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.width, size.height), func(t *testing.T) {
			for seed := int64(0); seed < 10; seed++ {
				g, err := New(size.width, size.height, WithSeed(seed))
				require.NoError(t, err)

				m, err := g.Generate()
				require.NoError(t, err)
				assertMazeProperties(t, g, m)
			}
		})
	}
}

func TestGenerateReproducible(t *testing.T) {
	a, err := New(11, 7, WithSeed(42))
	require.NoError(t, err)
	b, err := New(11, 7, WithSeed(42))
	require.NoError(t, err)

	ma, err := a.Generate()
	require.NoError(t, err)
	mb, err := b.Generate()
	require.NoError(t, err)

	assert.Equal(t, ma.Grid.Rows(), mb.Grid.Rows())
	assert.Equal(t, ma.Entry, mb.Entry)
	assert.Equal(t, ma.Exit, mb.Exit)
	assert.Equal(t, int64(42), ma.Seed)
}

func TestGenerateDefaultSeedRecorded(t *testing.T) {
	g, err := New(4, 4)
	require.NoError(t, err)
	m, err := g.Generate()
	require.NoError(t, err)

	replay, err := New(4, 4, WithSeed(m.Seed))
	require.NoError(t, err)
	rm, err := replay.Generate()
	require.NoError(t, err)

	assert.True(t, m.Seeded)
	assert.Equal(t, m.Grid.Rows(), rm.Grid.Rows())
}

func TestGenerateSeededFlag(t *testing.T) {
	tests := []struct {
		name   string
		opt    Option
		seeded bool
	}{
		{name: "zero seed", opt: WithSeed(0), seeded: true},
		{name: "injected source", opt: WithRand(rand.New(rand.NewSource(0))), seeded: false},
		{name: "injected source overrides seed", opt: func(g *Generator) {
			WithSeed(9)(g)
			WithRand(rand.New(rand.NewSource(9)))(g)
		}, seeded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(3, 3, tt.opt)
			require.NoError(t, err)
			m, err := g.Generate()
			require.NoError(t, err)

			assert.Equal(t, tt.seeded, m.Seeded)
			assert.Zero(t, m.Seed)
		})
	}
}

func TestGenerateWithoutExitSampling(t *testing.T) {
	g, err := New(5, 5, WithSeed(7), WithExitAttempts(-3))
	require.NoError(t, err)

	m, err := g.Generate()
	require.NoError(t, err)
	assertMazeProperties(t, g, m)
}

// assertMazeProperties checks the structural guarantees of a generated maze.
func assertMazeProperties(t *testing.T, g *Generator, m *Maze) {
	t.Helper()
	maxWidth, maxHeight := Dimensions(g.Width(), g.Height())

	// Exit sits on the border, never on a corner, touching at most two walls.
	assert.True(t, m.Exit.onBorder(maxWidth, maxHeight), "exit %v not on border", m.Exit)
	assert.False(t, m.Exit.isCorner(maxWidth, maxHeight), "exit %v is a corner", m.Exit)
	assert.LessOrEqual(t, m.Grid.wallNeighbors(m.Exit), maxExitWallNeighbors)
	assert.True(t, m.Grid.IsPassage(m.Exit))

	// Entry is one of the innermost corners, opposite the exit.
	corners := []TilePosition{
		{1, 1}, {1, maxHeight - 2}, {maxWidth - 2, 1}, {maxWidth - 2, maxHeight - 2},
	}
	assert.Contains(t, corners, m.Entry)
	assert.Equal(t, g.placeEntry(m.Exit), m.Entry)
	assert.NotEqual(t, m.Entry, m.Exit)
	assert.True(t, m.Grid.IsPassage(m.Entry))

	// Blocks, one opening per tree edge, and the exit.
	cells := g.Width() * g.Height()
	wantPassages := cells*CellSize*CellSize + (cells-1)*CellSize + 1
	assert.Equal(t, wantPassages, countPassages(m.Grid))

	// A single connected region reaching every cell block.
	region := floodFill(m.Grid, m.Entry)
	assert.Len(t, region, wantPassages)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			anchor := CellPosition{x, y}.anchor()
			assert.Contains(t, region, anchor)
		}
	}
	assert.Contains(t, region, m.Exit)
}

func countPassages(g *Grid) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == Passage {
			n++
		}
	}
	return n
}

func floodFill(g *Grid, from TilePosition) map[TilePosition]struct{} {
	seen := map[TilePosition]struct{}{from: {}}
	queue := []TilePosition{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range p.Adjacent(g.Width(), g.Height()) {
			if _, ok := seen[n]; ok || g.at(n) != Passage {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return seen
}
