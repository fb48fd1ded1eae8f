package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions(t *testing.T) {
	w, h := Dimensions(3, 3)
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	w, h = Dimensions(2, 4)
	assert.Equal(t, 7, w)
	assert.Equal(t, 13, h)

	// Cells, inner wall lines and the two border tiles of each axis.
	for n := minDimension; n <= 12; n++ {
		w, _ := Dimensions(n, n)
		assert.Equal(t, n*2+(n-1)+2, w, "width %d", n)
	}
}

func TestNewGridLayout(t *testing.T) {
	g := newGrid(3, 2)
	require.Equal(t, 10, g.Width())
	require.Equal(t, 7, g.Height())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			want := Passage
			if x%(CellSize+WallSize) == 0 || y%(CellSize+WallSize) == 0 {
				want = Wall
			}
			assert.Equalf(t, want, g.at(TilePosition{x, y}), "tile (%d,%d)", x, y)
		}
	}
}

func TestGridTile(t *testing.T) {
	g := newGrid(2, 2)

	tile, err := g.Tile(TilePosition{1, 1})
	require.NoError(t, err)
	assert.Equal(t, Passage, tile)

	tile, err = g.Tile(TilePosition{0, 3})
	require.NoError(t, err)
	assert.Equal(t, Wall, tile)

	_, err = g.Tile(TilePosition{-1, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.Tile(TilePosition{0, g.Height()})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.True(t, g.IsPassage(TilePosition{2, 2}))
	assert.False(t, g.IsPassage(TilePosition{3, 3}))
	assert.False(t, g.IsPassage(TilePosition{100, 100}))
}

func TestGridRows(t *testing.T) {
	g := newGrid(2, 2)
	want := []string{
		"#######",
		"#  #  #",
		"#  #  #",
		"#######",
		"#  #  #",
		"#  #  #",
		"#######",
	}
	assert.Equal(t, want, g.Rows())
	assert.Equal(t, "#######\n#  #  #\n", g.String()[:16])
}

func TestGridFromRows(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		g := newGrid(3, 2)
		g.carve(CellPosition{0, 0}, CellPosition{1, 0})

		rebuilt, err := GridFromRows(g.Rows())
		require.NoError(t, err)
		assert.Equal(t, g, rebuilt)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := GridFromRows(nil)
		assert.ErrorIs(t, err, ErrMalformedGrid)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := GridFromRows([]string{"###", "# "})
		assert.ErrorIs(t, err, ErrMalformedGrid)
	})

	t.Run("unknown glyph", func(t *testing.T) {
		_, err := GridFromRows([]string{"###", "#E#", "###"})
		assert.ErrorIs(t, err, ErrMalformedGrid)
	})
}

func TestGridWallNeighbors(t *testing.T) {
	g := newGrid(3, 3)

	assert.Equal(t, 2, g.wallNeighbors(TilePosition{1, 0}))
	assert.Equal(t, 3, g.wallNeighbors(TilePosition{3, 0}))
	assert.Equal(t, 2, g.wallNeighbors(TilePosition{0, 0}))
	assert.Equal(t, 2, g.wallNeighbors(TilePosition{4, 4}))
}
