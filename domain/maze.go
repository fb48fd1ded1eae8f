package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound      = errors.New("maze not found")
	ErrDimensionTooLarge = errors.New("maze dimension too large")
	ErrCorruptMazeRecord = errors.New("stored maze is corrupt")
)

// MazeRecord is a generated maze as stored and served by the API.
// Anonymous previews carry uuid.Nil as owner.
type MazeRecord struct {
	ID        uuid.UUID         `bson:"_id"`
	OwnerID   uuid.UUID         `bson:"ownerId"`
	Width     int               `bson:"width"`
	Height    int               `bson:"height"`
	Seed      int64             `bson:"seed"`
	Rows      []string          `bson:"rows"`
	Entry     maze.TilePosition `bson:"entry"`
	Exit      maze.TilePosition `bson:"exit"`
	CreatedAt time.Time         `bson:"createdAt"`
}

// NewMazeRecord wraps a generated maze for the given owner.
func NewMazeRecord(owner uuid.UUID, width, height int, m *maze.Maze) *MazeRecord {
	return &MazeRecord{
		ID:        uuid.New(),
		OwnerID:   owner,
		Width:     width,
		Height:    height,
		Seed:      m.Seed,
		Rows:      m.Grid.Rows(),
		Entry:     m.Entry,
		Exit:      m.Exit,
		CreatedAt: time.Now().UTC(),
	}
}

// Maze rebuilds the maze held by the record. Every failure wraps
// ErrCorruptMazeRecord.
func (r *MazeRecord) Maze() (*maze.Maze, error) {
	grid, err := maze.GridFromRows(r.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptMazeRecord, err)
	}

	maxWidth, maxHeight := maze.Dimensions(r.Width, r.Height)
	if grid.Width() != maxWidth || grid.Height() != maxHeight {
		return nil, fmt.Errorf("%w: got %dx%d tiles, want %dx%d", ErrCorruptMazeRecord, grid.Width(), grid.Height(), maxWidth, maxHeight)
	}
	if !grid.IsPassage(r.Entry) || !grid.IsPassage(r.Exit) {
		return nil, fmt.Errorf("%w: entry %v or exit %v is not a passage", ErrCorruptMazeRecord, r.Entry, r.Exit)
	}

	return &maze.Maze{
		Grid:   grid,
		Entry:  r.Entry,
		Exit:   r.Exit,
		Seed:   r.Seed,
		Seeded: true,
	}, nil
}
