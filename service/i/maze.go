package i

import (
	"context"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/google/uuid"
)

// MazeService generates mazes and manages the saved ones.
type MazeService interface {
	// Preview generates a maze without storing it. A nil seed picks one.
	Preview(width, height int, seed *int64) (*dmn.MazeRecord, error)

	// Create generates a maze for owner and stores it.
	Create(ctx context.Context, owner uuid.UUID, width, height int, seed *int64) (*dmn.MazeRecord, error)

	// ByID returns a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Recent returns up to n of the most recently created mazes.
	Recent(ctx context.Context, n int64) ([]*dmn.MazeRecord, error)

	// ByOwner returns up to limit mazes of owner, newest first.
	ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.MazeRecord, error)

	// Delete removes a maze owned by owner.
	Delete(ctx context.Context, id, owner uuid.UUID) error
}
