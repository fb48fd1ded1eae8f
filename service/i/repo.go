package i

import (
	"context"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// Returns dmn.ErrUsernameConflict when another user holds the username.
	Save(ctx context.Context, user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if no such user exists.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if no such user exists.
	ByUsername(ctx context.Context, username string) (*dmn.User, error)
}

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces a maze record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze by its ID.
	// Returns dmn.ErrMazeNotFound if no such maze exists.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// ByOwner lists up to limit mazes of owner, newest first.
	ByOwner(ctx context.Context, owner uuid.UUID, limit int64) ([]*dmn.MazeRecord, error)

	// Delete removes the maze if it belongs to owner.
	// Returns dmn.ErrMazeNotFound when nothing matched.
	Delete(ctx context.Context, id, owner uuid.UUID) error
}
