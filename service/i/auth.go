package i

import (
	"context"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/google/uuid"
)

// Authenticator registers users and signs them in.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*dmn.User, error)
	SignIn(ctx context.Context, username, password string) (*dmn.User, string, error)

	// User returns the account with id, or dmn.ErrUserNotFound.
	User(ctx context.Context, id uuid.UUID) (*dmn.User, error)
}
