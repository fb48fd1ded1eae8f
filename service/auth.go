package service

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/beka-birhanu/backtrack-maze/service/i"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const tokenLifetime = 24 * time.Hour

// Auth registers users and issues tokens for them.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    logrus.FieldLogger
}

// NewAuthService creates an Auth service.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer, logger logrus.FieldLogger) (*Auth, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service needs a user repository and a tokenizer")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Register creates a new user. Usernames are unique.
func (a *Auth) Register(ctx context.Context, username, password string) (*dmn.User, error) {
	if _, err := a.userRepo.ByUsername(ctx, username); err == nil {
		return nil, dmn.ErrUsernameConflict
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return nil, err
	}

	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	a.logger.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// SignIn checks the credentials and returns the user with a fresh token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dmn.ErrUserNotFound) {
			return nil, "", dmn.ErrInvalidCredential
		}
		return nil, "", err
	}

	if !user.VerifyPassword(password) {
		return nil, "", dmn.ErrInvalidCredential
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		i.ClaimUserID:   user.ID.String(),
		i.ClaimUsername: user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// User looks up a registered account by ID.
func (a *Auth) User(ctx context.Context, id uuid.UUID) (*dmn.User, error) {
	return a.userRepo.ByID(ctx, id)
}
