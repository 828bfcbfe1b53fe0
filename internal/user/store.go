package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

type Store interface {
	// Create persists a new user. ErrUsernameTaken when the username is
	// already registered; uniqueness is enforced by the store.
	Create(ctx context.Context, u User) error
	FindByUsername(ctx context.Context, username string) (User, error)
}
