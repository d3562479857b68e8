package repository

import (
	"context"
	"errors"

	"miniblog/internal/core/domain"
)

// ErrNotFound is returned by Find* methods when no row matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned by Create when a unique constraint rejects the row.
var ErrDuplicate = errors.New("duplicate record")

type UserRepository interface {
	// Create persists the user and fills in its generated id.
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
