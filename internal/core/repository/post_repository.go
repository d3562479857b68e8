package repository

import (
	"context"

	"miniblog/internal/core/domain"
)

type PostRepository interface {
	// Create persists the post and fills in its generated id.
	Create(ctx context.Context, post *domain.Post) error

	// ListAll returns every post ordered by created_at descending, each with
	// the author's username joined in.
	ListAll(ctx context.Context) ([]*domain.Post, error)
}
