package database

import (
	"context"
	"fmt"

	"miniblog/internal/core/domain"
	"miniblog/internal/core/repository"
)

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := r.db.Rebind(`
		INSERT INTO posts (title, body, created_at, author_id)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)
	err := r.db.QueryRowxContext(ctx, query,
		post.Title,
		post.Body,
		post.CreatedAt,
		post.AuthorID,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT p.id, p.title, p.body, p.created_at, p.author_id, u.username AS author_name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`
	var posts []*domain.Post
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
