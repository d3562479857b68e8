package service

import (
	"context"
	"fmt"
	"strings"

	"miniblog/internal/core/domain"
	"miniblog/internal/core/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create persists a post for the given author. The caller is responsible for
// having authenticated the author; title and body must be non-empty after
// trimming.
func (s *PostService) Create(ctx context.Context, authorID int64, title, body string) (*domain.Post, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, ErrEmptyField
	}

	post := domain.NewPost(authorID, title, body)
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// ListAll returns every post, most recent first.
func (s *PostService) ListAll(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
