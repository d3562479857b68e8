package database

import (
	"context"
	"testing"
	"time"

	"miniblog/internal/core/domain"
)

func seedUser(t *testing.T, db *DB, username string) *domain.User {
	t.Helper()

	user := domain.NewUser(username, "h")
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func TestPostRepositoryCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "alice")

	post := domain.NewPost(author.ID, "Hello", "First post")
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	if post.ID == 0 {
		t.Fatal("expected Create to fill in the generated id")
	}

	posts, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	got := posts[0]
	if got.Title != "Hello" || got.Body != "First post" {
		t.Errorf("unexpected post content: %+v", got)
	}
	if got.AuthorID != author.ID {
		t.Errorf("expected author id %d, got %d", author.ID, got.AuthorID)
	}
	if got.AuthorName != "alice" {
		t.Errorf("expected author name alice, got %s", got.AuthorName)
	}
}

func TestPostRepositoryListAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "bob")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Inserted out of order on purpose.
	for _, p := range []struct {
		title string
		at    time.Time
	}{
		{"middle", base.Add(time.Hour)},
		{"oldest", base},
		{"newest", base.Add(2 * time.Hour)},
	} {
		post := &domain.Post{Title: p.title, Body: "b", CreatedAt: p.at, AuthorID: author.ID}
		if err := repo.Create(ctx, post); err != nil {
			t.Fatalf("failed to create %s: %v", p.title, err)
		}
	}

	posts, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}

	want := []string{"newest", "middle", "oldest"}
	if len(posts) != len(want) {
		t.Fatalf("expected %d posts, got %d", len(want), len(posts))
	}
	for i, title := range want {
		if posts[i].Title != title {
			t.Errorf("posts[%d]: expected %s, got %s", i, title, posts[i].Title)
		}
	}
}

func TestPostRepositoryListAllEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	posts, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("failed to list posts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestPostRepositoryRejectsUnknownAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	post := domain.NewPost(999, "orphan", "no such author")
	if err := repo.Create(context.Background(), post); err == nil {
		t.Fatal("expected foreign key violation for unknown author")
	}
}
