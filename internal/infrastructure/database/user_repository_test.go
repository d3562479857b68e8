package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"miniblog/internal/core/domain"
	"miniblog/internal/core/repository"
)

// newTestDB opens an in-memory SQLite store with the schema applied.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open("", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := domain.NewUser("alice", "$2a$10$hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected Create to fill in the generated id")
	}

	byName, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("failed to find by username: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("expected id %d, got %d", user.ID, byName.ID)
	}
	if byName.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected password hash: %s", byName.PasswordHash)
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to find by id: %v", err)
	}
	if byID.Username != "alice" {
		t.Errorf("expected username alice, got %s", byID.Username)
	}
}

func TestUserRepositoryFindMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByUsername(ctx, "nobody"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 12345); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositoryUsernameUniqueConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, domain.NewUser("bob", "h1")); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	err := repo.Create(ctx, domain.NewUser("bob", "h2"))
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The original record is untouched.
	existing, err := repo.FindByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if existing.PasswordHash != "h1" {
		t.Errorf("expected original hash h1, got %s", existing.PasswordHash)
	}
}

func TestUserRepositoryUsernameIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, domain.NewUser("Carol", "h")); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if _, err := repo.FindByUsername(ctx, "carol"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected exact-match lookup to miss, got %v", err)
	}
}

func TestUserRepositoryList(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, name := range []string{"zoe", "adam", "mia"} {
		u := &domain.User{Username: name, PasswordHash: "h", CreatedAt: time.Now().UTC()}
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	want := []string{"adam", "mia", "zoe"}
	for i, u := range users {
		if u.Username != want[i] {
			t.Errorf("users[%d]: expected %s, got %s", i, want[i], u.Username)
		}
	}
}
