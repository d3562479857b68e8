package service

import (
	"context"
	"strings"
	"testing"

	"miniblog/internal/core/domain"
	"miniblog/internal/core/repository"
	"miniblog/internal/infrastructure/database"
)

func newSessionEnv(t *testing.T) (*SessionService, repository.UserRepository) {
	t.Helper()

	db, err := database.Open("", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := database.NewUserRepository(db)
	return NewSessionService(repo, "test-secret"), repo
}

func seedSessionUser(t *testing.T, repo repository.UserRepository) *domain.User {
	t.Helper()

	user := domain.NewUser("alice", "h")
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestSessionRoundTrip(t *testing.T) {
	svc, repo := newSessionEnv(t)
	user := seedSessionUser(t, repo)

	token, err := svc.Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("failed to resolve token: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected a user, got anonymous")
	}
	if resolved.ID != user.ID {
		t.Errorf("expected user id %d, got %d", user.ID, resolved.ID)
	}
}

func TestSessionResolveAnonymous(t *testing.T) {
	svc, repo := newSessionEnv(t)
	user := seedSessionUser(t, repo)

	valid, err := svc.Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	otherSecret := NewSessionService(repo, "other-secret")
	foreign, err := otherSecret.Issue(user.ID)
	if err != nil {
		t.Fatalf("failed to issue foreign token: %v", err)
	}

	dangling, err := svc.Issue(999) // valid signature, no such user
	if err != nil {
		t.Fatalf("failed to issue dangling token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not.a.jwt"},
		{"tampered token", tamper(valid)},
		{"token signed with a different secret", foreign},
		{"user id no longer resolves", dangling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := svc.Resolve(context.Background(), tt.token)
			if err != nil {
				t.Fatalf("resolve must not error for %q: %v", tt.name, err)
			}
			if resolved != nil {
				t.Errorf("expected anonymous, got user %d", resolved.ID)
			}
		})
	}
}

// tamper flips a character in the token payload so the signature no longer
// matches.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	payload := parts[1]
	var flipped byte = 'A'
	if payload[0] == 'A' {
		flipped = 'B'
	}
	parts[1] = string(flipped) + payload[1:]
	return strings.Join(parts, ".")
}
