package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"miniblog/internal/core/domain"
	"miniblog/internal/core/repository"
)

const SessionTTL = 7 * 24 * time.Hour

// SessionService issues and resolves the signed client-held session token.
// The token carries nothing but the authenticated user's id (plus registered
// claims); it is tamper-evident, not encrypted.
type SessionService struct {
	userRepo repository.UserRepository
	secret   []byte
}

func NewSessionService(userRepo repository.UserRepository, secret string) *SessionService {
	return &SessionService{userRepo: userRepo, secret: []byte(secret)}
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Issue signs a session token for the given user id.
func (s *SessionService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			Issuer:    "miniblog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Resolve maps a presented token back to its user. A missing, malformed,
// tampered, or expired token resolves to (nil, nil), as does a valid token
// whose user id no longer exists: all of these are simply anonymous.
func (s *SessionService) Resolve(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "" {
		return nil, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok {
		return nil, nil
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}
	return user, nil
}
