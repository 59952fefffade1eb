package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mercadito/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	byID       map[int64]*domain.User
	byUsername map[string]*domain.User
	nextID     int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:       make(map[int64]*domain.User),
		byUsername: make(map[string]*domain.User),
		nextID:     1,
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.byID[copy.ID] = copy
	r.byUsername[copy.Username] = copy
	return cloneUser(copy), nil
}

func (r *stubUserRepo) delete(id int64) {
	if u, ok := r.byID[id]; ok {
		delete(r.byUsername, u.Username)
		delete(r.byID, id)
	}
}

func seedUser(t *testing.T, repo *stubUserRepo, username string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestTokenService_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "alice")
	svc := NewTokenService(repo, "secret", time.Hour)

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("expected user id %d, got %d", user.ID, resolved.ID)
	}
	if resolved.Username != "alice" {
		t.Fatalf("unexpected username: %s", resolved.Username)
	}
}

func TestTokenService_ResolveReturnsCurrentState(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "bob")
	svc := NewTokenService(repo, "secret", time.Hour)

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Mutate the stored record after issuance; Resolve must reflect it.
	repo.byID[user.ID].PasswordHash = "rotated"

	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if resolved.PasswordHash != "rotated" {
		t.Fatalf("expected freshly fetched record, got snapshot")
	}
}

func TestTokenService_Expired(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "carol")
	svc := NewTokenService(repo, "secret", -time.Minute)

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_BadSignature(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "dave")

	issuer := NewTokenService(repo, "other-key", time.Hour)
	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	verifier := NewTokenService(repo, "secret", time.Hour)
	if _, err := verifier.Resolve(context.Background(), token); !errors.Is(err, domain.ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewTokenService(repo, "secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_UnknownSubject(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "eve")
	svc := NewTokenService(repo, "secret", time.Hour)

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Deleting the account invalidates the still-signed, unexpired token.
	repo.delete(user.ID)

	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}
