package service

import (
	"context"
	"testing"
	"time"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

func seedUser(repo *stubUserRepo, id, username string) *domain.User {
	u := &domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhash",
		Name:         "Name " + username,
		Email:        username + "@x.com",
		Role:         domain.RoleUser,
		CreatedAt:    time.Date(2023, 2, 13, 9, 53, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2023, 2, 13, 9, 53, 0, 0, time.UTC),
	}
	repo.users[username] = u
	return u
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "id-1", "alice")
	seedUser(repo, "id-2", "bob")
	svc := NewUserService(repo)

	profiles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
}

func TestUserService_Get(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "id-1", "alice")
	svc := NewUserService(repo)

	profile, err := svc.Get(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if profile.ID != "id-1" || profile.Email != "alice@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	repo := newStubUserRepo()
	created := seedUser(repo, "id-1", "alice")
	svc := NewUserService(repo)

	profile, err := svc.Update(context.Background(), "id-1", ports.UpdateUserInput{
		Name:    "Alice Updated",
		Email:   "new@x.com",
		Address: "1 Main St",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if profile.Name != "Alice Updated" || profile.Email != "new@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	stored := repo.users["alice"]
	if !stored.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt must be preserved, got %v", stored.CreatedAt)
	}
	if !stored.UpdatedAt.After(created.CreatedAt) {
		t.Fatalf("UpdatedAt must be refreshed, got %v", stored.UpdatedAt)
	}
	if stored.Username != "alice" || stored.Role != domain.RoleUser {
		t.Fatalf("username and role must not change: %+v", stored)
	}
	if stored.PasswordHash != created.PasswordHash {
		t.Fatalf("password hash must not change")
	}

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: "x", Email: "x@x.com"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "id-1", "alice")
	svc := NewUserService(repo)

	profile, err := svc.Delete(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if profile.ID != "id-1" {
		t.Fatalf("unexpected deleted profile: %+v", profile)
	}
	if len(repo.users) != 0 {
		t.Fatalf("record not removed")
	}

	if _, err := svc.Delete(context.Background(), "id-1"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
