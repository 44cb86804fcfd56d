package service

import (
	"context"
	"time"

	"github.com/usermanager/user-management-api/internal/core/domain"
	"github.com/usermanager/user-management-api/internal/core/ports"
)

// UserService implements the protected CRUD operations over user records.
// Creation is not offered here: a record without credentials would violate
// the non-empty password hash invariant, so records only enter the store
// through AuthService.SignUp.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.PublicProfile, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Public())
	}
	return profiles, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.PublicProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

// Update replaces the mutable profile fields. Username, role, and password
// hash are carried over unchanged, as is CreatedAt.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.PublicProfile, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Dob = in.Dob
	existing.Address = in.Address
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	profile := updated.Public()
	return &profile, nil
}

// Delete removes the record and returns the projection of what was deleted.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.PublicProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}
