package ports

import (
	"context"
	"time"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// UpdateUserInput carries the mutable profile fields. Username, role, and
// password cannot be changed through this path.
type UpdateUserInput struct {
	Name    string
	Email   string
	Dob     time.Time
	Address string
}

type UserService interface {
	List(ctx context.Context) ([]domain.PublicProfile, error)
	Get(ctx context.Context, id string) (*domain.PublicProfile, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.PublicProfile, error)
	Delete(ctx context.Context, id string) (*domain.PublicProfile, error)
}
