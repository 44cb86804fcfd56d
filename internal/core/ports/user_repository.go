package ports

import (
	"context"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

// UserRepository is the credential store contract. Uniqueness of username
// and email is enforced by the store itself; Insert reports a violation as
// domain.ErrDuplicateUsername or domain.ErrDuplicateEmail even when the
// service-level pre-checks were raced past.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
