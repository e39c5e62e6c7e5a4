package ports

import (
	"context"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs resolves a set of user ids in one query. Unknown ids are
	// simply absent from the result map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}
