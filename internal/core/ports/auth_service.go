package ports

import (
	"context"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// AuthService issues and honours stateless session tokens.
type AuthService interface {
	// Register creates an account and returns a signed token for it.
	Register(ctx context.Context, email, password, role string) (string, error)
	// Login verifies credentials and returns a freshly signed token.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile returns the account behind an authenticated identity.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
