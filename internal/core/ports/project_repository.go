package ports

import (
	"context"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]*domain.Project, error)
	// Update applies only the supplied fields and returns the updated
	// document. Keys are domain field names ("name", "description").
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
