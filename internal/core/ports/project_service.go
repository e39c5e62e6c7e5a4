package ports

import (
	"context"
	"time"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// UserRef is a resolved creator/assignee reference exposed in list views.
type UserRef struct {
	ID    string
	Email string
}

// ProjectSummary is the list view of a project with its creator resolved.
type ProjectSummary struct {
	ID          string
	Name        string
	Description string
	CreatedBy   UserRef
	CreatedAt   time.Time
}

// ProjectUpdate carries a partial update. An empty string means "not
// supplied": the stored value is left untouched.
type ProjectUpdate struct {
	Name        string
	Description string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, actor domain.Identity, name, description string) (*domain.Project, error)
	List(ctx context.Context) ([]ProjectSummary, error)
	Update(ctx context.Context, actor domain.Identity, id string, in ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}
