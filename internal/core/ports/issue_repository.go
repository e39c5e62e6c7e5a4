package ports

import (
	"context"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// IssueRepository defines persistence operations for issues.
type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) (*domain.Issue, error)
	FindByID(ctx context.Context, id string) (*domain.Issue, error)
	FindByProject(ctx context.Context, projectID string) ([]*domain.Issue, error)
	// Update applies only the supplied fields and returns the updated
	// document. Keys are domain field names ("title", "description",
	// "status", "assignedTo").
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Issue, error)
	Delete(ctx context.Context, id string) error
}
