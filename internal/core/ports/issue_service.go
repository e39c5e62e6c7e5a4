package ports

import (
	"context"
	"time"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// CreateIssueInput carries the data needed to file a new issue.
type CreateIssueInput struct {
	Title       string
	Description string
	ProjectID   string
	AssignedTo  string // optional
}

// IssueUpdate carries a partial update. An empty string means "not
// supplied": the stored value is left untouched.
type IssueUpdate struct {
	Title       string
	Description string
	Status      string
	AssignedTo  string
}

// IssueSummary is the list view of an issue with creator and assignee
// resolved to their emails.
type IssueSummary struct {
	ID          string
	Title       string
	Description string
	Priority    domain.IssuePriority
	Status      domain.IssueStatus
	ProjectID   string
	CreatedBy   UserRef
	AssignedTo  *UserRef
	CreatedAt   time.Time
}

// IssueService defines use-case operations for issues.
type IssueService interface {
	Create(ctx context.Context, actor domain.Identity, in CreateIssueInput) (*domain.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]IssueSummary, error)
	Update(ctx context.Context, actor domain.Identity, id string, in IssueUpdate) (*domain.Issue, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
}
