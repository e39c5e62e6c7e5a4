package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/devflow/bugtracker/internal/core/domain"
	"github.com/devflow/bugtracker/internal/core/ports"
)

// IssueService implements issue CRUD with ownership checks and best-effort
// referential validation of the project and assignee.
type IssueService struct {
	issues   ports.IssueRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewIssueService(issues ports.IssueRepository, projects ports.ProjectRepository, users ports.UserRepository, log zerolog.Logger) *IssueService {
	return &IssueService{issues: issues, projects: projects, users: users, log: log}
}

// Create files a new issue against an existing project. Status defaults to
// open and priority to low. There is no transaction around the project
// check, so the validation is best effort.
func (s *IssueService) Create(ctx context.Context, actor domain.Identity, in ports.CreateIssueInput) (*domain.Issue, error) {
	if in.Title == "" || in.Description == "" || in.ProjectID == "" {
		return nil, domain.NewError(http.StatusBadRequest, "MISSING_FIELDS", "Title, description, and projectId are required")
	}

	if _, err := s.projects.FindByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	if in.AssignedTo != "" {
		if _, err := s.users.FindByID(ctx, in.AssignedTo); err != nil {
			return nil, err
		}
	}

	issue := &domain.Issue{
		Title:       in.Title,
		Description: in.Description,
		Priority:    domain.PriorityLow,
		Status:      domain.StatusOpen,
		ProjectID:   in.ProjectID,
		CreatedBy:   actor.ID,
		AssignedTo:  in.AssignedTo,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.issues.Create(ctx, issue)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("issue", created.ID).Str("project", in.ProjectID).Str("user", actor.ID).Msg("issue created")
	return created, nil
}

// ListByProject returns the issues filed against one project, with creator
// and assignee resolved to emails.
func (s *IssueService) ListByProject(ctx context.Context, projectID string) ([]ports.IssueSummary, error) {
	issues, err := s.issues.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(issues)*2)
	for _, i := range issues {
		ids = append(ids, i.CreatedBy)
		if i.AssignedTo != "" {
			ids = append(ids, i.AssignedTo)
		}
	}
	refs, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	userRef := func(id string) ports.UserRef {
		ref := ports.UserRef{ID: id}
		if u, ok := refs[id]; ok {
			ref.Email = u.Email
		}
		return ref
	}

	out := make([]ports.IssueSummary, 0, len(issues))
	for _, i := range issues {
		summary := ports.IssueSummary{
			ID:          i.ID,
			Title:       i.Title,
			Description: i.Description,
			Priority:    i.Priority,
			Status:      i.Status,
			ProjectID:   i.ProjectID,
			CreatedBy:   userRef(i.CreatedBy),
			CreatedAt:   i.CreatedAt,
		}
		if i.AssignedTo != "" {
			assignee := userRef(i.AssignedTo)
			summary.AssignedTo = &assignee
		}
		out = append(out, summary)
	}
	return out, nil
}

// Update applies a partial update after the ownership check. Empty fields
// are treated as not supplied and left untouched.
func (s *IssueService) Update(ctx context.Context, actor domain.Identity, id string, in ports.IssueUpdate) (*domain.Issue, error) {
	issue, err := s.issues.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(issue.CreatedBy) {
		return nil, domain.ErrUnauthorized
	}

	fields := map[string]any{}
	if in.Title != "" {
		fields["title"] = in.Title
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.Status != "" {
		if !domain.ValidIssueStatus(domain.IssueStatus(in.Status)) {
			return nil, domain.NewError(http.StatusBadRequest, "INVALID_STATUS", "Status must be open or closed")
		}
		fields["status"] = in.Status
	}
	if in.AssignedTo != "" {
		if _, err := s.users.FindByID(ctx, in.AssignedTo); err != nil {
			return nil, err
		}
		fields["assignedTo"] = in.AssignedTo
	}
	if len(fields) == 0 {
		return issue, nil
	}

	updated, err := s.issues.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("issue", id).Str("user", actor.ID).Msg("issue updated")
	return updated, nil
}

// Delete permanently removes an issue after the ownership check.
func (s *IssueService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	issue, err := s.issues.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(issue.CreatedBy) {
		return domain.ErrUnauthorized
	}

	if err := s.issues.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("issue", id).Str("user", actor.ID).Msg("issue deleted")
	return nil
}
