package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/devflow/bugtracker/internal/core/domain"
	"github.com/devflow/bugtracker/internal/core/ports"
)

// ProjectService implements project CRUD with ownership checks.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, log: log}
}

// Create persists a new project owned by the caller.
func (s *ProjectService) Create(ctx context.Context, actor domain.Identity, name, description string) (*domain.Project, error) {
	if name == "" || description == "" {
		return nil, domain.NewError(http.StatusBadRequest, "MISSING_FIELDS", "Name and description are required")
	}

	project := &domain.Project{
		Name:        name,
		Description: description,
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project", created.ID).Str("user", actor.ID).Msg("project created")
	return created, nil
}

// List returns every project with its creator resolved to an email.
func (s *ProjectService) List(ctx context.Context) ([]ports.ProjectSummary, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.CreatedBy)
	}
	creators, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ports.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		ref := ports.UserRef{ID: p.CreatedBy}
		if u, ok := creators[p.CreatedBy]; ok {
			ref.Email = u.Email
		}
		out = append(out, ports.ProjectSummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CreatedBy:   ref,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out, nil
}

// Update applies a partial update after the ownership check. Empty fields
// are treated as not supplied and left untouched.
func (s *ProjectService) Update(ctx context.Context, actor domain.Identity, id string, in ports.ProjectUpdate) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanModify(project.CreatedBy) {
		return nil, domain.ErrUnauthorized
	}

	fields := map[string]any{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if len(fields) == 0 {
		return project, nil
	}

	updated, err := s.projects.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project", id).Str("user", actor.ID).Msg("project updated")
	return updated, nil
}

// Delete permanently removes a project after the ownership check.
func (s *ProjectService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(project.CreatedBy) {
		return domain.ErrUnauthorized
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("project", id).Str("user", actor.ID).Msg("project deleted")
	return nil
}
