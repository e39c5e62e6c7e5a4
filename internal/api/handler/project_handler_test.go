package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/devflow/bugtracker/internal/core/domain"
	"github.com/devflow/bugtracker/internal/core/ports"
)

type stubProjectService struct {
	createFn func(ctx context.Context, actor domain.Identity, name, description string) (*domain.Project, error)
	listFn   func(ctx context.Context) ([]ports.ProjectSummary, error)
	updateFn func(ctx context.Context, actor domain.Identity, id string, in ports.ProjectUpdate) (*domain.Project, error)
	deleteFn func(ctx context.Context, actor domain.Identity, id string) error
}

func (s *stubProjectService) Create(ctx context.Context, actor domain.Identity, name, description string) (*domain.Project, error) {
	return s.createFn(ctx, actor, name, description)
}

func (s *stubProjectService) List(ctx context.Context) ([]ports.ProjectSummary, error) {
	return s.listFn(ctx)
}

func (s *stubProjectService) Update(ctx context.Context, actor domain.Identity, id string, in ports.ProjectUpdate) (*domain.Project, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubProjectService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	return s.deleteFn(ctx, actor, id)
}

var testIdentity = domain.Identity{ID: "user_1", Role: domain.RoleDeveloper}

func TestProjectHandler_Create(t *testing.T) {
	svc := &stubProjectService{
		createFn: func(_ context.Context, actor domain.Identity, name, description string) (*domain.Project, error) {
			if actor.ID != "user_1" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return &domain.Project{ID: "proj_1", Name: name, Description: description, CreatedBy: actor.ID}, nil
		},
	}
	h := NewProjectHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/projects",
		`{"name":"P1","description":"first"}`)
	c.Set("identity", testIdentity)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok || data["name"] != "P1" || data["createdBy"] != "user_1" {
		t.Fatalf("unexpected envelope: %v", body)
	}
}

func TestProjectHandler_Create_MissingFields(t *testing.T) {
	h := NewProjectHandler(&stubProjectService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/projects", `{"name":"P1"}`)
	c.Set("identity", testIdentity)
	err := h.Create(c)
	if domainCode(t, err) != "MISSING_FIELDS" {
		t.Fatalf("expected MISSING_FIELDS, got %v", err)
	}
}

func TestProjectHandler_Create_NoIdentity(t *testing.T) {
	h := NewProjectHandler(&stubProjectService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/projects",
		`{"name":"P1","description":"d"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestProjectHandler_List(t *testing.T) {
	now := time.Now().UTC()
	svc := &stubProjectService{
		listFn: func(_ context.Context) ([]ports.ProjectSummary, error) {
			return []ports.ProjectSummary{{
				ID:        "proj_1",
				Name:      "P1",
				CreatedBy: ports.UserRef{ID: "user_1", Email: "alice@example.com"},
				CreatedAt: now,
			}}, nil
		},
	}
	h := NewProjectHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/projects", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := decodeEnvelope(t, rec)
	list, ok := body["data"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected one project in envelope: %v", body)
	}
	first := list[0].(map[string]any)
	creator, ok := first["createdBy"].(map[string]any)
	if !ok || creator["email"] != "alice@example.com" {
		t.Fatalf("creator not resolved in response: %v", first)
	}
}

func TestProjectHandler_Update(t *testing.T) {
	svc := &stubProjectService{
		updateFn: func(_ context.Context, actor domain.Identity, id string, in ports.ProjectUpdate) (*domain.Project, error) {
			if id != "proj_1" || in.Name != "renamed" || in.Description != "" {
				t.Fatalf("unexpected update: id=%s in=%+v", id, in)
			}
			return &domain.Project{ID: id, Name: in.Name, Description: "original", CreatedBy: actor.ID}, nil
		},
	}
	h := NewProjectHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/projects/proj_1", `{"name":"renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("proj_1")
	c.Set("identity", testIdentity)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_Update_Forbidden(t *testing.T) {
	svc := &stubProjectService{
		updateFn: func(_ context.Context, _ domain.Identity, _ string, _ ports.ProjectUpdate) (*domain.Project, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewProjectHandler(svc)

	c, _ := newTestContext(t, http.MethodPut, "/api/projects/proj_1", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("proj_1")
	c.Set("identity", testIdentity)
	if err := h.Update(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	svc := &stubProjectService{
		deleteFn: func(_ context.Context, _ domain.Identity, id string) error {
			if id != "proj_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewProjectHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/projects/proj_1", "")
	c.SetParamNames("id")
	c.SetParamValues("proj_1")
	c.Set("identity", testIdentity)
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := decodeEnvelope(t, rec)
	if body["message"] != "Project deleted" {
		t.Fatalf("expected delete confirmation, got %v", body)
	}
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	svc := &stubProjectService{
		deleteFn: func(_ context.Context, _ domain.Identity, _ string) error {
			return domain.ErrProjectNotFound
		},
	}
	h := NewProjectHandler(svc)

	c, _ := newTestContext(t, http.MethodDelete, "/api/projects/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	c.Set("identity", testIdentity)
	if err := h.Delete(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
