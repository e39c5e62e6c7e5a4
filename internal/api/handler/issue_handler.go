package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devflow/bugtracker/internal/api/metrics"
	"github.com/devflow/bugtracker/internal/core/ports"
)

// IssueHandler handles issue CRUD requests.
type IssueHandler struct {
	service ports.IssueService
}

func NewIssueHandler(service ports.IssueService) *IssueHandler {
	return &IssueHandler{service: service}
}

// Create handles POST /api/issues — files an issue against a project.
//
// @Summary      File an issue
// @Tags         issues
// @Accept       json
// @Produce      json
// @Param        body  body      createIssueRequest  true  "Issue details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/issues [post]
func (h *IssueHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	issue, err := h.service.Create(c.Request().Context(), identity, ports.CreateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}

	metrics.IssuesCreatedTotal.WithLabelValues(string(issue.Priority)).Inc()
	return respond(c, http.StatusCreated, issue)
}

// ListByProject handles GET /api/issues/project/:projectId.
//
// @Summary      List issues for a project
// @Tags         issues
// @Produce      json
// @Param        projectId  path  string  true  "Project id"
// @Success      200  {object}  envelope
// @Router       /api/issues/project/{projectId} [get]
func (h *IssueHandler) ListByProject(c echo.Context) error {
	issues, err := h.service.ListByProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toIssueSummaries(issues))
}

// Update handles PUT /api/issues/:id — partial update by creator or Admin.
//
// @Summary      Update an issue
// @Tags         issues
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Issue id"
// @Param        body  body      updateIssueRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/issues/{id} [put]
func (h *IssueHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	issue, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), ports.IssueUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, issue)
}

// Delete handles DELETE /api/issues/:id.
//
// @Summary      Delete an issue
// @Tags         issues
// @Produce      json
// @Param        id  path  string  true  "Issue id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/issues/{id} [delete]
func (h *IssueHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Issue deleted")
}
