package handler

import (
	"time"

	"github.com/devflow/bugtracker/internal/core/ports"
)

type createProjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// updateProjectRequest is a partial update: empty fields are treated as not
// supplied and leave the stored value untouched.
type updateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type userRefResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type projectSummaryResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedBy   userRefResponse `json:"createdBy"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toProjectSummaries(items []ports.ProjectSummary) []projectSummaryResponse {
	out := make([]projectSummaryResponse, len(items))
	for i, p := range items {
		out[i] = projectSummaryResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			CreatedBy:   userRefResponse{ID: p.CreatedBy.ID, Email: p.CreatedBy.Email},
			CreatedAt:   p.CreatedAt,
		}
	}
	return out
}
