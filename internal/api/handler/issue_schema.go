package handler

import (
	"time"

	"github.com/devflow/bugtracker/internal/core/ports"
)

type createIssueRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	ProjectID   string `json:"projectId"   validate:"required"`
	AssignedTo  string `json:"assignedTo"`
}

// updateIssueRequest is a partial update: empty fields are treated as not
// supplied and leave the stored value untouched.
type updateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=open closed"`
	AssignedTo  string `json:"assignedTo"`
}

type issueSummaryResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`
	ProjectID   string           `json:"projectId"`
	CreatedBy   userRefResponse  `json:"createdBy"`
	AssignedTo  *userRefResponse `json:"assignedTo,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toIssueSummaries(items []ports.IssueSummary) []issueSummaryResponse {
	out := make([]issueSummaryResponse, len(items))
	for i, item := range items {
		resp := issueSummaryResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Priority:    string(item.Priority),
			Status:      string(item.Status),
			ProjectID:   item.ProjectID,
			CreatedBy:   userRefResponse{ID: item.CreatedBy.ID, Email: item.CreatedBy.Email},
			CreatedAt:   item.CreatedAt,
		}
		if item.AssignedTo != nil {
			resp.AssignedTo = &userRefResponse{ID: item.AssignedTo.ID, Email: item.AssignedTo.Email}
		}
		out[i] = resp
	}
	return out
}
