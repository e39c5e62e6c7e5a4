package domain

import "time"

// IssuePriority is the triage weight of an issue.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
)

// IssueStatus is the lifecycle state of an issue.
type IssueStatus string

const (
	StatusOpen   IssueStatus = "open"
	StatusClosed IssueStatus = "closed"
)

// ValidIssueStatus reports whether s is an accepted status value.
func ValidIssueStatus(s IssueStatus) bool {
	return s == StatusOpen || s == StatusClosed
}

// Issue is a defect or task filed against a project.
type Issue struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    IssuePriority `json:"priority"`
	Status      IssueStatus   `json:"status"`
	ProjectID   string        `json:"projectId"`
	CreatedBy   string        `json:"createdBy"`
	AssignedTo  string        `json:"assignedTo,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
