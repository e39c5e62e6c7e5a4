package domain

import "net/http"

// Error is a tagged API error carrying the HTTP status, a stable machine
// code, and a human-readable message. Handlers and services return these;
// the central error handler renders them into the error envelope.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError builds an ad-hoc tagged error for cases not covered by the
// catalogue below.
func NewError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Validation / registration errors (400).
var (
	ErrMissingFields      = &Error{http.StatusBadRequest, "MISSING_FIELDS", "All fields are required"}
	ErrInvalidEmail       = &Error{http.StatusBadRequest, "INVALID_EMAIL", "Invalid email format"}
	ErrInvalidRole        = &Error{http.StatusBadRequest, "INVALID_ROLE", "Role must be Developer or Admin"}
	ErrUserExists         = &Error{http.StatusBadRequest, "USER_EXISTS", "User already exists"}
	ErrInvalidCredentials = &Error{http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid credentials"}
)

// Authentication errors (401).
var (
	ErrNoToken        = &Error{http.StatusUnauthorized, "NO_TOKEN", "No token provided, authorization denied"}
	ErrTokenExpired   = &Error{http.StatusUnauthorized, "TOKEN_EXPIRED", "Token has expired"}
	ErrMalformedToken = &Error{http.StatusUnauthorized, "MALFORMED_TOKEN", "Malformed or invalid token"}
	ErrInvalidPayload = &Error{http.StatusUnauthorized, "INVALID_PAYLOAD", "Invalid token payload"}
)

// Authorization (403) and lookup (404) errors.
var (
	ErrUnauthorized    = &Error{http.StatusForbidden, "UNAUTHORIZED", "Not authorized to modify this resource"}
	ErrUserNotFound    = &Error{http.StatusNotFound, "USER_NOT_FOUND", "User not found"}
	ErrProjectNotFound = &Error{http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found"}
	ErrIssueNotFound   = &Error{http.StatusNotFound, "ISSUE_NOT_FOUND", "Issue not found"}
)

// Server-side errors (500).
var (
	ErrServerConfig = &Error{http.StatusInternalServerError, "SERVER_CONFIG_ERROR", "Server configuration error"}
	ErrServer       = &Error{http.StatusInternalServerError, "SERVER_ERROR", "Server error"}
)
