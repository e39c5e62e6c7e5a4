package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devflow/bugtracker/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainError(t *testing.T) {
	rec, body := renderError(t, domain.ErrProjectNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["status"] != "error" {
		t.Fatalf("expected error status, got %v", body["status"])
	}
	if body["errorCode"] != "PROJECT_NOT_FOUND" {
		t.Fatalf("expected PROJECT_NOT_FOUND, got %v", body["errorCode"])
	}
	if body["message"] == "" {
		t.Fatalf("expected human message, got empty")
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	rec, body := renderError(t, fmt.Errorf("loading project: %w", domain.ErrUnauthorized))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body["errorCode"] != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED, got %v", body["errorCode"])
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["errorCode"] != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", body["errorCode"])
	}
}

func TestHTTPErrorHandler_UnclassifiedError(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["errorCode"] != "SERVER_ERROR" {
		t.Fatalf("expected SERVER_ERROR, got %v", body["errorCode"])
	}
	// Internal detail must not leak to the client.
	if body["message"] != "Server error" {
		t.Fatalf("internal error leaked: %v", body["message"])
	}
}
