package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// errorEnvelope is the canonical error body for all API failures:
// {"status":"error","message":...,"errorCode":...}.
type errorEnvelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders tagged domain errors with their status, message, and code.
//   - Maps Echo's own errors (bind failures, unknown routes) onto the envelope.
//   - Logs anything unclassified and downgrades it to a generic SERVER_ERROR
//     so internal details never reach the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var de *domain.Error
		if errors.As(err, &de) {
			if de.Status >= http.StatusInternalServerError {
				log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("request failed")
			}
			_ = c.JSON(de.Status, errorEnvelope{Status: "error", Message: de.Message, ErrorCode: de.Code})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorEnvelope{
				Status:    "error",
				Message:   fmt.Sprintf("%v", he.Message),
				ErrorCode: codeForStatus(he.Code),
			})
			return
		}

		log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, errorEnvelope{
			Status:    "error",
			Message:   "Server error",
			ErrorCode: "SERVER_ERROR",
		})
	}
}

// codeForStatus picks a machine code for transport-level errors that carry
// no domain code of their own.
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "SERVER_ERROR"
	}
}
