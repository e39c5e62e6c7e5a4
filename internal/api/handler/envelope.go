package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform success wrapper: {"status":"success","data":...}
// or {"status":"success","message":...} for delete confirmations. Errors
// never pass through here; they are rendered by the central error handler.
type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Status: "success", Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Status: "success", Message: message})
}
