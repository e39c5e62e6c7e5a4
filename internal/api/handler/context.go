package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/devflow/bugtracker/internal/core/domain"
)

// ctxIdentity extracts the verified identity injected by the Auth
// middleware. Its presence proves the guard ran; a handler reached without
// it is a routing mistake, rejected as an auth failure rather than trusted.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get("identity").(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, domain.ErrInvalidPayload
	}
	return identity, nil
}
