package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devflow/bugtracker/internal/api/metrics"
	"github.com/devflow/bugtracker/internal/core/domain"
)

// TokenHeader is the custom header carrying the signed token. The API does
// not use the standard bearer scheme.
const TokenHeader = "x-auth-token"

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// Auth is the authorization guard run before every protected handler. It
// verifies the token from the x-auth-token header and injects the verified
// {id, role} identity into the request context. It never touches the
// persistence layer.
func Auth(jwtSecret string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Fatal misconfiguration, not an auth failure. Normally caught
			// at boot; this keeps the guard failing closed regardless.
			if jwtSecret == "" {
				log.Error().Msg("jwt secret is not configured")
				return domain.ErrServerConfig
			}

			token := strings.TrimSpace(c.Request().Header.Get(TokenHeader))
			if token == "" {
				metrics.AuthRejectedTotal.WithLabelValues("no_token").Inc()
				return domain.ErrNoToken
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				if errors.Is(err, jwt.ErrTokenExpired) {
					metrics.AuthRejectedTotal.WithLabelValues("expired").Inc()
					return domain.ErrTokenExpired
				}
				metrics.AuthRejectedTotal.WithLabelValues("malformed").Inc()
				return domain.ErrMalformedToken
			}

			id, _ := claims["id"].(string)
			role, _ := claims["role"].(string)
			if id == "" || role == "" {
				metrics.AuthRejectedTotal.WithLabelValues("invalid_payload").Inc()
				return domain.ErrInvalidPayload
			}

			c.Set(identityKey, domain.Identity{ID: id, Role: role})
			return next(c)
		}
	}
}
