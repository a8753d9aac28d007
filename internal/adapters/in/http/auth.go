package http

import (
	"net/http"
	"strings"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Claims is the token payload issued by the identity service.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Actor is the authenticated caller resolved from the bearer token.
type Actor struct {
	ID   kernel.UUID
	Role identity.Role
}

// AuthMiddleware validates the bearer token and stores the resolved Actor
// in the request context. Requests without a valid token get 401.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(
				strings.TrimPrefix(header, "Bearer "),
				claims,
				func(*jwt.Token) (interface{}, error) { return secret, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			actorID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid subject claim",
				})
			}
			role, err := identity.RoleFromString(claims.Role)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid role claim",
				})
			}

			c.Set(actorContextKey, Actor{ID: actorID, Role: role})
			return next(c)
		}
	}
}

func actorFromContext(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorContextKey).(Actor)
	return actor, ok
}
