package middleware

import (
	"github.com/labstack/echo/v4"
)

// IdentityHeader carries the resolved user identity. Authentication happens
// upstream of this service; an absent header means anonymous, which is a
// valid mode for local-only list operations.
const IdentityHeader = "X-Identity"

const identityContextKey = "identity"

// IdentityMiddleware resolves the caller identity from the request.
type IdentityMiddleware struct{}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Resolve stores the caller identity on the request context. It never
// rejects: operations that require an identity fail themselves with a
// precondition error.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(identityContextKey, c.Request().Header.Get(IdentityHeader))

		return next(c)
	}
}

// Identity reads the resolved identity from the request context. An empty
// string means anonymous.
func Identity(c echo.Context) string {
	identity, _ := c.Get(identityContextKey).(string)

	return identity
}
