package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// SalesmanHeader names the salesman a request acts for.
	SalesmanHeader = "business-salesman-id"
	// LegacyTokenHeader carries a bare token for older clients.
	LegacyTokenHeader = "token"
	// SalesmanIDLocalKey stores the authenticated salesman id in locals.
	SalesmanIDLocalKey = "salesman_id"
)

// TokenVerifier checks a bearer token and returns its salesman id.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// SalesmanChecker reports whether a salesman exists.
type SalesmanChecker interface {
	Exists(ctx context.Context, salesmanID int64) (bool, error)
}

// Auth admits requests that carry a valid token for an existing salesman.
//
// The token comes from "Authorization: Bearer" or the legacy token header.
// A missing, invalid or expired token, or an unknown salesman, is 401. A
// business-salesman-id header naming anyone but the token subject is 403.
func Auth(tokens TokenVerifier, salesmen SalesmanChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearer(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}
		id, err := tokens.Verify(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		header, err := strconv.ParseInt(strings.TrimSpace(c.Get(SalesmanHeader)), 10, 64)
		if err != nil || header != id {
			return fiber.NewError(fiber.StatusForbidden, "business-salesman-id does not match the token")
		}

		ok, err := salesmen.Exists(c.UserContext(), id)
		if err != nil {
			return err
		}
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "salesman not found")
		}

		c.Locals(SalesmanIDLocalKey, id)
		return c.Next()
	}
}

// SalesmanID returns the id stored by Auth, or 0.
func SalesmanID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(SalesmanIDLocalKey).(int64)
	return id
}

func bearer(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return strings.TrimSpace(c.Get(LegacyTokenHeader))
}
