// Package identity carries the authenticated user through the request context.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/models"
)

const localsKey = "identity"

// Set attaches the resolved user to the request.
func Set(c *fiber.Ctx, u *models.User) {
	c.Locals(localsKey, u)
}

// FromCtx returns the attached user, or nil when no identity middleware ran.
func FromCtx(c *fiber.Ctx) *models.User {
	if u, ok := c.Locals(localsKey).(*models.User); ok {
		return u
	}
	return nil
}

// UserIDFromToken extracts the user UUID from JWT claims in context.
func UserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
