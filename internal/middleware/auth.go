package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	jwtware "github.com/gofiber/contrib/jwt"

	"github.com/medsupply/ordering-backend/internal/apperr"
	"github.com/medsupply/ordering-backend/internal/config"
	"github.com/medsupply/ordering-backend/internal/identity"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return apperr.Unauthorized("Unauthorized: invalid or expired token")
		},
	})
}

// Identity resolves the token subject to a stored user and attaches it to the
// request. Missing or inactive users are rejected.
func Identity(users store.UserRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := identity.UserIDFromToken(c)
		if err != nil {
			return apperr.Unauthorized("")
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return apperr.Internal("")
		}
		if user == nil || !user.Active {
			return apperr.Unauthorized("User not found or inactive")
		}

		identity.Set(c, user)
		return c.Next()
	}
}

// mockUserID keeps the stand-in identity stable across requests.
var mockUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// MockIdentity attaches a fixed administrator identity unconditionally. This
// is the acknowledged stand-in for deployments without a token issuer, not a
// security feature.
func MockIdentity() fiber.Handler {
	mock := &models.User{
		Email:  "admin@example.com",
		Name:   "Mock Admin",
		Role:   models.RoleAdmin,
		Active: true,
	}
	mock.ID = mockUserID

	return func(c *fiber.Ctx) error {
		identity.Set(c, mock)
		return c.Next()
	}
}
