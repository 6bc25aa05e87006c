package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/apperr"
	"github.com/medsupply/ordering-backend/internal/services"
)

// ErrorHandler renders every error as the shared envelope. Typed errors keep
// their code and status; 5xx details are logged but never exposed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		err = apperr.New(fe.Message, apperr.CodeFromStatus(fe.Code), fe.Code)
	}

	e := apperr.From(err)
	if e.StatusCode >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		e = apperr.Internal("")
	}

	return c.Status(e.StatusCode).JSON(e.Response())
}

// parseID reads a UUID path parameter, rejecting malformed values up front.
func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("invalid " + name)
	}
	return id, nil
}

// toAPIError translates service sentinels into the typed API taxonomy.
// Anything unmapped surfaces as Internal at the top-level error handler.
func toAPIError(err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrClinicNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrTemplateNotFound),
		errors.Is(err, services.ErrSettingsNotFound):
		return apperr.NotFound(err.Error())

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrSKUTaken):
		return apperr.Conflict(err.Error())

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return apperr.Unauthorized(err.Error())

	case errors.Is(err, services.ErrClinicAccessDenied),
		errors.Is(err, services.ErrApprovalForbidden):
		return apperr.Forbidden(err.Error())

	case errors.Is(err, services.ErrClinicRequired),
		errors.Is(err, services.ErrProductUnavailable),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrOrderLocked),
		errors.Is(err, services.ErrOwnerRequired):
		return apperr.BadRequest(err.Error())

	default:
		return err
	}
}
