package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/apperr"
	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/middleware"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/services"
	"github.com/medsupply/ordering-backend/internal/validation"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// List filters by owner when ?owner= is given, otherwise by type
// (defaulting to global).
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	pg := middleware.ParsePagination(c)

	var (
		settings []models.Settings
		err      error
	)
	if owner := c.Query("owner"); owner != "" {
		ownerID, perr := uuid.Parse(owner)
		if perr != nil {
			return apperr.BadRequest("invalid owner")
		}
		settings, err = h.settingsService.ListByOwner(c.Context(), ownerID)
	} else {
		typ := models.SettingsType(c.Query("type", string(models.SettingsTypeGlobal)))
		if typ != models.SettingsTypeGlobal && typ != models.SettingsTypeClinic {
			return apperr.BadRequest("invalid type")
		}
		settings, err = h.settingsService.ListByType(c.Context(), typ)
	}
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(dto.NewListResponse[models.Settings](settings, pg.Page, pg.Limit))
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	settings, err := h.settingsService.Get(c.Context(), id)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	settings, err := h.settingsService.Create(c.Context(), &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(settings)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	settings, err := h.settingsService.Update(c.Context(), id, &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.settingsService.Delete(c.Context(), id); err != nil {
		return toAPIError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
