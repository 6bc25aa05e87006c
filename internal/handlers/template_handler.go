package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medsupply/ordering-backend/internal/apperr"
	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/identity"
	"github.com/medsupply/ordering-backend/internal/middleware"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/services"
	"github.com/medsupply/ordering-backend/internal/validation"
)

type TemplateHandler struct {
	templateService *services.TemplateService
}

func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

func (h *TemplateHandler) List(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	pg := middleware.ParsePagination(c)

	templates, err := h.templateService.List(c.Context(), actor)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(dto.NewListResponse[models.Template](templates, pg.Page, pg.Limit))
}

func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	template, err := h.templateService.Get(c.Context(), actor, id)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(template)
}

func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}

	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	template, err := h.templateService.Create(c.Context(), actor, &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	template, err := h.templateService.Update(c.Context(), actor, id, &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(template)
}

// Apply creates a draft order from the template's item snapshots.
func (h *TemplateHandler) Apply(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.templateService.Apply(c.Context(), actor, id)
	if err != nil {
		return toAPIError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.templateService.Delete(c.Context(), actor, id); err != nil {
		return toAPIError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
