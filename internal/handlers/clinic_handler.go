package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medsupply/ordering-backend/internal/apperr"
	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/middleware"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/services"
	"github.com/medsupply/ordering-backend/internal/validation"
)

type ClinicHandler struct {
	clinicService *services.ClinicService
}

func NewClinicHandler(clinicService *services.ClinicService) *ClinicHandler {
	return &ClinicHandler{clinicService: clinicService}
}

func (h *ClinicHandler) List(c *fiber.Ctx) error {
	pg := middleware.ParsePagination(c)

	clinics, err := h.clinicService.List(c.Context())
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(dto.NewListResponse[models.Clinic](clinics, pg.Page, pg.Limit))
}

func (h *ClinicHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	clinic, err := h.clinicService.Get(c.Context(), id)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(clinic)
}

func (h *ClinicHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClinicRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	clinic, err := h.clinicService.Create(c.Context(), &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(clinic)
}

func (h *ClinicHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateClinicRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	clinic, err := h.clinicService.Update(c.Context(), id, &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(clinic)
}

func (h *ClinicHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.clinicService.Delete(c.Context(), id); err != nil {
		return toAPIError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
