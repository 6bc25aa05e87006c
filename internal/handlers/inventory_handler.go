package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/apperr"
	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/identity"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/services"
	"github.com/medsupply/ordering-backend/internal/validation"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// resolveClinic picks the clinic whose inventory is being addressed: admins
// may name any clinic via ?clinic= (or the request body), everyone else is
// pinned to their own.
func resolveClinic(actor *models.User, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil {
		if !actor.CanAccessClinic(*requested) {
			return uuid.Nil, apperr.Forbidden("clinic access denied")
		}
		return *requested, nil
	}
	if actor.ClinicID == nil {
		return uuid.Nil, apperr.BadRequest("clinic is required")
	}
	return *actor.ClinicID, nil
}

func (h *InventoryHandler) List(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}

	var requested *uuid.UUID
	if q := c.Query("clinic"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			return apperr.BadRequest("invalid clinic")
		}
		requested = &id
	}

	clinicID, err := resolveClinic(actor, requested)
	if err != nil {
		return err
	}

	items, err := h.inventoryService.ListForClinic(c.Context(), clinicID)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(fiber.Map{"data": items})
}

func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	var req dto.SetStockRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	clinicID, err := resolveClinic(actor, req.ClinicID)
	if err != nil {
		return err
	}

	stock, err := h.inventoryService.SetStock(c.Context(), clinicID, productID, req.Quantity)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(stock)
}
