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

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	pg := middleware.ParsePagination(c)

	orders, err := h.orderService.List(c.Context(), actor, c.Query("status"))
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(dto.NewListResponse[models.Order](orders, pg.Page, pg.Limit))
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderService.Get(c.Context(), actor, id)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	order, err := h.orderService.Create(c.Context(), actor, &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	order, err := h.orderService.UpdateItems(c.Context(), actor, id, &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	order, err := h.orderService.UpdateStatus(c.Context(), actor, id, req.Status)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	actor := identity.FromCtx(c)
	if actor == nil {
		return apperr.Unauthorized("")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderService.Delete(c.Context(), actor, id); err != nil {
		return toAPIError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
