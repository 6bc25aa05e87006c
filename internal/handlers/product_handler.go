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

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	pg := middleware.ParsePagination(c)

	var (
		products []models.Product
		err      error
	)
	if category := c.Query("category"); category != "" {
		products, err = h.productService.ListByCategory(c.Context(), category)
	} else {
		products, err = h.productService.List(c.Context())
	}
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(dto.NewListResponse[models.Product](products, pg.Page, pg.Limit))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productService.Get(c.Context(), id)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	product, err := h.productService.Create(c.Context(), &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	product, err := h.productService.Update(c.Context(), id, &req)
	if err != nil {
		return toAPIError(err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Context(), id); err != nil {
		return toAPIError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
