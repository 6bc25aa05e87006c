package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medsupply/ordering-backend/internal/apperr"
	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/identity"
	"github.com/medsupply/ordering-backend/internal/services"
	"github.com/medsupply/ordering-backend/internal/validation"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return toAPIError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return toAPIError(err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	resp, err := h.authService.Refresh(c.Context(), &req)
	if err != nil {
		return toAPIError(err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	if err := h.authService.Logout(c.Context(), &req); err != nil {
		return toAPIError(err)
	}

	return c.JSON(dto.MessageResponse{Message: "logged out"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := identity.FromCtx(c)
	if user == nil {
		return apperr.Unauthorized("")
	}
	return c.JSON(dto.NewUserResponse(user))
}
