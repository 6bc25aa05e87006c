package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/medsupply/ordering-backend/internal/config"
	"github.com/medsupply/ordering-backend/internal/database"
	"github.com/medsupply/ordering-backend/internal/dto"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   h.cfg.StorageBackend,
	}

	if h.cfg.StorageBackend == config.StorageBackendPostgres {
		resp.DB = "ok"
		if err := database.Ping(); err != nil {
			resp.Status = "degraded"
			resp.DB = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(resp)
}
