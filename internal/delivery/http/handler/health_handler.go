package handler

import (
	"recruiter-pro/internal/cache"
	"recruiter-pro/internal/database"
	"recruiter-pro/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, memo *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: memo}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Live)
	app.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"status": "up"})
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	checks := fiber.Map{"database": "up", "cache": "up"}
	healthy := true

	if h.db == nil || h.db.Ping(c.Context()) != nil {
		checks["database"] = "down"
		healthy = false
	}
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		checks["cache"] = "down"
	}

	status := fiber.StatusOK
	if !healthy {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, response.MessageOK, checks)
}
