package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/thewiseshop/pawtrait-backend/internal/database"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
)

type HealthHandler struct {
	storeConfigured bool
}

func NewHealthHandler(storeConfigured bool) *HealthHandler {
	return &HealthHandler{storeConfigured: storeConfigured}
}

// Check reports liveness even when the store is absent; a misconfigured
// database degrades the report, it never takes the endpoint down.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	switch {
	case !h.storeConfigured:
		dbStatus = "not_configured"
	default:
		if err := database.Ping(); err != nil {
			dbStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
