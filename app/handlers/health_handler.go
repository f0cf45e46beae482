package handlers

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/utils"
	"github.com/gofiber/fiber/v3"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler reports liveness plus the state of the registered dependencies
type HealthHandler struct {
	service string
	version string
	checks  map[string]HealthCheck
}

// NewHealthHandler creates a health handler; checks may be nil
func NewHealthHandler(service, version string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{service: service, version: version, checks: checks}
}

// Health runs every dependency check with a short timeout
// @Summary Health check
// @Description Liveness and dependency status
// @Tags Health
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is healthy"
// @Failure 503 {object} dto.APIResponse "A dependency is unavailable"
// @Router /api/health [get]
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	dependencies := fiber.Map{}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			log.Printf("health check %s failed: %v", name, err)
			dependencies[name] = "unavailable"
			healthy = false
			continue
		}
		dependencies[name] = "ok"
	}

	data := fiber.Map{
		"status":       "ok",
		"timestamp":    utils.UTCNow().Unix(),
		"version":      h.version,
		"service":      h.service,
		"dependencies": dependencies,
	}

	if !healthy {
		data["status"] = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.APIResponse{
			Success: false,
			Message: "Service is degraded",
			Data:    data,
			Error:   dto.ErrorDetail{Code: "DEPENDENCY_UNAVAILABLE"},
		})
	}

	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data:    data,
	})
}
