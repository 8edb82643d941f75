package sync

import (
	"context"
	"errors"

	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the sync API.
type Handler struct {
	syncer  *Syncer
	baseCtx context.Context
	logger  *zap.Logger
}

// NewHandler creates a sync handler. Cycles started over HTTP run with baseCtx.
func NewHandler(syncer *Syncer, baseCtx context.Context, logger *zap.Logger) *Handler {
	return &Handler{syncer: syncer, baseCtx: baseCtx, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Get("/status", h.HandleStatus)
	group.Post("/", h.HandleTrigger)
}

// HandleStatus returns the running flag and the last cycle report.
// @Summary Sync Status
// @Description Whether a sync cycle is running and the report of the last finished one.
// @Tags sync
// @Produce json
// @Success 200 {object} sync.Status "Sync Status"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.syncer.Status())
}

// HandleTrigger starts a sync cycle in the background.
// @Summary Trigger Sync
// @Description Starts a sync cycle unless one is already running.
// @Tags sync
// @Produce json
// @Success 202 {object} map[string]string "Cycle started"
// @Failure 409 {object} map[string]string "Cycle already in flight"
// @Failure 503 {object} map[string]string "Shutting down"
// @Router /sync [post]
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := h.syncer.Start(h.baseCtx)
	if errors.Is(err, ErrCycleInFlight) {
		l.Info("Manual sync rejected, cycle in flight")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if errors.Is(err, ErrClosed) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Manual sync started", zap.String("cycle_id", id))
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"cycle_id": id,
	})
}
