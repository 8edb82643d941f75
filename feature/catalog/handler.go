package catalog

import (
	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the catalog read API.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the read routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/overview", h.HandleOverview)
	app.Get("/info", h.HandleInfo)
	app.Get("/schema", h.HandleSchema)
}

// HandleOverview returns row counts per entity as plain text.
// @Summary Catalog Overview
// @Description One "Label: count" line per stored entity kind.
// @Tags catalog
// @Produce plain
// @Success 200 {string} string "Categories: 12\nProduct Marks: 3\n..."
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /overview [get]
func (h *Handler) HandleOverview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ov, err := h.service.Overview(c.UserContext())
	if err != nil {
		l.Error("Overview query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(ov.Text())
}

// HandleInfo returns every stored row.
// @Summary Catalog Dump
// @Description Full dump of every catalog table as typed rows.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Dump "Catalog Dump"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /info [get]
func (h *Handler) HandleInfo(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	dump, err := h.service.Dump(c.UserContext())
	if err != nil {
		l.Error("Dump query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dump)
}

// HandleSchema reports model columns missing from the live tables.
// @Summary Schema Check
// @Description Compares the catalog models with the live database tables.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Schema(c.UserContext())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
