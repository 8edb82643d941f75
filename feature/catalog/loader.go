package catalog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalog read feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, cacheTTL time.Duration) *Feature {
	svc := NewService(db, logger, cacheTTL)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service exposes the read service so sync commits can invalidate it.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
