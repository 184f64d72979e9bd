package catalog

import (
	"catalog-admin/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ Publisher = (*storage.Publisher)(nil)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalog feature on a gorm store.
func NewFeature(db *gorm.DB, publisher Publisher, logger *zap.Logger, cfg Config) *Feature {
	svc := NewService(NewGormStore(db), publisher, logger, cfg)
	return &Feature{service: svc, handler: NewHandler(svc)}
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

// Service exposes the feature's service for commands that run without HTTP.
func (f *Feature) Service() *Service {
	return f.service
}
