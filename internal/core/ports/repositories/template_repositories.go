package repositories

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
)

// TemplateReader defines read operations for item template data
type TemplateReader interface {
	// FindTemplateByID retrieves a template by its ID.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.ItemTemplate, error)

	// ListTemplatesByTrip retrieves the templates of a trip, oldest first.
	ListTemplatesByTrip(ctx context.Context, tripID string) ([]domain.ItemTemplate, error)
}

// TemplateWriter defines write operations for item template data
type TemplateWriter interface {
	// SaveTemplate persists a new template.
	SaveTemplate(ctx context.Context, template domain.ItemTemplate) error

	// UpdateTemplate persists changes to an existing template.
	UpdateTemplate(ctx context.Context, template domain.ItemTemplate) error

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID string) error
}

// TemplateRepositoryFacade combines all template-related repository interfaces
type TemplateRepositoryFacade interface {
	TemplateReader
	TemplateWriter
}
