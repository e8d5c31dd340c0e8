package services

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/dto"
)

// TemplateSvcFacade provides business logic for item templates.
type TemplateSvcFacade interface {
	CreateTemplate(ctx context.Context, tripID string, req dto.CreateTemplateRequest) (*domain.ItemTemplate, error)
	ListTemplates(ctx context.Context, tripID string) ([]domain.ItemTemplate, error)
	UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest) (*domain.ItemTemplate, error)
	DeleteTemplate(ctx context.Context, templateID string) error

	// ApplyTemplate instantiates an itinerary item from a template using the
	// template's stored rate verbatim; no live resolution happens.
	ApplyTemplate(ctx context.Context, tripID, templateID string, req dto.ApplyTemplateRequest) (*domain.ItineraryItem, error)
}
