package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/amirulhm/tripwise_backend/internal/utils/fxmath"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TemplateService provides business logic for item templates.
type TemplateService struct {
	templateRepo portsrepo.TemplateRepositoryFacade
	itemRepo     portsrepo.ItemWriter
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(templateRepo portsrepo.TemplateRepositoryFacade, itemRepo portsrepo.ItemWriter) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		itemRepo:     itemRepo,
	}
}

// CreateTemplate creates an item template for a trip.
func (s *TemplateService) CreateTemplate(ctx context.Context, tripID string, req dto.CreateTemplateRequest) (*domain.ItemTemplate, error) {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = domain.HomeCurrencyCode
	}
	status := domain.ItemStatus(req.DefaultStatus)
	if status == "" {
		status = domain.StatusPlanned
	}

	now := time.Now()
	template := domain.ItemTemplate{
		TemplateID:    uuid.NewString(),
		TripID:        tripID,
		Title:         req.Title,
		ExpectedCost:  req.ExpectedCost,
		Currency:      currency,
		ExchangeRate:  req.ExchangeRate,
		CategoryID:    req.CategoryID,
		Location:      req.Location,
		Notes:         req.Notes,
		DefaultStatus: status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template in service: %w", err)
	}
	return &template, nil
}

// ListTemplates retrieves a trip's templates, oldest first.
func (s *TemplateService) ListTemplates(ctx context.Context, tripID string) ([]domain.ItemTemplate, error) {
	templates, err := s.templateRepo.ListTemplatesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates in service: %w", err)
	}
	return templates, nil
}

// UpdateTemplate applies a partial update to a template.
func (s *TemplateService) UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest) (*domain.ItemTemplate, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		template.Title = *req.Title
	}
	if req.ExpectedCost != nil {
		template.ExpectedCost = req.ExpectedCost
	}
	if req.Currency != nil {
		template.Currency = strings.ToUpper(*req.Currency)
	}
	if req.ExchangeRate != nil {
		template.ExchangeRate = req.ExchangeRate
	}
	if req.CategoryID != nil {
		template.CategoryID = req.CategoryID
	}
	if req.Location != nil {
		template.Location = *req.Location
	}
	if req.Notes != nil {
		template.Notes = *req.Notes
	}
	if req.DefaultStatus != nil {
		template.DefaultStatus = domain.ItemStatus(*req.DefaultStatus)
	}
	template.LastUpdatedAt = time.Now()

	if err := s.templateRepo.UpdateTemplate(ctx, *template); err != nil {
		return nil, fmt.Errorf("failed to update template in service: %w", err)
	}
	return template, nil
}

// DeleteTemplate removes a template.
func (s *TemplateService) DeleteTemplate(ctx context.Context, templateID string) error {
	if _, err := s.templateRepo.FindTemplateByID(ctx, templateID); err != nil {
		return err
	}
	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		return fmt.Errorf("failed to delete template in service: %w", err)
	}
	return nil
}

// ApplyTemplate instantiates an itinerary item from a template. The
// template's stored rate is used verbatim; no live resolution or override
// lookup happens, so applying never fails on FX grounds.
func (s *TemplateService) ApplyTemplate(ctx context.Context, tripID, templateID string, req dto.ApplyTemplateRequest) (*domain.ItineraryItem, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.TripID != tripID {
		return nil, fmt.Errorf("%w: template does not belong to trip", apperrors.ErrNotFound)
	}

	dateTime := time.Now()
	if req.DateTime != nil {
		dateTime = *req.DateTime
	}

	expectedCost := template.ExpectedCost
	if req.ExpectedCostOverride != nil {
		expectedCost = req.ExpectedCostOverride
	}

	var myrExpected *decimal.Decimal
	if template.Currency == domain.HomeCurrencyCode {
		if expectedCost != nil && !expectedCost.IsZero() {
			v := expectedCost.Round(fxmath.MYRScale)
			myrExpected = &v
		}
	} else if expectedCost != nil && template.ExchangeRate != nil {
		myrExpected = fxmath.DeriveMYR(expectedCost, template.ExchangeRate)
	}

	status := template.DefaultStatus
	if req.StatusOverride != nil {
		status = domain.ItemStatus(*req.StatusOverride)
	}
	if status == "" {
		status = domain.StatusPlanned
	}

	now := time.Now()
	item := domain.ItineraryItem{
		ItemID:       uuid.NewString(),
		TripID:       tripID,
		Title:        template.Title,
		DateTime:     dateTime,
		ExpectedCost: expectedCost,
		Currency:     template.Currency,
		ExchangeRate: template.ExchangeRate,
		AutoFx:       false,
		MYRExpected:  myrExpected,
		Status:       status,
		Notes:        template.Notes,
		Location:     template.Location,
		CategoryID:   template.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to apply template in service: %w", err)
	}
	return &item, nil
}
