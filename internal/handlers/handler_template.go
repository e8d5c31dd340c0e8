package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	portssvc "github.com/amirulhm/tripwise_backend/internal/core/ports/services"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/amirulhm/tripwise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// templateHandler handles HTTP requests related to item templates.
type templateHandler struct {
	templateService portssvc.TemplateSvcFacade
}

// newTemplateHandler creates a new templateHandler.
func newTemplateHandler(ts portssvc.TemplateSvcFacade) *templateHandler {
	return &templateHandler{
		templateService: ts,
	}
}

// registerTemplateRoutes registers routes related to item templates.
func registerTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.TemplateSvcFacade) {
	h := newTemplateHandler(templateService)

	templates := rg.Group("/trips/:tripID/templates")
	{
		templates.POST("", h.createTemplate)
		templates.GET("", h.listTemplates)
		templates.PATCH("/:templateID", h.updateTemplate)
		templates.DELETE("/:templateID", h.deleteTemplate)
		templates.POST("/:templateID/apply", h.applyTemplate)
	}
}

// createTemplate godoc
// @Summary Create an item template
// @Description Creates a reusable item template under a trip. The template's exchange rate, if any, is applied verbatim when the template is instantiated.
// @Tags templates
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   template body dto.CreateTemplateRequest true "Template details"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to create template"
// @Router /trips/{tripID}/templates [post]
func (h *templateHandler) createTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), tripID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create template", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create template"})
		}
		return
	}

	logger.Info("Template created", slog.String("template_id", template.TemplateID))
	c.JSON(http.StatusCreated, dto.ToTemplateResponse(template))
}

// listTemplates godoc
// @Summary List item templates
// @Description Retrieves the templates of a trip
// @Tags templates
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.TemplateResponse
// @Failure 500 {object} ErrorResponse "Failed to list templates"
// @Router /trips/{tripID}/templates [get]
func (h *templateHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	templates, err := h.templateService.ListTemplates(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list templates", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTemplateResponse(templates))
}

// updateTemplate godoc
// @Summary Update an item template
// @Description Partially updates a template; absent fields are left unchanged
// @Tags templates
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   templateID path string true "Template ID"
// @Param   template body dto.UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} dto.TemplateResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Failed to update template"
// @Router /trips/{tripID}/templates/{templateID} [patch]
func (h *templateHandler) updateTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), templateID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Template not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update template", slog.String("template_id", templateID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update template"})
		}
		return
	}

	logger.Info("Template updated", slog.String("template_id", templateID))
	c.JSON(http.StatusOK, dto.ToTemplateResponse(template))
}

// deleteTemplate godoc
// @Summary Delete an item template
// @Tags templates
// @Param   tripID path string true "Trip ID"
// @Param   templateID path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Failed to delete template"
// @Router /trips/{tripID}/templates/{templateID} [delete]
func (h *templateHandler) deleteTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	templateID := c.Param("templateID")

	if err := h.templateService.DeleteTemplate(c.Request.Context(), templateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Template not found"})
		} else {
			logger.Error("Failed to delete template", slog.String("template_id", templateID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete template"})
		}
		return
	}

	logger.Info("Template deleted", slog.String("template_id", templateID))
	c.Status(http.StatusNoContent)
}

// applyTemplate godoc
// @Summary Instantiate an item from a template
// @Description Creates an itinerary item from a template. The template's stored exchange rate is used verbatim; no live rate resolution happens.
// @Tags templates
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   templateID path string true "Template ID"
// @Param   overrides body dto.ApplyTemplateRequest true "Instantiation overrides"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Failed to apply template"
// @Router /trips/{tripID}/templates/{templateID}/apply [post]
func (h *templateHandler) applyTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	templateID := c.Param("templateID")

	var req dto.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyTemplate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.templateService.ApplyTemplate(c.Request.Context(), tripID, templateID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Template not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to apply template", slog.String("template_id", templateID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply template"})
		}
		return
	}

	logger.Info("Template applied", slog.String("template_id", templateID), slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}
