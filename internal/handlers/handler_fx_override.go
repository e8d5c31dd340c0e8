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

// fxOverrideHandler handles HTTP requests related to pinned exchange rates.
type fxOverrideHandler struct {
	overrideService portssvc.FxOverrideSvcFacade
}

// newFxOverrideHandler creates a new fxOverrideHandler.
func newFxOverrideHandler(os portssvc.FxOverrideSvcFacade) *fxOverrideHandler {
	return &fxOverrideHandler{
		overrideService: os,
	}
}

// registerFxOverrideRoutes registers routes related to pinned exchange rates.
func registerFxOverrideRoutes(rg *gin.RouterGroup, overrideService portssvc.FxOverrideSvcFacade) {
	h := newFxOverrideHandler(overrideService)

	overrides := rg.Group("/fx-overrides")
	{
		overrides.GET("", h.listOverrides)
		overrides.PUT("", h.upsertOverride)
		overrides.DELETE("/:overrideID", h.deleteOverride)
	}
}

// listOverrides godoc
// @Summary List pinned exchange rates
// @Description Retrieves pinned rates, optionally filtered by currency and date range, ordered by date
// @Tags fx-overrides
// @Produce  json
// @Param   currency query string false "Currency code filter (3 letters)"
// @Param   from query string false "Lower date bound (YYYY-MM-DD, inclusive)"
// @Param   to query string false "Upper date bound (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.FxOverrideResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list overrides"
// @Security BearerAuth
// @Router /fx-overrides [get]
func (h *fxOverrideHandler) listOverrides(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListFxOverridesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListOverrides", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	overrides, err := h.overrideService.ListOverrides(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to list rate overrides", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list overrides"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFxOverrideResponse(overrides))
}

// upsertOverride godoc
// @Summary Pin an exchange rate
// @Description Pins an authoritative rate for one UTC calendar date and currency, replacing any existing pin for the same key. Pinned rates pre-empt live provider lookups.
// @Tags fx-overrides
// @Accept  json
// @Produce  json
// @Param   override body dto.UpsertFxOverrideRequest true "Override details"
// @Success 200 {object} dto.FxOverrideResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to upsert override"
// @Security BearerAuth
// @Router /fx-overrides [put]
func (h *fxOverrideHandler) upsertOverride(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertFxOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertOverride", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	override, err := h.overrideService.UpsertOverride(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting rate override", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to upsert rate override", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upsert override"})
		}
		return
	}

	logger.Info("Rate override pinned",
		slog.String("currency", override.Currency),
		slog.Time("date", override.Date),
	)
	c.JSON(http.StatusOK, dto.ToFxOverrideResponse(override))
}

// deleteOverride godoc
// @Summary Delete a pinned exchange rate
// @Tags fx-overrides
// @Param   overrideID path string true "Override ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Override not found"
// @Failure 500 {object} ErrorResponse "Failed to delete override"
// @Security BearerAuth
// @Router /fx-overrides/{overrideID} [delete]
func (h *fxOverrideHandler) deleteOverride(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	overrideID := c.Param("overrideID")

	if err := h.overrideService.DeleteOverride(c.Request.Context(), overrideID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Override not found"})
		} else {
			logger.Error("Failed to delete rate override", slog.String("override_id", overrideID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete override"})
		}
		return
	}

	logger.Info("Rate override deleted", slog.String("override_id", overrideID))
	c.Status(http.StatusNoContent)
}
