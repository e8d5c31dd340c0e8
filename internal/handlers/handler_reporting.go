package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portssvc "github.com/amirulhm/tripwise_backend/internal/core/ports/services"
	"github.com/amirulhm/tripwise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler handles the analytics endpoints of a trip.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the analytics routes of a trip.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/trips/:tripID")
	{
		reports.GET("/summary", h.tripSummary)
		reports.GET("/by-category", h.byCategory)
		reports.GET("/daily-trend", h.dailyTrend)
		reports.GET("/export.csv", h.exportCSV)
	}
}

// tripSummary godoc
// @Summary Trip spending summary
// @Description Aggregates a trip's stored MYR fields into totals, budget and per-diem variances. Rates are never re-resolved.
// @Tags reporting
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.TripSummaryResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Router /trips/{tripID}/summary [get]
func (h *reportingHandler) tripSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	summary, err := h.reportingService.TripSummary(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		} else {
			logger.Error("Failed to compute trip summary", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// byCategory godoc
// @Summary Per-category spending breakdown
// @Description Breaks a trip's MYR totals down per category name, sorted by name
// @Tags reporting
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.CategoryBreakdownEntry
// @Failure 500 {object} ErrorResponse "Failed to compute breakdown"
// @Router /trips/{tripID}/by-category [get]
func (h *reportingHandler) byCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	entries, err := h.reportingService.ByCategory(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute breakdown"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// dailyTrend godoc
// @Summary Daily spending trend
// @Description Aggregates a trip's MYR totals per UTC calendar date, ascending
// @Tags reporting
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.DailyTrendEntry
// @Failure 500 {object} ErrorResponse "Failed to compute trend"
// @Router /trips/{tripID}/daily-trend [get]
func (h *reportingHandler) dailyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	entries, err := h.reportingService.DailyTrend(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to compute daily trend", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute trend"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// exportCSV godoc
// @Summary Export a trip's items as CSV
// @Description Streams the non-deleted items of a trip as a CSV attachment
// @Tags reporting
// @Produce  text/csv
// @Param   tripID path string true "Trip ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to export trip"
// @Router /trips/{tripID}/export.csv [get]
func (h *reportingHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	trip, items, categoryNames, err := h.reportingService.ExportRows(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		} else {
			logger.Error("Failed to export trip", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export trip"})
		}
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+trip.Name+`.csv"`)

	w := csv.NewWriter(c.Writer)
	header := []string{"Title", "DateTime", "Category", "Location", "Expected", "Actual", "Currency", "MYR Expected", "MYR Actual", "Status", "Notes"}
	if err := w.Write(header); err != nil {
		logger.Error("Failed to write CSV header", slog.String("error", err.Error()))
		return
	}

	for i := range items {
		if err := w.Write(csvRow(&items[i], categoryNames)); err != nil {
			logger.Error("Failed to write CSV row", slog.String("error", err.Error()))
			return
		}
	}
	w.Flush()
}

func csvRow(item *domain.ItineraryItem, categoryNames map[string]string) []string {
	category := ""
	if item.CategoryID != nil {
		category = categoryNames[*item.CategoryID]
	}
	return []string{
		item.Title,
		item.DateTime.UTC().Format(time.RFC3339),
		category,
		item.Location,
		decimalOrEmpty(item.ExpectedCost),
		decimalOrEmpty(item.ActualCost),
		item.Currency,
		decimalOrEmpty(item.MYRExpected),
		decimalOrEmpty(item.MYRActual),
		string(item.Status),
		item.Notes,
	}
}

func decimalOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
