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

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// newTripHandler creates a new tripHandler.
func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{
		tripService: ts,
	}
}

// registerTripRoutes registers routes related to trips.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := newTripHandler(tripService)

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:tripID", h.getTrip)
		trips.PATCH("/:tripID", h.updateTrip)
		trips.DELETE("/:tripID", h.deleteTrip)
	}
}

// createTrip godoc
// @Summary Create a new trip
// @Description Creates a trip with an optional MYR budget and per-diem allowance
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} ErrorResponse "Failed to create trip"
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating trip", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create trip in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create trip"})
		}
		return
	}

	logger.Info("Trip created successfully", slog.String("trip_id", trip.TripID))
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List trips
// @Description Retrieves all trips, newest first, with MYR expense totals over their non-deleted items
// @Tags trips
// @Produce  json
// @Success 200 {array} dto.TripWithTotalsResponse
// @Failure 500 {object} ErrorResponse "Failed to list trips"
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list trips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTripWithTotalsResponse(trips))
}

// getTrip godoc
// @Summary Get a trip
// @Description Retrieves a trip by ID
// @Tags trips
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve trip"
// @Router /trips/{tripID} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	trip, err := h.tripService.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		} else {
			logger.Error("Failed to get trip", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve trip"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// updateTrip godoc
// @Summary Update a trip
// @Description Partially updates a trip; absent fields are left unchanged
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   trip body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to update trip"
// @Router /trips/{tripID} [patch]
func (h *tripHandler) updateTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), tripID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating trip", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update trip", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update trip"})
		}
		return
	}

	logger.Info("Trip updated successfully", slog.String("trip_id", tripID))
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// deleteTrip godoc
// @Summary Delete a trip
// @Description Deletes a trip and everything under it (items, budgets, templates)
// @Tags trips
// @Param   tripID path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to delete trip"
// @Router /trips/{tripID} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	if err := h.tripService.DeleteTrip(c.Request.Context(), tripID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		} else {
			logger.Error("Failed to delete trip", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete trip"})
		}
		return
	}

	logger.Info("Trip deleted", slog.String("trip_id", tripID))
	c.Status(http.StatusNoContent)
}
