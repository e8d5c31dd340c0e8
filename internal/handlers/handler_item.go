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

// itemHandler handles HTTP requests related to itinerary items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{
		itemService: is,
	}
}

// registerItemRoutes registers routes related to itinerary items.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/trips/:tripID/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.PATCH("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
		items.POST("/:itemID/restore", h.restoreItem)
	}
}

// createItem godoc
// @Summary Create an itinerary item
// @Description Creates an item under a trip, resolving its MYR conversion. When a cost is supplied in a foreign currency and no rate source (user rate, pinned override, live provider) yields a rate, the request fails with 502 so the client can prompt for a manual rate.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 502 {object} ErrorResponse "Live exchange rate unavailable"
// @Router /trips/{tripID}/items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), tripID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrLiveFxUnavailable):
			logger.Warn("Live exchange rate unavailable", slog.String("currency", req.Currency))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Could not resolve an exchange rate for " + req.Currency + "; supply one manually"})
		default:
			logger.Error("Failed to create item", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create item"})
		}
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID), slog.Bool("auto_fx", item.AutoFx))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List itinerary items
// @Description Retrieves the non-deleted items of a trip ordered by dateTime ascending
// @Tags items
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.ItemResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to list items"
// @Router /trips/{tripID}/items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	items, err := h.itemService.ListItems(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		} else {
			logger.Error("Failed to list items", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list items"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListItemResponse(items))
}

// updateItem godoc
// @Summary Update an itinerary item
// @Description Partially updates an item, re-resolving its MYR conversion. Unlike creation, an unresolvable rate never fails the update; the item is stored with null MYR fields instead.
// @Tags items
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to update item"
// @Router /trips/{tripID}/items/{itemID} [patch]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), tripID, itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update item"})
		}
		return
	}

	logger.Info("Item updated successfully", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an itinerary item
// @Description Soft-deletes an item; deleting an already-deleted item is a no-op
// @Tags items
// @Param   tripID path string true "Trip ID"
// @Param   itemID path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to delete item"
// @Router /trips/{tripID}/items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	itemID := c.Param("itemID")

	if err := h.itemService.DeleteItem(c.Request.Context(), tripID, itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		} else {
			logger.Error("Failed to delete item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete item"})
		}
		return
	}

	logger.Info("Item deleted", slog.String("item_id", itemID))
	c.Status(http.StatusNoContent)
}

// restoreItem godoc
// @Summary Restore a soft-deleted item
// @Description Clears the soft-delete marker; restoring a live item returns it unchanged
// @Tags items
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to restore item"
// @Router /trips/{tripID}/items/{itemID}/restore [post]
func (h *itemHandler) restoreItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	itemID := c.Param("itemID")

	item, err := h.itemService.RestoreItem(c.Request.Context(), tripID, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		} else {
			logger.Error("Failed to restore item", slog.String("item_id", itemID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to restore item"})
		}
		return
	}

	logger.Info("Item restored", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
