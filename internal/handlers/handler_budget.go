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

// budgetHandler handles HTTP requests related to per-trip category budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to category budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/trips/:tripID/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.PATCH("/:budgetID", h.updateBudget)
		budgets.DELETE("/:budgetID", h.deleteBudget)
	}
}

// createBudget godoc
// @Summary Create a category budget
// @Description Sets a MYR spending limit for one category within a trip
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to create budget"
// @Router /trips/{tripID}/budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), tripID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating budget", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create budget", slog.String("trip_id", tripID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create budget"})
		}
		return
	}

	logger.Info("Budget created", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List category budgets
// @Description Retrieves the category budgets of a trip
// @Tags budgets
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.BudgetResponse
// @Failure 500 {object} ErrorResponse "Failed to list budgets"
// @Router /trips/{tripID}/budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list budgets", slog.String("trip_id", tripID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list budgets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// updateBudget godoc
// @Summary Update a category budget
// @Description Changes the MYR limit of an existing budget
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   budgetID path string true "Budget ID"
// @Param   budget body dto.UpdateBudgetRequest true "New limit"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Budget not found"
// @Failure 500 {object} ErrorResponse "Failed to update budget"
// @Router /trips/{tripID}/budgets/{budgetID} [patch]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("budgetID")

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), budgetID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Budget not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update budget"})
		}
		return
	}

	logger.Info("Budget updated", slog.String("budget_id", budgetID))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deleteBudget godoc
// @Summary Delete a category budget
// @Tags budgets
// @Param   tripID path string true "Trip ID"
// @Param   budgetID path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Budget not found"
// @Failure 500 {object} ErrorResponse "Failed to delete budget"
// @Router /trips/{tripID}/budgets/{budgetID} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("budgetID")

	if err := h.budgetService.DeleteBudget(c.Request.Context(), budgetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Budget not found"})
		} else {
			logger.Error("Failed to delete budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete budget"})
		}
		return
	}

	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}
