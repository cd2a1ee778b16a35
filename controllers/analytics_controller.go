package controllers

import (
	"net/http"
	"strconv"

	"smart-supermarket/models"
	"smart-supermarket/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsController() *AnalyticsController {
	return &AnalyticsController{
		analyticsService: services.NewAnalyticsService(),
	}
}

// GetDashboard godoc
// @Summary Get dashboard metrics
// @Description Headline numbers for the back-office dashboard
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /analytics/dashboard [get]
func (ctrl *AnalyticsController) GetDashboard(c *gin.Context) {
	metrics, err := ctrl.analyticsService.GetDashboardMetrics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve dashboard metrics",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Dashboard metrics retrieved",
		Data:    metrics,
	})
}

func (ctrl *AnalyticsController) GetAlerts(c *gin.Context) {
	unresolvedOnly := c.DefaultQuery("unresolved", "false") == "true"

	alerts, err := ctrl.analyticsService.GetAlerts(unresolvedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve alerts",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Alerts retrieved",
		Data:    alerts,
	})
}

func (ctrl *AnalyticsController) CreateAlert(c *gin.Context) {
	var req models.CreateAIAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	alert, err := ctrl.analyticsService.CreateAlert(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create alert",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Alert created",
		Data:    alert,
	})
}

func (ctrl *AnalyticsController) ResolveAlert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid alert ID",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.analyticsService.ResolveAlert(id); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to resolve alert",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Alert resolved",
	})
}

func (ctrl *AnalyticsController) GetSalesForecasts(c *gin.Context) {
	forecasts, err := ctrl.analyticsService.GetSalesForecasts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve sales forecasts",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sales forecasts retrieved",
		Data:    forecasts,
	})
}

func (ctrl *AnalyticsController) GetProfitPredictions(c *gin.Context) {
	predictions, err := ctrl.analyticsService.GetProfitPredictions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve profit predictions",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profit predictions retrieved",
		Data:    predictions,
	})
}

func (ctrl *AnalyticsController) GetCashFlowPredictions(c *gin.Context) {
	predictions, err := ctrl.analyticsService.GetCashFlowPredictions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve cash flow predictions",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cash flow predictions retrieved",
		Data:    predictions,
	})
}

func (ctrl *AnalyticsController) GetDailySummaries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	summaries, err := ctrl.analyticsService.GetDailySummaries(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve daily summaries",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Daily summaries retrieved",
		Data:    summaries,
	})
}
