package controllers

import (
	"net/http"
	"strconv"

	"smart-supermarket/models"
	"smart-supermarket/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *services.SettingsService
}

func NewSettingsController() *SettingsController {
	return &SettingsController{
		settingsService: services.NewSettingsService(),
	}
}

func (ctrl *SettingsController) GetPaymentMethods(c *gin.Context) {
	activeOnly := c.DefaultQuery("active", "false") == "true"

	methods, err := ctrl.settingsService.GetPaymentMethods(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve payment methods",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment methods retrieved",
		Data:    methods,
	})
}

func (ctrl *SettingsController) CreatePaymentMethod(c *gin.Context) {
	var req models.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	pm, err := ctrl.settingsService.CreatePaymentMethod(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create payment method",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Payment method created",
		Data:    pm,
	})
}

func (ctrl *SettingsController) SetPaymentMethodActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid payment method ID",
			Error:   err.Error(),
		})
		return
	}

	active := c.DefaultQuery("active", "true") == "true"

	if err := ctrl.settingsService.SetPaymentMethodActive(id, active); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to update payment method",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment method updated",
	})
}

func (ctrl *SettingsController) GetTaxRates(c *gin.Context) {
	rates, err := ctrl.settingsService.GetTaxRates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve tax rates",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Tax rates retrieved",
		Data:    rates,
	})
}

func (ctrl *SettingsController) CreateTaxRate(c *gin.Context) {
	var req models.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	rate, err := ctrl.settingsService.CreateTaxRate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create tax rate",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Tax rate created",
		Data:    rate,
	})
}

func (ctrl *SettingsController) CreateNotification(c *gin.Context) {
	var req models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	notification, err := ctrl.settingsService.CreateNotification(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create notification",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Notification created",
		Data:    notification,
	})
}

func (ctrl *SettingsController) GetNotifications(c *gin.Context) {
	userID := c.GetInt("user_id")

	notifications, err := ctrl.settingsService.GetNotifications(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve notifications",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Notifications retrieved",
		Data:    notifications,
	})
}

func (ctrl *SettingsController) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid notification ID",
			Error:   err.Error(),
		})
		return
	}

	userID := c.GetInt("user_id")

	if err := ctrl.settingsService.MarkNotificationRead(id, userID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to mark notification as read",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Notification marked as read",
	})
}

func (ctrl *SettingsController) GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.settingsService.GetAuditLogs(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve audit logs",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
