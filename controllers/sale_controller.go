package controllers

import (
	"net/http"
	"strconv"
	"time"

	"smart-supermarket/models"
	"smart-supermarket/services"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	saleService *services.SaleService
}

func NewSaleController() *SaleController {
	return &SaleController{
		saleService: services.NewSaleService(),
	}
}

// GetAllSales godoc
// @Summary Get sales history
// @Description Get paginated sales, optionally filtered by date range
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param from query string false "Start date (RFC3339)"
// @Param to query string false "End date (RFC3339)"
// @Success 200 {object} models.PaginationResponse
// @Router /sales [get]
func (ctrl *SaleController) GetAllSales(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			from = &t
		}
	}
	if raw := c.Query("to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			to = &t
		}
	}

	result, err := ctrl.saleService.GetAll(page, limit, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve sales",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSaleByID godoc
// @Summary Get sale by ID
// @Description Get a sale with its item lines
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /sales/{id} [get]
func (ctrl *SaleController) GetSaleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid sale ID",
			Error:   err.Error(),
		})
		return
	}

	sale, err := ctrl.saleService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Sale not found",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sale retrieved successfully",
		Data:    sale,
	})
}

func (ctrl *SaleController) GetReceipts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.saleService.GetReceipts(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve receipts",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *SaleController) GetReceiptByNumber(c *gin.Context) {
	number := c.Param("number")

	receipt, err := ctrl.saleService.GetReceiptByNumber(number)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Receipt not found",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Receipt retrieved successfully",
		Data:    receipt,
	})
}
