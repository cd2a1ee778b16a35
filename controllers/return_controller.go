package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
	"smart-supermarket/services"

	"github.com/gin-gonic/gin"
)

type ReturnController struct {
	returnService *services.ReturnService
}

func NewReturnController() *ReturnController {
	return &ReturnController{
		returnService: services.NewReturnService(),
	}
}

// CreateReturn godoc
// @Summary Create return
// @Description Open a pending return against a completed sale
// @Tags Returns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateReturnRequest true "Return Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /returns [post]
func (ctrl *ReturnController) CreateReturn(c *gin.Context) {
	var req models.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	ret, err := ctrl.returnService.Create(req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Sale not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create return",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Return created successfully",
		Data:    ret,
	})
}

func (ctrl *ReturnController) GetReturns(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	result, err := ctrl.returnService.GetAll(page, limit, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve returns",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *ReturnController) GetReturnByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid return ID",
			Error:   err.Error(),
		})
		return
	}

	ret, err := ctrl.returnService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Return not found",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Return retrieved successfully",
		Data:    ret,
	})
}

// ApproveReturn godoc
// @Summary Approve return
// @Description Approve a pending return and restock the returned products
// @Tags Returns
// @Security BearerAuth
// @Produce json
// @Param id path int true "Return ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /returns/{id}/approve [post]
func (ctrl *ReturnController) ApproveReturn(c *gin.Context) {
	ctrl.updateStatus(c, ctrl.returnService.Approve, "Return approved successfully")
}

// RejectReturn godoc
// @Summary Reject return
// @Description Reject a pending return without touching stock
// @Tags Returns
// @Security BearerAuth
// @Produce json
// @Param id path int true "Return ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /returns/{id}/reject [post]
func (ctrl *ReturnController) RejectReturn(c *gin.Context) {
	ctrl.updateStatus(c, ctrl.returnService.Reject, "Return rejected successfully")
}

func (ctrl *ReturnController) updateStatus(c *gin.Context, op func(int, string) (*models.Return, error), message string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid return ID",
			Error:   err.Error(),
		})
		return
	}

	processedBy, _ := c.Get("username")
	name, _ := processedBy.(string)

	ret, err := op(id, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Return not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to update return",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    ret,
	})
}
