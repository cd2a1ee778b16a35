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

type SupplierController struct {
	supplierService *services.SupplierService
}

func NewSupplierController() *SupplierController {
	return &SupplierController{
		supplierService: services.NewSupplierService(),
	}
}

func (ctrl *SupplierController) GetAllSuppliers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")

	result, err := ctrl.supplierService.GetAll(page, limit, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve suppliers",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *SupplierController) GetSupplierByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid supplier ID",
			Error:   err.Error(),
		})
		return
	}

	supplier, err := ctrl.supplierService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Supplier not found",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Supplier retrieved successfully",
		Data:    supplier,
	})
}

func (ctrl *SupplierController) CreateSupplier(c *gin.Context) {
	var req models.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	supplier, err := ctrl.supplierService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create supplier",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Supplier created successfully",
		Data:    supplier,
	})
}

func (ctrl *SupplierController) UpdateSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid supplier ID",
			Error:   err.Error(),
		})
		return
	}

	var req models.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	supplier, err := ctrl.supplierService.Update(id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Supplier not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to update supplier",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Supplier updated successfully",
		Data:    supplier,
	})
}

func (ctrl *SupplierController) DeleteSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid supplier ID",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.supplierService.Delete(id); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete supplier",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Supplier deleted successfully",
	})
}

// CreatePurchaseOrder godoc
// @Summary Create purchase order
// @Description Create a purchase order with item lines for a supplier
// @Tags Purchase Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreatePurchaseOrderRequest true "Purchase Order Request"
// @Success 201 {object} models.Response
// @Router /purchase-orders [post]
func (ctrl *SupplierController) CreatePurchaseOrder(c *gin.Context) {
	var req models.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	createdBy, _ := c.Get("username")
	name, _ := createdBy.(string)

	po, err := ctrl.supplierService.CreatePurchaseOrder(req, name)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create purchase order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Purchase order created successfully",
		Data:    po,
	})
}

func (ctrl *SupplierController) GetPurchaseOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	result, err := ctrl.supplierService.GetPurchaseOrders(page, limit, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve purchase orders",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *SupplierController) GetPurchaseOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid purchase order ID",
			Error:   err.Error(),
		})
		return
	}

	po, err := ctrl.supplierService.GetPurchaseOrderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Purchase order not found",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Purchase order retrieved successfully",
		Data:    po,
	})
}

// ReceivePurchaseOrder godoc
// @Summary Receive purchase order
// @Description Mark a pending purchase order as received and restock its products
// @Tags Purchase Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Purchase Order ID"
// @Param request body models.ReceivePurchaseOrderRequest false "Received quantities"
// @Success 200 {object} models.Response
// @Router /purchase-orders/{id}/receive [post]
func (ctrl *SupplierController) ReceivePurchaseOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid purchase order ID",
			Error:   err.Error(),
		})
		return
	}

	var req models.ReceivePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	po, err := ctrl.supplierService.ReceivePurchaseOrder(id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Purchase order not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to receive purchase order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Purchase order received",
		Data:    po,
	})
}

func (ctrl *SupplierController) CancelPurchaseOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid purchase order ID",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.supplierService.CancelPurchaseOrder(id); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to cancel purchase order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Purchase order cancelled",
	})
}
