package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"smart-supermarket/models"
	"smart-supermarket/pos"
	"smart-supermarket/repositories"
	"smart-supermarket/services"

	"github.com/gin-gonic/gin"
)

type POSController struct {
	posService *services.POSService
}

func NewPOSController() *POSController {
	return &POSController{
		posService: services.NewPOSService(),
	}
}

// respondCartError maps the cart error taxonomy onto HTTP statuses so the
// register UI can tell the failure modes apart.
func respondCartError(c *gin.Context, err error) {
	var outOfStock *pos.OutOfStockError
	var insufficientStock *pos.InsufficientStockError
	var insufficientPayment *pos.InsufficientPaymentError
	var unknownMethod *pos.UnrecognizedPaymentMethodError
	var persistence *pos.PersistenceError

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
	case errors.As(err, &outOfStock):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Product is out of stock",
			Error:   err.Error(),
		})
	case errors.As(err, &insufficientStock):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Not enough stock available",
			Error:   err.Error(),
		})
	case errors.As(err, &insufficientPayment):
		c.JSON(http.StatusPaymentRequired, models.ErrorResponse{
			Success: false,
			Message: "Amount tendered does not cover the total",
			Error:   err.Error(),
		})
	case errors.As(err, &unknownMethod):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Unrecognized payment method",
			Error:   err.Error(),
		})
	case errors.Is(err, pos.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Cart is empty",
		})
	case errors.Is(err, pos.ErrIllegalTransition):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: "Operation not allowed in the current cart state",
		})
	case errors.As(err, &persistence):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Checkout failed while recording the sale",
			Error:   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Cart operation failed",
			Error:   err.Error(),
		})
	}
}

// GetCart godoc
// @Summary Get current cart
// @Description Current cashier cart with lines and totals
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /pos/cart [get]
func (ctrl *POSController) GetCart(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    ctrl.posService.GetCart(cashierID),
	})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the cashier cart, merging into an existing line
// @Tags POS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Item Request"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /pos/cart/items [post]
func (ctrl *POSController) AddItem(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.posService.AddItem(cashierID, req)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart line; zero removes the line
// @Tags POS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity Request"
// @Success 200 {object} models.Response
// @Router /pos/cart/items/{productId} [patch]
func (ctrl *POSController) UpdateItem(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
			Error:   err.Error(),
		})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.posService.UpdateQuantity(cashierID, productID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    cart,
	})
}

// RemoveItem godoc
// @Summary Remove cart item
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /pos/cart/items/{productId} [delete]
func (ctrl *POSController) RemoveItem(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.posService.RemoveItem(cashierID, productID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed",
		Data:    cart,
	})
}

// SelectCustomer godoc
// @Summary Attach customer to cart
// @Description Attach a loyalty customer to the transaction, or clear with null
// @Tags POS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SelectCustomerRequest true "Customer Request"
// @Success 200 {object} models.Response
// @Router /pos/cart/customer [put]
func (ctrl *POSController) SelectCustomer(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	var req models.SelectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.posService.SelectCustomer(c.Request.Context(), cashierID, req.CustomerID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Customer selected",
		Data:    cart,
	})
}

// InitiateCheckout godoc
// @Summary Initiate checkout
// @Description Move a non-empty cart to awaiting payment
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /pos/cart/checkout [post]
func (ctrl *POSController) InitiateCheckout(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	cart, err := ctrl.posService.InitiateCheckout(cashierID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Awaiting payment",
		Data:    cart,
	})
}

// CancelPayment godoc
// @Summary Cancel payment
// @Description Return an awaiting-payment cart to building with lines intact
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /pos/cart/checkout [delete]
func (ctrl *POSController) CancelPayment(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	cart, err := ctrl.posService.CancelPayment(cashierID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment cancelled",
		Data:    cart,
	})
}

// ConfirmPayment godoc
// @Summary Confirm payment
// @Description Validate payment and record the sale, stock movements, receipt and loyalty points
// @Tags POS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ConfirmPaymentRequest true "Payment Request"
// @Success 200 {object} models.Response
// @Failure 402 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /pos/cart/payment [post]
func (ctrl *POSController) ConfirmPayment(c *gin.Context) {
	cashierID := c.GetInt("user_id")
	cashierName := c.GetString("username")

	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	result, err := ctrl.posService.ConfirmPayment(c.Request.Context(), cashierID, cashierName, req)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Sale completed",
		Data:    result,
	})
}

// CancelCart godoc
// @Summary Cancel transaction
// @Description Abandon the current cart without recording anything
// @Tags POS
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /pos/cart [delete]
func (ctrl *POSController) CancelCart(c *gin.Context) {
	cashierID := c.GetInt("user_id")

	if err := ctrl.posService.Cancel(cashierID); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Transaction cancelled",
	})
}
