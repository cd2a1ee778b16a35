package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"smart-supermarket/models"
	"smart-supermarket/services"

	"github.com/gin-gonic/gin"
)

type AccountingController struct {
	accountingService *services.AccountingService
}

func NewAccountingController() *AccountingController {
	return &AccountingController{
		accountingService: services.NewAccountingService(),
	}
}

func (ctrl *AccountingController) GetAccounts(c *gin.Context) {
	accounts, err := ctrl.accountingService.GetAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve accounts",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Accounts retrieved successfully",
		Data:    accounts,
	})
}

func (ctrl *AccountingController) CreateAccount(c *gin.Context) {
	var req models.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	account, err := ctrl.accountingService.CreateAccount(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create account",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Account created successfully",
		Data:    account,
	})
}

// CreateJournalEntry godoc
// @Summary Create journal entry
// @Description Post a balanced double-entry journal entry
// @Tags Accounting
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateJournalEntryRequest true "Journal Entry Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /accounting/journal-entries [post]
func (ctrl *AccountingController) CreateJournalEntry(c *gin.Context) {
	var req models.CreateJournalEntryRequest
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

	entry, err := ctrl.accountingService.CreateJournalEntry(req, name)
	if err != nil {
		if errors.Is(err, services.ErrUnbalancedEntry) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Journal entry debits and credits must balance",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Failed to create journal entry",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Journal entry created successfully",
		Data:    entry,
	})
}

func (ctrl *AccountingController) GetJournalEntries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctrl.accountingService.GetJournalEntries(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve journal entries",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *AccountingController) GetJournalEntryByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid journal entry ID",
			Error:   err.Error(),
		})
		return
	}

	entry, err := ctrl.accountingService.GetJournalEntryByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Journal entry not found",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Journal entry retrieved successfully",
		Data:    entry,
	})
}
