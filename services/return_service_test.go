package services

import (
	"testing"

	"smart-supermarket/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleWithItems() *models.Sale {
	return &models.Sale{
		ID: 42,
		Items: []models.SaleItem{
			{ProductID: 1, ProductName: "Milk", Quantity: 3, Price: decimal.RequireFromString("3.99")},
			{ProductID: 2, ProductName: "Bread", Quantity: 1, Price: decimal.RequireFromString("2.50")},
		},
	}
}

func TestBuildReturnLinesPricesFromSale(t *testing.T) {
	items, err := buildReturnLines(saleWithItems(), []models.ReturnLineRequest{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Milk", items[0].ProductName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("3.99")))
	assert.Equal(t, "Bread", items[1].ProductName)
}

func TestBuildReturnLinesRejectsUnsoldProduct(t *testing.T) {
	_, err := buildReturnLines(saleWithItems(), []models.ReturnLineRequest{
		{ProductID: 9, Quantity: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "was not part of sale 42")
}

func TestBuildReturnLinesRejectsOverQuantity(t *testing.T) {
	_, err := buildReturnLines(saleWithItems(), []models.ReturnLineRequest{
		{ProductID: 2, Quantity: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only 1 were sold")
}

func TestBuildReturnLinesRejectsDuplicateProduct(t *testing.T) {
	_, err := buildReturnLines(saleWithItems(), []models.ReturnLineRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 1, Quantity: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listed more than once")
}
