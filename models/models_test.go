package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	p := Product{Quantity: 5, LowStockThreshold: 10}
	assert.True(t, p.IsLowStock())

	p.Quantity = 10
	assert.True(t, p.IsLowStock())

	p.Quantity = 11
	assert.False(t, p.IsLowStock())
}

func TestStockDelta(t *testing.T) {
	add := StockAdjustment{AdjustmentType: AdjustmentAdd, Quantity: 7}
	assert.Equal(t, 7, add.StockDelta())

	remove := StockAdjustment{AdjustmentType: AdjustmentRemove, Quantity: 3}
	assert.Equal(t, -3, remove.StockDelta())

	damage := StockAdjustment{AdjustmentType: AdjustmentDamage, Quantity: 2}
	assert.Equal(t, -2, damage.StockDelta())
}

func TestJournalEntryBalanced(t *testing.T) {
	entry := JournalEntry{
		TotalDebit:  decimal.NewFromFloat(150.25),
		TotalCredit: decimal.NewFromFloat(150.25),
	}
	assert.True(t, entry.Balanced())

	entry.TotalCredit = decimal.NewFromFloat(150.24)
	assert.False(t, entry.Balanced())
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleManager))
	assert.True(t, IsValidRole(RoleInventoryManager))
	assert.False(t, IsValidRole("Admin"))
	assert.False(t, IsValidRole(""))
}
