package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          int             `json:"quantity"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	SellPrice         decimal.Decimal `json:"sell_price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	Barcode           *string         `json:"barcode,omitempty"`
	SKU               *string         `json:"sku,omitempty"`
	SupplierID        *int            `json:"supplier_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

const (
	AdjustmentAdd      = "Add"
	AdjustmentRemove   = "Remove"
	AdjustmentDamage   = "Damage"
	AdjustmentTransfer = "Transfer"
)

type StockAdjustment struct {
	ID             int       `json:"id"`
	ProductID      int       `json:"product_id"`
	ProductName    string    `json:"product_name"`
	AdjustmentType string    `json:"adjustment_type"`
	Quantity       int       `json:"quantity"`
	Reason         string    `json:"reason"`
	AdjustedBy     string    `json:"adjusted_by"`
	AdjustmentDate time.Time `json:"adjustment_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// StockDelta is the signed change a given adjustment applies to the
// product quantity. Add is positive, everything else removes stock.
func (a *StockAdjustment) StockDelta() int {
	switch a.AdjustmentType {
	case AdjustmentAdd:
		return a.Quantity
	default:
		return -a.Quantity
	}
}
