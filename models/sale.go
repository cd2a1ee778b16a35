package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID            int             `json:"id"`
	SaleDate      time.Time       `json:"sale_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	CashierName   string          `json:"cashier_name"`
	CustomerID    *int            `json:"customer_id,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Items         []SaleItem      `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type SaleItem struct {
	ID          int             `json:"id"`
	SaleID      int             `json:"sale_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Receipt struct {
	ID            int             `json:"id"`
	ReceiptNumber string          `json:"receipt_number"`
	SaleID        int             `json:"sale_id"`
	CustomerID    *int            `json:"customer_id,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	CashierName   string          `json:"cashier_name"`
	ReceiptDate   time.Time       `json:"receipt_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
