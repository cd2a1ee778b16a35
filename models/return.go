package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReturnStatusPending  = "Pending"
	ReturnStatusApproved = "Approved"
	ReturnStatusRejected = "Rejected"
)

// Return is a refund request against a completed sale. It starts Pending;
// approving it restocks the returned products through a stock adjustment,
// rejecting it leaves stock untouched.
type Return struct {
	ID           int             `json:"id"`
	ReturnNumber string          `json:"return_number"`
	SaleID       int             `json:"sale_id"`
	CustomerID   *int            `json:"customer_id,omitempty"`
	ReturnAmount decimal.Decimal `json:"return_amount"`
	Reason       string          `json:"reason"`
	ProcessedBy  string          `json:"processed_by"`
	ReturnDate   time.Time       `json:"return_date"`
	Status       string          `json:"status"`
	Items        []ReturnItem    `json:"items,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type ReturnItem struct {
	ID          int             `json:"id"`
	ReturnID    int             `json:"return_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}
