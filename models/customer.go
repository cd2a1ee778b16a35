package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID               int             `json:"id"`
	CustomerCode     string          `json:"customer_code"`
	Name             string          `json:"name"`
	Email            *string         `json:"email,omitempty"`
	Phone            *string         `json:"phone,omitempty"`
	Address          *string         `json:"address,omitempty"`
	LoyaltyPoints    int             `json:"loyalty_points"`
	TotalPurchases   decimal.Decimal `json:"total_purchases"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
