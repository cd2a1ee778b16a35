package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID            int       `json:"id"`
	SupplierCode  string    `json:"supplier_code"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	PaymentTerms  *string   `json:"payment_terms,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const (
	POStatusPending   = "Pending"
	POStatusReceived  = "Received"
	POStatusCancelled = "Cancelled"
)

type PurchaseOrder struct {
	ID               int                 `json:"id"`
	PONumber         string              `json:"po_number"`
	SupplierID       int                 `json:"supplier_id"`
	SupplierName     string              `json:"supplier_name"`
	OrderDate        time.Time           `json:"order_date"`
	ExpectedDelivery *time.Time          `json:"expected_delivery,omitempty"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	Status           string              `json:"status"`
	CreatedBy        string              `json:"created_by"`
	Items            []PurchaseOrderItem `json:"items,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type PurchaseOrderItem struct {
	ID               int             `json:"id"`
	POID             int             `json:"po_id"`
	ProductID        int             `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	ReceivedQuantity int             `json:"received_quantity"`
	CreatedAt        time.Time       `json:"created_at"`
}
