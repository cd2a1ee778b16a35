package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
	Role     string `json:"role" binding:"omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Email  string `json:"email" binding:"omitempty,email"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Status string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category" binding:"required"`
	Quantity          int             `json:"quantity" binding:"gte=0"`
	CostPrice         decimal.Decimal `json:"cost_price" binding:"required"`
	SellPrice         decimal.Decimal `json:"sell_price" binding:"required"`
	LowStockThreshold int             `json:"low_stock_threshold" binding:"gte=0"`
	Barcode           string          `json:"barcode"`
	SKU               string          `json:"sku"`
	SupplierID        *int            `json:"supplier_id"`
}

type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	Quantity          *int             `json:"quantity"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	SellPrice         *decimal.Decimal `json:"sell_price"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	Barcode           *string          `json:"barcode"`
	SKU               *string          `json:"sku"`
	SupplierID        *int             `json:"supplier_id"`
}

type CreateStockAdjustmentRequest struct {
	ProductID      int    `json:"product_id" binding:"required"`
	AdjustmentType string `json:"adjustment_type" binding:"required,oneof=Add Remove Damage Transfer"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
	Reason         string `json:"reason" binding:"required"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentTerms  string `json:"payment_terms"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	PaymentTerms  *string `json:"payment_terms"`
	Status        *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

type PurchaseOrderItemRequest struct {
	ProductID int             `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID       int                        `json:"supplier_id" binding:"required"`
	ExpectedDelivery *time.Time                 `json:"expected_delivery"`
	Items            []PurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ReceivePurchaseOrderItem struct {
	ItemID           int `json:"item_id" binding:"required"`
	ReceivedQuantity int `json:"received_quantity" binding:"required,gt=0"`
}

type ReceivePurchaseOrderRequest struct {
	Items []ReceivePurchaseOrderItem `json:"items" binding:"omitempty,dive"`
}

type ReturnLineRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

type CreateReturnRequest struct {
	SaleID int                 `json:"sale_id" binding:"required"`
	Reason string              `json:"reason"`
	Items  []ReturnLineRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateEmployeeRequest struct {
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email" binding:"omitempty,email"`
	Phone      string          `json:"phone"`
	Role       string          `json:"role" binding:"required"`
	Position   string          `json:"position"`
	Department string          `json:"department" binding:"required"`
	HireDate   time.Time       `json:"hire_date" binding:"required"`
	Salary     decimal.Decimal `json:"salary" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email" binding:"omitempty,email"`
	Phone      *string          `json:"phone"`
	Role       *string          `json:"role"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
	Status     *string          `json:"status" binding:"omitempty,oneof=Active Inactive 'On Leave'"`
}

type CreateShiftRequest struct {
	EmployeeID int       `json:"employee_id" binding:"required"`
	ShiftDate  time.Time `json:"shift_date" binding:"required"`
	StartTime  string    `json:"start_time" binding:"required"`
	EndTime    string    `json:"end_time" binding:"required"`
}

type CreateAccountRequest struct {
	Name            string          `json:"name" binding:"required"`
	AccountType     string          `json:"account_type" binding:"required,oneof=Asset Liability Equity Revenue Expense"`
	Balance         decimal.Decimal `json:"balance"`
	ParentAccountID *int            `json:"parent_account_id"`
}

type JournalDetailRequest struct {
	AccountID int             `json:"account_id" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

type CreateJournalEntryRequest struct {
	EntryDate   time.Time              `json:"entry_date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Details     []JournalDetailRequest `json:"details" binding:"required,min=2,dive"`
}

type CreatePaymentMethodRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=Cash Card Mobile Other"`
	IsActive bool   `json:"is_active"`
}

type CreateTaxRateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Rate        float64 `json:"rate" binding:"gte=0"`
	Description string  `json:"description"`
	IsActive    bool    `json:"is_active"`
}

type CreateNotificationRequest struct {
	UserID  int    `json:"user_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=Info Warning Error"`
}

type CreateAIAlertRequest struct {
	AlertType string  `json:"alert_type" binding:"required,oneof=Stock Sales Financial Anomaly"`
	Message   string  `json:"message" binding:"required"`
	RiskScore float64 `json:"risk_score" binding:"gte=0,lte=100"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"omitempty,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type SelectCustomerRequest struct {
	CustomerID *int `json:"customer_id"`
}

type ConfirmPaymentRequest struct {
	PaymentMethod  string          `json:"payment_method" binding:"required"`
	AmountTendered decimal.Decimal `json:"amount_tendered"`
}
