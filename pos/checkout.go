package pos

import (
	"context"
	"fmt"
	"time"

	"smart-supermarket/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkout step names reported inside PersistenceError.
const (
	StepFetchMethods   = "fetch-payment-methods"
	StepValidateStock  = "validate-stock"
	StepCreateSale     = "create-sale"
	StepCreateSaleItem = "create-sale-item"
	StepDecrementStock = "decrement-stock"
	StepCreateReceipt  = "create-receipt"
	StepUpdateCustomer = "update-customer"
)

// EntityStore is the persistence collaborator the engine writes through
// during checkout. Implementations own the records once written; the engine
// keeps no reference to them beyond the receipt number.
type EntityStore interface {
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	DecrementStock(ctx context.Context, productID, qty int) error
	CreateSale(ctx context.Context, sale *models.Sale) error
	CreateSaleItem(ctx context.Context, item *models.SaleItem) error
	CreateReceipt(ctx context.Context, receipt *models.Receipt) error
	UpdateCustomerLoyalty(ctx context.Context, id, points int, purchase decimal.Decimal, when time.Time) error
	ActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
}

type CheckoutInput struct {
	PaymentMethod  string
	AmountTendered decimal.Decimal
	CashierName    string
}

type CheckoutResult struct {
	SaleID        int
	ReceiptNumber string
	Totals        Totals
	Change        decimal.Decimal
}

// Engine runs the checkout orchestration for carts it created. The write
// sequence is strictly ordered and best effort: a step failure surfaces a
// PersistenceError and returns the cart to AwaitingPayment with its lines
// preserved, leaving any earlier writes in place for the caller to
// reconcile.
type Engine struct {
	store   EntityStore
	taxRate decimal.Decimal
}

func NewEngine(store EntityStore, taxRate decimal.Decimal) *Engine {
	return &Engine{store: store, taxRate: taxRate}
}

func (e *Engine) NewCart() *Cart {
	return NewCart(e.taxRate)
}

// ConfirmPayment validates the payment and runs the write sequence:
// sale header, then per line a sale item and a stock decrement, then the
// receipt, then the loyalty update when a customer is selected. Stock is
// re-validated against the catalog first, since cart snapshots may be stale.
func (e *Engine) ConfirmPayment(ctx context.Context, cart *Cart, in CheckoutInput) (*CheckoutResult, error) {
	if cart.state != StateAwaitingPayment {
		if cart.state == StateEmpty {
			return nil, ErrEmptyCart
		}
		return nil, ErrIllegalTransition
	}

	method, err := e.resolvePaymentMethod(ctx, in.PaymentMethod)
	if err != nil {
		return nil, err
	}

	totals := cart.Totals()

	change := decimal.Zero
	if method.Type == models.PaymentCash {
		if in.AmountTendered.LessThan(totals.Total) {
			return nil, &InsufficientPaymentError{
				Total:     totals.Total,
				Tendered:  in.AmountTendered,
				Shortfall: totals.Total.Sub(in.AmountTendered),
			}
		}
		change = in.AmountTendered.Sub(totals.Total)
	}

	cart.state = StateProcessing

	result, err := e.runCheckout(ctx, cart, method, totals, in.CashierName)
	if err != nil {
		cart.state = StateAwaitingPayment
		return nil, err
	}

	result.Change = change
	cart.clear()
	cart.state = StateCompleted
	return result, nil
}

func (e *Engine) resolvePaymentMethod(ctx context.Context, name string) (*models.PaymentMethod, error) {
	methods, err := e.store.ActivePaymentMethods(ctx)
	if err != nil {
		return nil, &PersistenceError{Step: StepFetchMethods, Cause: err}
	}
	for i := range methods {
		if methods[i].Name == name && methods[i].IsActive {
			return &methods[i], nil
		}
	}
	return nil, &UnrecognizedPaymentMethodError{Method: name}
}

func (e *Engine) runCheckout(ctx context.Context, cart *Cart, method *models.PaymentMethod, totals Totals, cashier string) (*CheckoutResult, error) {
	lines := cart.Lines()

	for _, line := range lines {
		product, err := e.store.GetProduct(ctx, line.Product.ID)
		if err != nil {
			return nil, &PersistenceError{Step: StepValidateStock, Cause: err}
		}
		if product.Quantity < line.Quantity {
			return nil, &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.Quantity,
			}
		}
	}

	now := time.Now()

	sale := &models.Sale{
		SaleDate:      now,
		TotalAmount:   totals.Total,
		TaxAmount:     totals.Tax,
		CashierName:   cashier,
		CustomerID:    cart.customerID,
		PaymentMethod: method.Name,
	}
	if err := e.store.CreateSale(ctx, sale); err != nil {
		return nil, &PersistenceError{Step: StepCreateSale, Cause: err}
	}

	for _, line := range lines {
		item := &models.SaleItem{
			SaleID:      sale.ID,
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.UnitPrice,
			TotalPrice:  line.LineTotal,
		}
		if err := e.store.CreateSaleItem(ctx, item); err != nil {
			return nil, &PersistenceError{Step: StepCreateSaleItem, Cause: err}
		}
		if err := e.store.DecrementStock(ctx, line.Product.ID, line.Quantity); err != nil {
			return nil, &PersistenceError{Step: StepDecrementStock, Cause: err}
		}
	}

	receipt := &models.Receipt{
		ReceiptNumber: newReceiptNumber(),
		SaleID:        sale.ID,
		CustomerID:    cart.customerID,
		TotalAmount:   totals.Total,
		PaymentMethod: method.Name,
		CashierName:   cashier,
		ReceiptDate:   now,
	}
	if err := e.store.CreateReceipt(ctx, receipt); err != nil {
		return nil, &PersistenceError{Step: StepCreateReceipt, Cause: err}
	}

	if cart.customerID != nil {
		points := int(totals.Total.Div(decimal.NewFromInt(10)).Floor().IntPart())
		if err := e.store.UpdateCustomerLoyalty(ctx, *cart.customerID, points, totals.Total, now); err != nil {
			return nil, &PersistenceError{Step: StepUpdateCustomer, Cause: err}
		}
	}

	return &CheckoutResult{
		SaleID:        sale.ID,
		ReceiptNumber: receipt.ReceiptNumber,
		Totals:        totals,
	}, nil
}

// Receipt numbers are generated client side; uniqueness is not enforced by
// the persistence layer, so a UUID beats the timestamp the format implies.
func newReceiptNumber() string {
	return fmt.Sprintf("RCP-%s", uuid.NewString())
}
