package pos

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("operation not allowed in current cart state")
)

type OutOfStockError struct {
	ProductID   int
	ProductName string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s is currently out of stock", e.ProductName)
}

type InsufficientStockError struct {
	ProductID   int
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: only %d units available", e.ProductName, e.Available)
}

type InsufficientPaymentError struct {
	Total     decimal.Decimal
	Tendered  decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment: total %s, received %s, short %s",
		e.Total.StringFixed(2), e.Tendered.StringFixed(2), e.Shortfall.StringFixed(2))
}

type UnrecognizedPaymentMethodError struct {
	Method string
}

func (e *UnrecognizedPaymentMethodError) Error() string {
	return fmt.Sprintf("payment method %q is not recognized or not active", e.Method)
}

// PersistenceError wraps a failure from the entity store during checkout
// orchestration. Steps that succeeded before the failure are not undone;
// the caller must reconcile (re-fetch catalog state) before retrying.
type PersistenceError struct {
	Step  string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("checkout step %q failed: %v", e.Step, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
