package pos

import (
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the catalog state captured when a product is added to
// the cart. AvailableStock is the stock as known at that moment; the
// authoritative count lives in the catalog and is re-checked at checkout.
type ProductSnapshot struct {
	ID                int
	Name              string
	SellPrice         decimal.Decimal
	AvailableStock    int
	LowStockThreshold int
}

type CartLine struct {
	Product   ProductSnapshot
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Cart holds one in-progress transaction for one cashier. It is not safe
// for concurrent use; callers must serialize access.
type Cart struct {
	state      State
	lines      map[int]*CartLine
	order      []int
	customerID *int
	taxRate    decimal.Decimal
}

func NewCart(taxRate decimal.Decimal) *Cart {
	return &Cart{
		state:   StateEmpty,
		lines:   make(map[int]*CartLine),
		taxRate: taxRate,
	}
}

func (c *Cart) State() State {
	return c.state
}

func (c *Cart) TaxRate() decimal.Decimal {
	return c.taxRate
}

// Lines returns the cart lines in the order products were first added.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.lines))
	for _, id := range c.order {
		if line, ok := c.lines[id]; ok {
			out = append(out, *line)
		}
	}
	return out
}

func (c *Cart) SelectedCustomer() *int {
	return c.customerID
}

func (c *Cart) SelectCustomer(customerID *int) error {
	if c.state != StateEmpty && c.state != StateBuilding && c.state != StateAwaitingPayment {
		return ErrIllegalTransition
	}
	c.customerID = customerID
	return nil
}

// AddItem adds requestedQty units of a product, merging into the existing
// line for that product if one exists. A merge refreshes the line's catalog
// snapshot and bounds the combined quantity by the stock passed in; the
// unit price stays as captured on first add. A requestedQty below 1 is
// treated as 1.
func (c *Cart) AddItem(product ProductSnapshot, requestedQty int) error {
	if c.state != StateEmpty && c.state != StateBuilding {
		return ErrIllegalTransition
	}
	if requestedQty < 1 {
		requestedQty = 1
	}
	if product.AvailableStock <= 0 {
		return &OutOfStockError{ProductID: product.ID, ProductName: product.Name}
	}

	if existing, ok := c.lines[product.ID]; ok {
		newQty := existing.Quantity + requestedQty
		if newQty > product.AvailableStock {
			return &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.AvailableStock,
			}
		}
		existing.Product = product
		existing.Quantity = newQty
		existing.LineTotal = existing.UnitPrice.Mul(decimal.NewFromInt(int64(newQty)))
		return nil
	}

	if requestedQty > product.AvailableStock {
		return &InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.AvailableStock,
		}
	}

	c.lines[product.ID] = &CartLine{
		Product:   product,
		Quantity:  requestedQty,
		UnitPrice: product.SellPrice,
		LineTotal: product.SellPrice.Mul(decimal.NewFromInt(int64(requestedQty))),
	}
	c.order = append(c.order, product.ID)
	c.state = StateBuilding
	return nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line; an unknown product id is a no-op.
func (c *Cart) UpdateQuantity(productID, newQty int) error {
	if c.state != StateBuilding {
		if c.state == StateEmpty {
			return nil
		}
		return ErrIllegalTransition
	}

	line, ok := c.lines[productID]
	if !ok {
		return nil
	}

	if newQty <= 0 {
		c.RemoveItem(productID)
		return nil
	}

	if newQty > line.Product.AvailableStock {
		return &InsufficientStockError{
			ProductID:   productID,
			ProductName: line.Product.Name,
			Available:   line.Product.AvailableStock,
		}
	}

	line.Quantity = newQty
	line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(newQty)))
	return nil
}

// RemoveItem deletes the line for a product. Removing a product that is not
// in the cart is a no-op.
func (c *Cart) RemoveItem(productID int) {
	if c.state != StateBuilding {
		return
	}
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if len(c.lines) == 0 {
		c.state = StateEmpty
	}
}

// Totals derives subtotal, tax and total from the current lines. It is pure
// and never cached across mutations.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, id := range c.order {
		if line, ok := c.lines[id]; ok {
			subtotal = subtotal.Add(line.LineTotal)
		}
	}
	tax := subtotal.Mul(c.taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// InitiateCheckout moves a non-empty cart to AwaitingPayment.
func (c *Cart) InitiateCheckout() error {
	switch c.state {
	case StateEmpty:
		return ErrEmptyCart
	case StateBuilding:
		c.state = StateAwaitingPayment
		return nil
	default:
		return ErrIllegalTransition
	}
}

// CancelPayment returns an AwaitingPayment cart to Building with all lines
// intact. It is invalid once writes have begun.
func (c *Cart) CancelPayment() error {
	if c.state != StateAwaitingPayment {
		return ErrIllegalTransition
	}
	c.state = StateBuilding
	return nil
}

// Cancel abandons the transaction without writes. Valid at any point before
// processing starts.
func (c *Cart) Cancel() error {
	switch c.state {
	case StateEmpty, StateBuilding, StateAwaitingPayment:
		c.clear()
		c.state = StateCancelled
		return nil
	default:
		return ErrIllegalTransition
	}
}

func (c *Cart) clear() {
	c.lines = make(map[int]*CartLine)
	c.order = nil
	c.customerID = nil
}
