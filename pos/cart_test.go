package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func snapshot(id int, name, price string, stock int) ProductSnapshot {
	return ProductSnapshot{
		ID:                id,
		Name:              name,
		SellPrice:         dec(price),
		AvailableStock:    stock,
		LowStockThreshold: 5,
	}
}

func TestAddItemCreatesLine(t *testing.T) {
	cart := NewCart(dec("0.15"))

	err := cart.AddItem(snapshot(1, "Milk", "3.99", 10), 2)
	require.NoError(t, err)

	assert.Equal(t, StateBuilding, cart.State())
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(dec("3.99")))
	assert.True(t, lines[0].LineTotal.Equal(dec("7.98")))
}

func TestAddItemMergesExistingLine(t *testing.T) {
	cart := NewCart(dec("0.15"))
	p := snapshot(1, "Milk", "3.99", 10)

	require.NoError(t, cart.AddItem(p, 2))
	require.NoError(t, cart.AddItem(p, 3))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.True(t, lines[0].LineTotal.Equal(dec("19.95")))
}

func TestAddItemOutOfStock(t *testing.T) {
	cart := NewCart(dec("0.15"))

	err := cart.AddItem(snapshot(1, "Milk", "3.99", 0), 1)

	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, "Milk", oos.ProductName)
	assert.Equal(t, StateEmpty, cart.State())
	assert.Empty(t, cart.Lines())
}

func TestAddItemInsufficientStockOnMerge(t *testing.T) {
	cart := NewCart(dec("0.15"))
	p := snapshot(1, "Milk", "3.99", 4)

	require.NoError(t, cart.AddItem(p, 3))
	err := cart.AddItem(p, 2)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.Available)

	// Line left unchanged after the rejected merge.
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestAddItemMergeUsesFreshStock(t *testing.T) {
	cart := NewCart(dec("0.15"))

	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 4), 3))

	// The catalog was restocked since the first add; the merge is bounded
	// by the stock passed in, not the stale line snapshot.
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 4))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
	assert.Equal(t, 10, lines[0].Product.AvailableStock)

	// And a drained catalog rejects the merge even though the original
	// snapshot had room.
	err := cart.AddItem(snapshot(1, "Milk", "3.99", 7), 1)
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 7, insufficient.Available)
}

func TestAddItemMergeKeepsFirstAddPrice(t *testing.T) {
	cart := NewCart(decimal.Zero)

	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 1))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "4.49", 10), 1))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(dec("3.99")))
	assert.True(t, lines[0].LineTotal.Equal(dec("7.98")))
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	cart := NewCart(dec("0.15"))

	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 0))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestUpdateQuantityBeyondStockLeavesLineUnchanged(t *testing.T) {
	cart := NewCart(dec("0.15"))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 2))

	lines := cart.Lines()
	require.True(t, lines[0].LineTotal.Equal(dec("7.98")))

	err := cart.UpdateQuantity(1, 12)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 10, insufficient.Available)

	lines = cart.Lines()
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].LineTotal.Equal(dec("7.98")))
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart(dec("0.15"))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 2))
	require.NoError(t, cart.AddItem(snapshot(2, "Bread", "2.50", 8), 1))

	require.NoError(t, cart.UpdateQuantity(1, 0))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Product.ID)
	assert.Equal(t, StateBuilding, cart.State())
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	cart := NewCart(dec("0.15"))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 2))

	require.NoError(t, cart.UpdateQuantity(99, 5))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestRemoveLastLineReturnsToEmpty(t *testing.T) {
	cart := NewCart(dec("0.15"))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 2))

	cart.RemoveItem(1)

	assert.Equal(t, StateEmpty, cart.State())
	assert.Empty(t, cart.Lines())

	// Removing again is idempotent.
	cart.RemoveItem(1)
	assert.Equal(t, StateEmpty, cart.State())
}

func TestTotalsExactAndIdempotent(t *testing.T) {
	cart := NewCart(dec("0.15"))
	require.NoError(t, cart.AddItem(snapshot(1, "Rice", "25.00", 20), 4))

	first := cart.Totals()
	second := cart.Totals()

	assert.True(t, first.Subtotal.Equal(dec("100.00")), "subtotal was %s", first.Subtotal)
	assert.True(t, first.Tax.Equal(dec("15.00")), "tax was %s", first.Tax)
	assert.True(t, first.Total.Equal(dec("115.00")), "total was %s", first.Total)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))

	assert.True(t, first.Total.Equal(first.Subtotal.Add(first.Tax)))
	assert.True(t, first.Tax.Equal(first.Subtotal.Mul(dec("0.15"))))
}

func TestTotalsRecomputedAfterMutation(t *testing.T) {
	cart := NewCart(dec("0.10"))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "2.00", 10), 2))
	require.True(t, cart.Totals().Subtotal.Equal(dec("4.00")))

	require.NoError(t, cart.UpdateQuantity(1, 5))
	assert.True(t, cart.Totals().Subtotal.Equal(dec("10.00")))

	cart.RemoveItem(1)
	assert.True(t, cart.Totals().Total.Equal(decimal.Zero))
}

func TestLineInvariantsHoldAcrossMutationSequences(t *testing.T) {
	milk := snapshot(1, "Milk", "3.99", 10)
	bread := snapshot(2, "Bread", "2.50", 3)
	rice := snapshot(3, "Rice", "25.00", 7)

	cart := NewCart(dec("0.15"))

	ops := []func() error{
		func() error { return cart.AddItem(milk, 2) },
		func() error { return cart.AddItem(bread, 3) },
		func() error { return cart.AddItem(bread, 1) }, // rejected, stock 3
		func() error { return cart.AddItem(rice, 1) },
		func() error { return cart.UpdateQuantity(1, 9) },
		func() error { return cart.UpdateQuantity(3, 11) }, // rejected, stock 7
		func() error { cart.RemoveItem(2); return nil },
		func() error { return cart.UpdateQuantity(1, 4) },
	}

	for _, op := range ops {
		_ = op()
		for _, line := range cart.Lines() {
			assert.GreaterOrEqual(t, line.Quantity, 1)
			assert.LessOrEqual(t, line.Quantity, line.Product.AvailableStock)
			expected := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			assert.True(t, line.LineTotal.Equal(expected),
				"line %d total %s != %s", line.Product.ID, line.LineTotal, expected)
		}
	}

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestInitiateCheckoutFromEmptyFails(t *testing.T) {
	cart := NewCart(dec("0.15"))

	err := cart.InitiateCheckout()

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StateEmpty, cart.State())
}

func TestCheckoutStateTransitions(t *testing.T) {
	cart := NewCart(dec("0.15"))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 1))

	require.NoError(t, cart.InitiateCheckout())
	assert.Equal(t, StateAwaitingPayment, cart.State())

	// Mutations are rejected while payment is being collected.
	err := cart.AddItem(snapshot(2, "Bread", "2.50", 5), 1)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	err = cart.UpdateQuantity(1, 3)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	require.NoError(t, cart.CancelPayment())
	assert.Equal(t, StateBuilding, cart.State())
	require.Len(t, cart.Lines(), 1)

	// CancelPayment is only valid from AwaitingPayment.
	assert.ErrorIs(t, cart.CancelPayment(), ErrIllegalTransition)
}

func TestCancelClearsCart(t *testing.T) {
	customerID := 7
	cart := NewCart(dec("0.15"))
	require.NoError(t, cart.AddItem(snapshot(1, "Milk", "3.99", 10), 2))
	require.NoError(t, cart.SelectCustomer(&customerID))

	require.NoError(t, cart.Cancel())

	assert.Equal(t, StateCancelled, cart.State())
	assert.Empty(t, cart.Lines())
	assert.Nil(t, cart.SelectedCustomer())
	assert.True(t, cart.State().IsTerminal())
}
