package pos

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-supermarket/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	products map[int]*models.Product
	methods  []models.PaymentMethod

	sales      []*models.Sale
	saleItems  []*models.SaleItem
	receipts   []*models.Receipt
	decrements map[int]int

	loyaltyPoints   int
	loyaltyPurchase decimal.Decimal
	loyaltyUpdated  bool

	failStep string
	nextID   int
}

func newMockStore() *mockStore {
	return &mockStore{
		products:   make(map[int]*models.Product),
		decrements: make(map[int]int),
		methods: []models.PaymentMethod{
			{ID: 1, Name: "Cash", Type: models.PaymentCash, IsActive: true},
			{ID: 2, Name: "Card", Type: models.PaymentCard, IsActive: true},
			{ID: 3, Name: "Voucher", Type: models.PaymentOther, IsActive: false},
		},
	}
}

func (m *mockStore) addProduct(id int, name, price string, qty int) *models.Product {
	p := &models.Product{
		ID:        id,
		Name:      name,
		SellPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
	m.products[id] = p
	return p
}

func (m *mockStore) GetProduct(_ context.Context, id int) (*models.Product, error) {
	if m.failStep == StepValidateStock {
		return nil, errors.New("catalog unavailable")
	}
	p, ok := m.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return p, nil
}

func (m *mockStore) DecrementStock(_ context.Context, productID, qty int) error {
	if m.failStep == StepDecrementStock {
		return errors.New("stock write failed")
	}
	m.products[productID].Quantity -= qty
	m.decrements[productID] += qty
	return nil
}

func (m *mockStore) CreateSale(_ context.Context, sale *models.Sale) error {
	if m.failStep == StepCreateSale {
		return errors.New("sale insert failed")
	}
	m.nextID++
	sale.ID = m.nextID
	m.sales = append(m.sales, sale)
	return nil
}

func (m *mockStore) CreateSaleItem(_ context.Context, item *models.SaleItem) error {
	if m.failStep == StepCreateSaleItem {
		return errors.New("sale item insert failed")
	}
	m.saleItems = append(m.saleItems, item)
	return nil
}

func (m *mockStore) CreateReceipt(_ context.Context, receipt *models.Receipt) error {
	if m.failStep == StepCreateReceipt {
		return errors.New("receipt insert failed")
	}
	m.receipts = append(m.receipts, receipt)
	return nil
}

func (m *mockStore) UpdateCustomerLoyalty(_ context.Context, id, points int, purchase decimal.Decimal, _ time.Time) error {
	if m.failStep == StepUpdateCustomer {
		return errors.New("customer update failed")
	}
	m.loyaltyPoints = points
	m.loyaltyPurchase = purchase
	m.loyaltyUpdated = true
	return nil
}

func (m *mockStore) ActivePaymentMethods(_ context.Context) ([]models.PaymentMethod, error) {
	if m.failStep == StepFetchMethods {
		return nil, errors.New("payment method query failed")
	}
	active := []models.PaymentMethod{}
	for _, pm := range m.methods {
		if pm.IsActive {
			active = append(active, pm)
		}
	}
	return active, nil
}

func buildCart(t *testing.T, engine *Engine, store *mockStore, qty int) *Cart {
	t.Helper()
	cart := engine.NewCart()
	p := store.products[1]
	require.NoError(t, cart.AddItem(ProductSnapshot{
		ID:             p.ID,
		Name:           p.Name,
		SellPrice:      p.SellPrice,
		AvailableStock: p.Quantity,
	}, qty))
	require.NoError(t, cart.InitiateCheckout())
	return cart
}

func TestConfirmPaymentCashInsufficient(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Rice", "25.00", 20)
	engine := NewEngine(store, decimal.RequireFromString("0.15"))
	cart := buildCart(t, engine, store, 4) // subtotal 100.00, total 115.00

	_, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod:  "Cash",
		AmountTendered: dec("100.00"),
		CashierName:    "jane",
	})

	var insufficient *InsufficientPaymentError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Shortfall.Equal(dec("15.00")), "shortfall was %s", insufficient.Shortfall)

	// Rejected before any write.
	assert.Empty(t, store.sales)
	assert.Empty(t, store.decrements)
	assert.Equal(t, StateAwaitingPayment, cart.State())
}

func TestConfirmPaymentCashSuccess(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Rice", "25.00", 20)
	engine := NewEngine(store, dec("0.15"))
	cart := buildCart(t, engine, store, 4)

	result, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod:  "Cash",
		AmountTendered: dec("120.00"),
		CashierName:    "jane",
	})
	require.NoError(t, err)

	assert.True(t, result.Change.Equal(dec("5.00")), "change was %s", result.Change)
	assert.True(t, result.Totals.Total.Equal(dec("115.00")))
	assert.Contains(t, result.ReceiptNumber, "RCP-")

	assert.Equal(t, StateCompleted, cart.State())
	assert.Empty(t, cart.Lines())

	require.Len(t, store.sales, 1)
	assert.Equal(t, "jane", store.sales[0].CashierName)
	assert.True(t, store.sales[0].TaxAmount.Equal(dec("15.00")))
	require.Len(t, store.saleItems, 1)
	assert.Equal(t, 4, store.saleItems[0].Quantity)
	assert.Equal(t, 4, store.decrements[1])
	require.Len(t, store.receipts, 1)
	assert.Equal(t, store.sales[0].ID, store.receipts[0].SaleID)
}

func TestConfirmPaymentNonCashIgnoresTendered(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Rice", "25.00", 20)
	engine := NewEngine(store, dec("0.15"))
	cart := buildCart(t, engine, store, 4)

	result, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod:  "Card",
		AmountTendered: decimal.Zero,
		CashierName:    "jane",
	})
	require.NoError(t, err)

	assert.True(t, result.Change.IsZero())
	assert.Equal(t, StateCompleted, cart.State())
}

func TestConfirmPaymentUnrecognizedMethod(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Rice", "25.00", 20)
	engine := NewEngine(store, dec("0.15"))
	cart := buildCart(t, engine, store, 1)

	_, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod: "Voucher", // exists but inactive
	})

	var unrecognized *UnrecognizedPaymentMethodError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "Voucher", unrecognized.Method)
	assert.Empty(t, store.sales)
	assert.Equal(t, StateAwaitingPayment, cart.State())
}

func TestConfirmPaymentUpdatesLoyalty(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Soap", "47.00", 10)
	engine := NewEngine(store, decimal.Zero) // zero tax keeps the total at 47.00

	cart := engine.NewCart()
	require.NoError(t, cart.AddItem(ProductSnapshot{ID: 1, Name: "Soap", SellPrice: dec("47.00"), AvailableStock: 10}, 1))
	customerID := 7
	require.NoError(t, cart.SelectCustomer(&customerID))
	require.NoError(t, cart.InitiateCheckout())

	_, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod:  "Cash",
		AmountTendered: dec("50.00"),
		CashierName:    "jane",
	})
	require.NoError(t, err)

	assert.True(t, store.loyaltyUpdated)
	assert.Equal(t, 4, store.loyaltyPoints) // floor(47 / 10)
	assert.True(t, store.loyaltyPurchase.Equal(dec("47.00")))
}

func TestConfirmPaymentRevalidatesStock(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Rice", "25.00", 20)
	engine := NewEngine(store, dec("0.15"))
	cart := buildCart(t, engine, store, 4)

	// Stock dropped between add and checkout.
	store.products[1].Quantity = 2

	_, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod:  "Cash",
		AmountTendered: dec("200.00"),
	})

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Empty(t, store.sales)
	assert.Equal(t, StateAwaitingPayment, cart.State())
}

func TestConfirmPaymentPersistenceFailureKeepsPriorWrites(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Rice", "25.00", 20)
	engine := NewEngine(store, dec("0.15"))
	cart := buildCart(t, engine, store, 4)
	store.failStep = StepCreateReceipt

	_, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod:  "Cash",
		AmountTendered: dec("120.00"),
	})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, StepCreateReceipt, pe.Step)

	// No compensation: the sale, items and decrement stay in place and the
	// cart returns to AwaitingPayment for retry or manual reconciliation.
	assert.Len(t, store.sales, 1)
	assert.Len(t, store.saleItems, 1)
	assert.Equal(t, 4, store.decrements[1])
	assert.Empty(t, store.receipts)
	assert.Equal(t, StateAwaitingPayment, cart.State())
	assert.Len(t, cart.Lines(), 1)
}

func TestConfirmPaymentMethodFetchFailure(t *testing.T) {
	store := newMockStore()
	store.addProduct(1, "Rice", "25.00", 20)
	engine := NewEngine(store, dec("0.15"))
	cart := buildCart(t, engine, store, 1)
	store.failStep = StepFetchMethods

	_, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{
		PaymentMethod:  "Cash",
		AmountTendered: dec("50.00"),
	})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, StepFetchMethods, pe.Step)
	assert.Empty(t, store.sales)
	assert.Equal(t, StateAwaitingPayment, cart.State())
}

func TestConfirmPaymentFromEmptyCart(t *testing.T) {
	store := newMockStore()
	engine := NewEngine(store, dec("0.15"))
	cart := engine.NewCart()

	_, err := engine.ConfirmPayment(context.Background(), cart, CheckoutInput{PaymentMethod: "Cash"})

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.receipts)
}
