package services

import (
	"context"
	"log"
	"sync"

	"smart-supermarket/config"
	"smart-supermarket/models"
	"smart-supermarket/pos"
	"smart-supermarket/repositories"

	"github.com/shopspring/decimal"
)

// POSService keeps one cart per cashier and serializes every operation on it.
// Carts are not safe for concurrent use, so all mutations happen under the
// service mutex.
type POSService struct {
	mu     sync.Mutex
	carts  map[int]*pos.Cart
	engine *pos.Engine

	store       *repositories.POSStore
	productRepo *repositories.ProductRepository
	systemRepo  *repositories.SystemRepository
}

func NewPOSService() *POSService {
	store := repositories.NewPOSStore()
	return &POSService{
		carts:       make(map[int]*pos.Cart),
		engine:      pos.NewEngine(store, activeTaxRate()),
		store:       store,
		productRepo: repositories.NewProductRepository(),
		systemRepo:  repositories.NewSystemRepository(),
	}
}

// activeTaxRate reads the configured register rate once at startup. The
// settings screen owns rate changes; a restart picks them up.
func activeTaxRate() decimal.Decimal {
	systemRepo := repositories.NewSystemRepository()
	rate, err := systemRepo.GetActiveTaxRate()
	if err != nil {
		log.Println("Failed to load active tax rate, using default:", err)
	}
	if rate != nil {
		return decimal.NewFromFloat(rate.Rate)
	}
	return decimal.NewFromFloat(config.AppConfig.DefaultTaxRate)
}

func (s *POSService) cartFor(cashierID int) *pos.Cart {
	cart, ok := s.carts[cashierID]
	if !ok || cart.State().IsTerminal() {
		cart = s.engine.NewCart()
		s.carts[cashierID] = cart
	}
	return cart
}

func (s *POSService) AddItem(cashierID int, req models.AddCartItemRequest) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	cart := s.cartFor(cashierID)
	snapshot := pos.ProductSnapshot{
		ID:                product.ID,
		Name:              product.Name,
		SellPrice:         product.SellPrice,
		AvailableStock:    product.Quantity,
		LowStockThreshold: product.LowStockThreshold,
	}
	if err := cart.AddItem(snapshot, req.Quantity); err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

func (s *POSService) UpdateQuantity(cashierID, productID, quantity int) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(cashierID)
	if err := cart.UpdateQuantity(productID, quantity); err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

func (s *POSService) RemoveItem(cashierID, productID int) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(cashierID)
	cart.RemoveItem(productID)
	return cartView(cart), nil
}

func (s *POSService) SelectCustomer(ctx context.Context, cashierID int, customerID *int) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customerID != nil {
		if _, err := s.store.GetCustomer(ctx, *customerID); err != nil {
			return nil, err
		}
	}

	cart := s.cartFor(cashierID)
	if err := cart.SelectCustomer(customerID); err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

func (s *POSService) GetCart(cashierID int) *models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cartView(s.cartFor(cashierID))
}

func (s *POSService) InitiateCheckout(cashierID int) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(cashierID)
	if err := cart.InitiateCheckout(); err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

func (s *POSService) CancelPayment(cashierID int) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(cashierID)
	if err := cart.CancelPayment(); err != nil {
		return nil, err
	}
	return cartView(cart), nil
}

func (s *POSService) ConfirmPayment(ctx context.Context, cashierID int, cashierName string, req models.ConfirmPaymentRequest) (*models.CheckoutResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(cashierID)
	result, err := s.engine.ConfirmPayment(ctx, cart, pos.CheckoutInput{
		PaymentMethod:  req.PaymentMethod,
		AmountTendered: req.AmountTendered,
		CashierName:    cashierName,
	})
	if err != nil {
		return nil, err
	}

	// The completed cart is terminal; cartFor hands out a fresh one on the
	// next call.
	return &models.CheckoutResponse{
		ReceiptNumber: result.ReceiptNumber,
		SaleID:        result.SaleID,
		Total:         result.Totals.Total.StringFixed(2),
		Change:        result.Change.StringFixed(2),
	}, nil
}

func (s *POSService) Cancel(cashierID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartFor(cashierID).Cancel()
}

func cartView(cart *pos.Cart) *models.CartView {
	lines := cart.Lines()
	totals := cart.Totals()

	view := &models.CartView{
		State:      cart.State().String(),
		Lines:      make([]models.CartLineView, 0, len(lines)),
		CustomerID: cart.SelectedCustomer(),
		Subtotal:   totals.Subtotal.StringFixed(2),
		Tax:        totals.Tax.StringFixed(2),
		Total:      totals.Total.StringFixed(2),
	}
	for _, line := range lines {
		view.Lines = append(view.Lines, models.CartLineView{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			LineTotal:   line.LineTotal.StringFixed(2),
		})
	}
	return view
}
