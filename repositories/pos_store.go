package repositories

import (
	"context"
	"errors"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/shopspring/decimal"
)

// POSStore is the persistence collaborator the cart engine checks out
// through. Each method is one independent write; the sequence is ordered by
// the engine and is not wrapped in a database transaction, matching the
// engine's best-effort contract.
type POSStore struct{}

func NewPOSStore() *POSStore {
	return &POSStore{}
}

func (s *POSStore) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	row := config.DB.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (s *POSStore) DecrementStock(ctx context.Context, productID, qty int) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE products SET quantity = quantity - $1, updated_at = $2
		 WHERE id = $3 AND quantity >= $1`,
		qty, time.Now(), productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("stock changed underneath the sale")
	}
	return nil
}

func (s *POSStore) CreateSale(ctx context.Context, sale *models.Sale) error {
	now := time.Now()
	return config.DB.QueryRow(ctx,
		`INSERT INTO sales (sale_date, total_amount, tax_amount, cashier_name, customer_id, payment_method, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		sale.SaleDate, sale.TotalAmount, sale.TaxAmount, sale.CashierName,
		sale.CustomerID, sale.PaymentMethod, now,
	).Scan(&sale.ID, &sale.CreatedAt)
}

func (s *POSStore) CreateSaleItem(ctx context.Context, item *models.SaleItem) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO sale_items (sale_id, product_id, product_name, quantity, price, total_price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		item.SaleID, item.ProductID, item.ProductName, item.Quantity,
		item.Price, item.TotalPrice, time.Now(),
	).Scan(&item.ID, &item.CreatedAt)
}

func (s *POSStore) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO receipts (receipt_number, sale_id, customer_id, total_amount, payment_method, cashier_name, receipt_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
		receipt.ReceiptNumber, receipt.SaleID, receipt.CustomerID, receipt.TotalAmount,
		receipt.PaymentMethod, receipt.CashierName, receipt.ReceiptDate, time.Now(),
	).Scan(&receipt.ID, &receipt.CreatedAt)
}

func (s *POSStore) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	row := config.DB.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (s *POSStore) UpdateCustomerLoyalty(ctx context.Context, id, points int, purchase decimal.Decimal, when time.Time) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE customers SET loyalty_points = loyalty_points + $1,
		        total_purchases = total_purchases + $2,
		        last_purchase_date = $3, updated_at = $3
		 WHERE id = $4`,
		points, purchase, when, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *POSStore) ActivePaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, name, type, is_active, created_at FROM payment_methods WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []models.PaymentMethod{}
	for rows.Next() {
		var pm models.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name, &pm.Type, &pm.IsActive, &pm.CreatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, pm)
	}
	return methods, rows.Err()
}
