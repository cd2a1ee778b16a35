package repositories

import (
	"context"
	"errors"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/jackc/pgx/v5"
)

type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

const saleColumns = `id, sale_date, total_amount, tax_amount, cashier_name, customer_id, payment_method, created_at`

func (r *SaleRepository) GetAll(page, limit int, from, to *time.Time) ([]models.Sale, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1::timestamptz IS NULL OR sale_date >= $1)
	            AND ($2::timestamptz IS NULL OR sale_date < $2)`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales`+filter, from, to).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales`+filter+` ORDER BY sale_date DESC LIMIT $3 OFFSET $4`,
		from, to, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.SaleDate, &s.TotalAmount, &s.TaxAmount,
			&s.CashierName, &s.CustomerID, &s.PaymentMethod, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		sales = append(sales, s)
	}
	return sales, total, rows.Err()
}

func (r *SaleRepository) GetByID(id int) (*models.Sale, error) {
	var s models.Sale
	err := config.DB.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.SaleDate, &s.TotalAmount, &s.TaxAmount,
		&s.CashierName, &s.CustomerID, &s.PaymentMethod, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, sale_id, product_id, product_name, quantity, price, total_price, created_at
		 FROM sale_items WHERE sale_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.Price, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		s.Items = append(s.Items, item)
	}
	return &s, rows.Err()
}

func (r *SaleRepository) GetReceipts(page, limit int) ([]models.Receipt, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM receipts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, receipt_number, sale_id, customer_id, total_amount, payment_method, cashier_name, receipt_date, created_at
		 FROM receipts ORDER BY receipt_date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	receipts := []models.Receipt{}
	for rows.Next() {
		var rc models.Receipt
		if err := rows.Scan(&rc.ID, &rc.ReceiptNumber, &rc.SaleID, &rc.CustomerID,
			&rc.TotalAmount, &rc.PaymentMethod, &rc.CashierName, &rc.ReceiptDate, &rc.CreatedAt); err != nil {
			return nil, 0, err
		}
		receipts = append(receipts, rc)
	}
	return receipts, total, rows.Err()
}

func (r *SaleRepository) GetReceiptByNumber(number string) (*models.Receipt, error) {
	var rc models.Receipt
	err := config.DB.QueryRow(context.Background(),
		`SELECT id, receipt_number, sale_id, customer_id, total_amount, payment_method, cashier_name, receipt_date, created_at
		 FROM receipts WHERE receipt_number = $1`, number,
	).Scan(&rc.ID, &rc.ReceiptNumber, &rc.SaleID, &rc.CustomerID,
		&rc.TotalAmount, &rc.PaymentMethod, &rc.CashierName, &rc.ReceiptDate, &rc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rc, nil
}
