package repositories

import (
	"context"
	"errors"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, category, quantity, cost_price, sell_price, low_stock_threshold, barcode, sku, supplier_id, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.CostPrice, &p.SellPrice,
		&p.LowStockThreshold, &p.Barcode, &p.SKU, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanProductRows(rows pgx.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.CostPrice, &p.SellPrice,
			&p.LowStockThreshold, &p.Barcode, &p.SKU, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(product *models.Product) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO products (name, category, quantity, cost_price, sell_price, low_stock_threshold, barcode, sku, supplier_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		product.Name, product.Category, product.Quantity, product.CostPrice, product.SellPrice,
		product.LowStockThreshold, product.Barcode, product.SKU, product.SupplierID, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	row := config.DB.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *ProductRepository) GetAll(page, limit int, search, category string) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR category ILIKE '%' || $1 || '%')
	            AND ($2 = '' OR category = $2)`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products`+filter, search, category).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+productColumns+` FROM products`+filter+` ORDER BY name LIMIT $3 OFFSET $4`,
		search, category, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProductRows(rows)
	return products, total, err
}

func (r *ProductRepository) GetLowStock() ([]models.Product, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE quantity <= low_stock_threshold ORDER BY quantity`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductRows(rows)
}

func (r *ProductRepository) Update(product *models.Product) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE products SET name=$1, category=$2, quantity=$3, cost_price=$4, sell_price=$5,
		 low_stock_threshold=$6, barcode=$7, sku=$8, supplier_id=$9, updated_at=$10 WHERE id=$11`,
		product.Name, product.Category, product.Quantity, product.CostPrice, product.SellPrice,
		product.LowStockThreshold, product.Barcode, product.SKU, product.SupplierID, time.Now(), product.ID)
	return err
}

func (r *ProductRepository) Delete(id int) error {
	tag, err := config.DB.Exec(context.Background(), `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyAdjustment records a stock adjustment and applies its signed delta to
// the product quantity in one transaction. The quantity is guarded against
// going negative.
func (r *ProductRepository) ApplyAdjustment(adj *models.StockAdjustment) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	delta := adj.StockDelta()
	tag, err := tx.Exec(ctx,
		`UPDATE products SET quantity = quantity + $1, updated_at = $2
		 WHERE id = $3 AND quantity + $1 >= 0`,
		delta, time.Now(), adj.ProductID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("adjustment would drive stock negative")
	}

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO stock_adjustments (product_id, product_name, adjustment_type, quantity, reason, adjusted_by, adjustment_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
		adj.ProductID, adj.ProductName, adj.AdjustmentType, adj.Quantity, adj.Reason,
		adj.AdjustedBy, now, now,
	).Scan(&adj.ID, &adj.CreatedAt)
	if err != nil {
		return err
	}
	adj.AdjustmentDate = now

	return tx.Commit(ctx)
}

func (r *ProductRepository) GetAdjustments(page, limit int) ([]models.StockAdjustment, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_adjustments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, product_id, product_name, adjustment_type, quantity, reason, adjusted_by, adjustment_date, created_at
		 FROM stock_adjustments ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	adjustments := []models.StockAdjustment{}
	for rows.Next() {
		var a models.StockAdjustment
		if err := rows.Scan(&a.ID, &a.ProductID, &a.ProductName, &a.AdjustmentType, &a.Quantity,
			&a.Reason, &a.AdjustedBy, &a.AdjustmentDate, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		adjustments = append(adjustments, a)
	}
	return adjustments, total, rows.Err()
}
