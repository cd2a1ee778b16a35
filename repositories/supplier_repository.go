package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SupplierRepository struct{}

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{}
}

const supplierColumns = `id, supplier_code, name, contact_person, email, phone, address, payment_terms, status, created_at, updated_at`

func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	now := time.Now()
	supplier.SupplierCode = fmt.Sprintf("SUP-%d", now.UnixNano()%1_000_000_000)
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO suppliers (supplier_code, name, contact_person, email, phone, address, payment_terms, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 'Active', $8, $9)
		 RETURNING id, status, created_at, updated_at`,
		supplier.SupplierCode, supplier.Name, supplier.ContactPerson, supplier.Email,
		supplier.Phone, supplier.Address, supplier.PaymentTerms, now, now,
	).Scan(&supplier.ID, &supplier.Status, &supplier.CreatedAt, &supplier.UpdatedAt)
}

func (r *SupplierRepository) GetByID(id int) (*models.Supplier, error) {
	var s models.Supplier
	err := config.DB.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.SupplierCode, &s.Name, &s.ContactPerson, &s.Email, &s.Phone,
		&s.Address, &s.PaymentTerms, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) GetAll(page, limit int, search string) ([]models.Supplier, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM suppliers`+filter, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers`+filter+` ORDER BY name LIMIT $2 OFFSET $3`,
		search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.SupplierCode, &s.Name, &s.ContactPerson, &s.Email, &s.Phone,
			&s.Address, &s.PaymentTerms, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, total, rows.Err()
}

func (r *SupplierRepository) Update(supplier *models.Supplier) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE suppliers SET name=$1, contact_person=$2, email=$3, phone=$4, address=$5,
		 payment_terms=$6, status=$7, updated_at=$8 WHERE id=$9`,
		supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address,
		supplier.PaymentTerms, supplier.Status, time.Now(), supplier.ID)
	return err
}

func (r *SupplierRepository) Delete(id int) error {
	tag, err := config.DB.Exec(context.Background(), `DELETE FROM suppliers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type PurchaseOrderRepository struct{}

func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{}
}

// CreateWithItems inserts the order header and its items in one transaction,
// computing the order total from the item lines.
func (r *PurchaseOrderRepository) CreateWithItems(po *models.PurchaseOrder) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	total := decimal.Zero
	for i := range po.Items {
		po.Items[i].TotalPrice = po.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(po.Items[i].Quantity)))
		total = total.Add(po.Items[i].TotalPrice)
	}
	po.TotalAmount = total

	now := time.Now()
	po.PONumber = fmt.Sprintf("PO-%d", now.UnixNano()%1_000_000_000)
	po.OrderDate = now

	err = tx.QueryRow(ctx,
		`INSERT INTO purchase_orders (po_number, supplier_id, supplier_name, order_date, expected_delivery, total_amount, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'Pending', $7, $8, $9)
		 RETURNING id, status, created_at, updated_at`,
		po.PONumber, po.SupplierID, po.SupplierName, po.OrderDate, po.ExpectedDelivery,
		po.TotalAmount, po.CreatedBy, now, now,
	).Scan(&po.ID, &po.Status, &po.CreatedAt, &po.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range po.Items {
		item := &po.Items[i]
		item.POID = po.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO purchase_order_items (po_id, product_id, product_name, quantity, unit_price, total_price, received_quantity, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, 0, $7) RETURNING id, created_at`,
			item.POID, item.ProductID, item.ProductName, item.Quantity,
			item.UnitPrice, item.TotalPrice, now,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

const poColumns = `id, po_number, supplier_id, supplier_name, order_date, expected_delivery, total_amount, status, created_by, created_at, updated_at`

func (r *PurchaseOrderRepository) GetAll(page, limit int, status string) ([]models.PurchaseOrder, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1 = '' OR status = $1)`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_orders`+filter, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+poColumns+` FROM purchase_orders`+filter+` ORDER BY order_date DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.PurchaseOrder{}
	for rows.Next() {
		var po models.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.PONumber, &po.SupplierID, &po.SupplierName, &po.OrderDate,
			&po.ExpectedDelivery, &po.TotalAmount, &po.Status, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, po)
	}
	return orders, total, rows.Err()
}

func (r *PurchaseOrderRepository) GetByID(id int) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := config.DB.QueryRow(context.Background(),
		`SELECT `+poColumns+` FROM purchase_orders WHERE id = $1`, id,
	).Scan(&po.ID, &po.PONumber, &po.SupplierID, &po.SupplierName, &po.OrderDate,
		&po.ExpectedDelivery, &po.TotalAmount, &po.Status, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, po_id, product_id, product_name, quantity, unit_price, total_price, received_quantity, created_at
		 FROM purchase_order_items WHERE po_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.POID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.ReceivedQuantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		po.Items = append(po.Items, item)
	}
	return &po, rows.Err()
}

// Receive marks a pending order received and adds the received quantities to
// product stock, all in one transaction. Items without an explicit received
// quantity are received in full.
func (r *PurchaseOrderRepository) Receive(po *models.PurchaseOrder, received map[int]int) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	for _, item := range po.Items {
		qty, ok := received[item.ID]
		if !ok {
			qty = item.Quantity
		}

		_, err = tx.Exec(ctx,
			`UPDATE purchase_order_items SET received_quantity = $1 WHERE id = $2`,
			qty, item.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE products SET quantity = quantity + $1, updated_at = $2 WHERE id = $3`,
			qty, now, item.ProductID)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE purchase_orders SET status = $1, updated_at = $2 WHERE id = $3`,
		models.POStatusReceived, now, po.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PurchaseOrderRepository) UpdateStatus(id int, status string) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE purchase_orders SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
