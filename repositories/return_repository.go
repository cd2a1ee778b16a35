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

type ReturnRepository struct{}

func NewReturnRepository() *ReturnRepository {
	return &ReturnRepository{}
}

const returnColumns = `id, return_number, sale_id, customer_id, return_amount, reason, processed_by, return_date, status, created_at`

// CreateWithItems inserts the return header and its lines in one
// transaction. The return starts Pending; the amount is the sum of the
// line totals.
func (r *ReturnRepository) CreateWithItems(ret *models.Return) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	total := decimal.Zero
	for i := range ret.Items {
		ret.Items[i].TotalPrice = ret.Items[i].Price.Mul(decimal.NewFromInt(int64(ret.Items[i].Quantity)))
		total = total.Add(ret.Items[i].TotalPrice)
	}
	ret.ReturnAmount = total

	now := time.Now()
	ret.ReturnNumber = fmt.Sprintf("RET-%d", now.UnixNano()%1_000_000_000)
	ret.ReturnDate = now

	err = tx.QueryRow(ctx,
		`INSERT INTO returns (return_number, sale_id, customer_id, return_amount, reason, processed_by, return_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, '', $6, 'Pending', $7)
		 RETURNING id, status, created_at`,
		ret.ReturnNumber, ret.SaleID, ret.CustomerID, ret.ReturnAmount,
		ret.Reason, ret.ReturnDate, now,
	).Scan(&ret.ID, &ret.Status, &ret.CreatedAt)
	if err != nil {
		return err
	}

	for i := range ret.Items {
		item := &ret.Items[i]
		item.ReturnID = ret.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO return_items (return_id, product_id, product_name, quantity, price, total_price, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
			item.ReturnID, item.ProductID, item.ProductName, item.Quantity,
			item.Price, item.TotalPrice, now,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ReturnRepository) GetAll(page, limit int, status string) ([]models.Return, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1 = '' OR status = $1)`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM returns`+filter, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+returnColumns+` FROM returns`+filter+` ORDER BY return_date DESC LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	returns := []models.Return{}
	for rows.Next() {
		var ret models.Return
		if err := rows.Scan(&ret.ID, &ret.ReturnNumber, &ret.SaleID, &ret.CustomerID, &ret.ReturnAmount,
			&ret.Reason, &ret.ProcessedBy, &ret.ReturnDate, &ret.Status, &ret.CreatedAt); err != nil {
			return nil, 0, err
		}
		returns = append(returns, ret)
	}
	return returns, total, rows.Err()
}

func (r *ReturnRepository) GetByID(id int) (*models.Return, error) {
	var ret models.Return
	err := config.DB.QueryRow(context.Background(),
		`SELECT `+returnColumns+` FROM returns WHERE id = $1`, id,
	).Scan(&ret.ID, &ret.ReturnNumber, &ret.SaleID, &ret.CustomerID, &ret.ReturnAmount,
		&ret.Reason, &ret.ProcessedBy, &ret.ReturnDate, &ret.Status, &ret.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, return_id, product_id, product_name, quantity, price, total_price, created_at
		 FROM return_items WHERE return_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.ReturnItem
		if err := rows.Scan(&item.ID, &item.ReturnID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.Price, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		ret.Items = append(ret.Items, item)
	}
	return &ret, rows.Err()
}

func (r *ReturnRepository) UpdateStatus(id int, status, processedBy string) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE returns SET status = $1, processed_by = $2 WHERE id = $3`,
		status, processedBy, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
