package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

const customerColumns = `id, customer_code, name, email, phone, address, loyalty_points, total_purchases, last_purchase_date, created_at, updated_at`

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.CustomerCode, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.LoyaltyPoints, &c.TotalPurchases, &c.LastPurchaseDate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	now := time.Now()
	customer.CustomerCode = fmt.Sprintf("CUST-%d", now.UnixNano()%1_000_000_000)
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO customers (customer_code, name, email, phone, address, loyalty_points, total_purchases, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, 0, $6, $7)
		 RETURNING id, loyalty_points, total_purchases, created_at, updated_at`,
		customer.CustomerCode, customer.Name, customer.Email, customer.Phone, customer.Address, now, now,
	).Scan(&customer.ID, &customer.LoyaltyPoints, &customer.TotalPurchases, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *CustomerRepository) GetByID(id int) (*models.Customer, error) {
	row := config.DB.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (r *CustomerRepository) GetAll(page, limit int, search string) ([]models.Customer, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR customer_code ILIKE '%' || $1 || '%')`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM customers`+filter, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers`+filter+` ORDER BY name LIMIT $2 OFFSET $3`,
		search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.CustomerCode, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.LoyaltyPoints, &c.TotalPurchases, &c.LastPurchaseDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, total, rows.Err()
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE customers SET name=$1, email=$2, phone=$3, address=$4, updated_at=$5 WHERE id=$6`,
		customer.Name, customer.Email, customer.Phone, customer.Address, time.Now(), customer.ID)
	return err
}

func (r *CustomerRepository) Delete(id int) error {
	tag, err := config.DB.Exec(context.Background(), `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
