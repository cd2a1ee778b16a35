package repositories

import (
	"context"
	"errors"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("record not found")

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = `id, username, email, password, name, phone, role, status, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name, &u.Phone,
		&u.Role, &u.Status, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	row := config.DB.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	row := config.DB.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByID(id int) (*models.User, error) {
	row := config.DB.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) Create(user *models.User) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO users (username, email, password, name, phone, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'Active', $7, $8)
		 RETURNING id, status, created_at, updated_at`,
		user.Username, user.Email, user.Password, user.Name, user.Phone, user.Role, now, now,
	).Scan(&user.ID, &user.Status, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetAll(page, limit int) ([]models.User, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name, &u.Phone,
			&u.Role, &u.Status, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) Update(user *models.User) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE users SET email=$1, name=$2, phone=$3, role=$4, status=$5, updated_at=$6 WHERE id=$7`,
		user.Email, user.Name, user.Phone, user.Role, user.Status, time.Now(), user.ID)
	return err
}

func (r *UserRepository) UpdatePassword(id int, hashed string) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE users SET password=$1, updated_at=$2 WHERE id=$3`, hashed, time.Now(), id)
	return err
}

func (r *UserRepository) UpdateLastLogin(id int) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE users SET last_login=$1 WHERE id=$2`, time.Now(), id)
	return err
}

func (r *UserRepository) Delete(id int) error {
	tag, err := config.DB.Exec(context.Background(), `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
