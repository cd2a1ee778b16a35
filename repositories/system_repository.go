package repositories

import (
	"context"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"
)

type SystemRepository struct{}

func NewSystemRepository() *SystemRepository {
	return &SystemRepository{}
}

func (r *SystemRepository) CreatePaymentMethod(pm *models.PaymentMethod) error {
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO payment_methods (name, type, is_active, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		pm.Name, pm.Type, pm.IsActive, time.Now(),
	).Scan(&pm.ID, &pm.CreatedAt)
}

func (r *SystemRepository) GetPaymentMethods(activeOnly bool) ([]models.PaymentMethod, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, type, is_active, created_at FROM payment_methods
		 WHERE ($1 = false OR is_active) ORDER BY id`, activeOnly)
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

func (r *SystemRepository) SetPaymentMethodActive(id int, active bool) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE payment_methods SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SystemRepository) CreateTaxRate(tr *models.TaxRate) error {
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO tax_rates (name, rate, description, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		tr.Name, tr.Rate, tr.Description, tr.IsActive, time.Now(),
	).Scan(&tr.ID, &tr.CreatedAt)
}

func (r *SystemRepository) GetTaxRates() ([]models.TaxRate, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, rate, description, is_active, created_at FROM tax_rates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rates := []models.TaxRate{}
	for rows.Next() {
		var tr models.TaxRate
		if err := rows.Scan(&tr.ID, &tr.Name, &tr.Rate, &tr.Description, &tr.IsActive, &tr.CreatedAt); err != nil {
			return nil, err
		}
		rates = append(rates, tr)
	}
	return rates, rows.Err()
}

// GetActiveTaxRate returns the rate applied at the register. Falls back to
// nil when no rate is active; the caller decides the default.
func (r *SystemRepository) GetActiveTaxRate() (*models.TaxRate, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, rate, description, is_active, created_at
		 FROM tax_rates WHERE is_active ORDER BY id LIMIT 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var tr models.TaxRate
	if err := rows.Scan(&tr.ID, &tr.Name, &tr.Rate, &tr.Description, &tr.IsActive, &tr.CreatedAt); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (r *SystemRepository) CreateNotification(n *models.Notification) error {
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO notifications (user_id, title, message, type, is_read, created_at)
		 VALUES ($1, $2, $3, $4, false, $5) RETURNING id, created_at`,
		n.UserID, n.Title, n.Message, n.Type, time.Now(),
	).Scan(&n.ID, &n.CreatedAt)
}

func (r *SystemRepository) GetNotifications(userID int) ([]models.Notification, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, user_id, title, message, type, is_read, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *SystemRepository) MarkNotificationRead(id, userID int) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SystemRepository) CreateAuditLog(entry *models.AuditLog) error {
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO audit_logs (user_id, action, entity_type, entity_id, details, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		entry.UserID, entry.Action, entry.EntityType, entry.EntityID,
		entry.Details, entry.IPAddress, time.Now(),
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *SystemRepository) GetAuditLogs(page, limit int) ([]models.AuditLog, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM audit_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, user_id, action, entity_type, entity_id, details, ip_address, created_at
		 FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var l models.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.EntityType, &l.EntityID,
			&l.Details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, 0, err
		}
		logs = append(logs, l)
	}
	return logs, total, rows.Err()
}
