package repositories

import (
	"context"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"
)

type AnalyticsRepository struct{}

func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

func (r *AnalyticsRepository) CreateAlert(alert *models.AIAlert) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO ai_alerts (alert_date, alert_type, message, risk_score, is_resolved, created_at)
		 VALUES ($1, $2, $3, $4, false, $5) RETURNING id, is_resolved, created_at`,
		now, alert.AlertType, alert.Message, alert.RiskScore, now,
	).Scan(&alert.ID, &alert.IsResolved, &alert.CreatedAt)
}

func (r *AnalyticsRepository) GetAlerts(unresolvedOnly bool) ([]models.AIAlert, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, alert_date, alert_type, message, risk_score, is_resolved, created_at
		 FROM ai_alerts WHERE ($1 = false OR is_resolved = false) ORDER BY alert_date DESC`,
		unresolvedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []models.AIAlert{}
	for rows.Next() {
		var a models.AIAlert
		if err := rows.Scan(&a.ID, &a.AlertDate, &a.AlertType, &a.Message,
			&a.RiskScore, &a.IsResolved, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *AnalyticsRepository) ResolveAlert(id int) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE ai_alerts SET is_resolved = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AnalyticsRepository) GetSalesForecasts() ([]models.SalesForecast, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, forecast_date, predicted_value, confidence, created_at
		 FROM sales_forecasts ORDER BY forecast_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forecasts := []models.SalesForecast{}
	for rows.Next() {
		var f models.SalesForecast
		if err := rows.Scan(&f.ID, &f.ForecastDate, &f.PredictedValue, &f.Confidence, &f.CreatedAt); err != nil {
			return nil, err
		}
		forecasts = append(forecasts, f)
	}
	return forecasts, rows.Err()
}

func (r *AnalyticsRepository) GetProfitPredictions() ([]models.ProfitPrediction, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, prediction_date, predicted_profit, confidence, created_at
		 FROM profit_predictions ORDER BY prediction_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	predictions := []models.ProfitPrediction{}
	for rows.Next() {
		var p models.ProfitPrediction
		if err := rows.Scan(&p.ID, &p.PredictionDate, &p.PredictedProfit, &p.Confidence, &p.CreatedAt); err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

func (r *AnalyticsRepository) GetCashFlowPredictions() ([]models.CashFlowPrediction, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, prediction_date, predicted_balance, created_at
		 FROM cash_flow_predictions ORDER BY prediction_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	predictions := []models.CashFlowPrediction{}
	for rows.Next() {
		var p models.CashFlowPrediction
		if err := rows.Scan(&p.ID, &p.PredictionDate, &p.PredictedBalance, &p.CreatedAt); err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

func (r *AnalyticsRepository) GetDailySummaries(limit int) ([]models.DailySummary, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, summary_date, total_sales, total_expenses, profit, cash_balance, transaction_count, created_at
		 FROM daily_summaries ORDER BY summary_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.DailySummary{}
	for rows.Next() {
		var s models.DailySummary
		if err := rows.Scan(&s.ID, &s.SummaryDate, &s.TotalSales, &s.TotalExpenses,
			&s.Profit, &s.CashBalance, &s.TransactionCount, &s.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetDashboardMetrics aggregates the day's headline numbers in one pass per
// table.
func (r *AnalyticsRepository) GetDashboardMetrics() (*models.DashboardMetrics, error) {
	ctx := context.Background()
	m := &models.DashboardMetrics{}

	err := config.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		 FROM sales WHERE sale_date >= date_trunc('day', now())`,
	).Scan(&m.TotalSalesToday, &m.TransactionsToday)
	if err != nil {
		return nil, err
	}

	err = config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE quantity <= low_stock_threshold`).Scan(&m.LowStockCount)
	if err != nil {
		return nil, err
	}

	err = config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE last_purchase_date >= now() - interval '30 days'`,
	).Scan(&m.ActiveCustomers)
	if err != nil {
		return nil, err
	}

	err = config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM purchase_orders WHERE status = 'Pending'`).Scan(&m.PendingOrders)
	if err != nil {
		return nil, err
	}

	err = config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM ai_alerts WHERE is_resolved = false`).Scan(&m.UnresolvedAlerts)
	if err != nil {
		return nil, err
	}

	return m, nil
}
