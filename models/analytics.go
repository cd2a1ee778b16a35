package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AlertStock     = "Stock"
	AlertSales     = "Sales"
	AlertFinancial = "Financial"
	AlertAnomaly   = "Anomaly"
)

type AIAlert struct {
	ID         int       `json:"id"`
	AlertDate  time.Time `json:"alert_date"`
	AlertType  string    `json:"alert_type"`
	Message    string    `json:"message"`
	RiskScore  float64   `json:"risk_score"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

type SalesForecast struct {
	ID             int             `json:"id"`
	ForecastDate   time.Time       `json:"forecast_date"`
	PredictedValue decimal.Decimal `json:"predicted_value"`
	Confidence     float64         `json:"confidence"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ProfitPrediction struct {
	ID              int             `json:"id"`
	PredictionDate  time.Time       `json:"prediction_date"`
	PredictedProfit decimal.Decimal `json:"predicted_profit"`
	Confidence      float64         `json:"confidence"`
	CreatedAt       time.Time       `json:"created_at"`
}

type CashFlowPrediction struct {
	ID               int             `json:"id"`
	PredictionDate   time.Time       `json:"prediction_date"`
	PredictedBalance decimal.Decimal `json:"predicted_balance"`
	CreatedAt        time.Time       `json:"created_at"`
}

type DailySummary struct {
	ID               int             `json:"id"`
	SummaryDate      time.Time       `json:"summary_date"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Profit           decimal.Decimal `json:"profit"`
	CashBalance      decimal.Decimal `json:"cash_balance"`
	TransactionCount int             `json:"transaction_count"`
	CreatedAt        time.Time       `json:"created_at"`
}

type DashboardMetrics struct {
	TotalSalesToday   decimal.Decimal `json:"total_sales_today"`
	TransactionsToday int             `json:"transactions_today"`
	LowStockCount     int             `json:"low_stock_count"`
	ActiveCustomers   int             `json:"active_customers"`
	PendingOrders     int             `json:"pending_orders"`
	UnresolvedAlerts  int             `json:"unresolved_alerts"`
}
