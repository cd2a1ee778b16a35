package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

const dashboardCacheKey = "dashboard:metrics"

type AnalyticsService struct {
	analyticsRepo *repositories.AnalyticsRepository
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: repositories.NewAnalyticsRepository(),
	}
}

func (s *AnalyticsService) GetAlerts(unresolvedOnly bool) ([]models.AIAlert, error) {
	return s.analyticsRepo.GetAlerts(unresolvedOnly)
}

func (s *AnalyticsService) CreateAlert(req models.CreateAIAlertRequest) (*models.AIAlert, error) {
	alert := &models.AIAlert{
		AlertType: req.AlertType,
		Message:   req.Message,
		RiskScore: req.RiskScore,
	}
	if err := s.analyticsRepo.CreateAlert(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *AnalyticsService) ResolveAlert(id int) error {
	return s.analyticsRepo.ResolveAlert(id)
}

func (s *AnalyticsService) GetSalesForecasts() ([]models.SalesForecast, error) {
	return s.analyticsRepo.GetSalesForecasts()
}

func (s *AnalyticsService) GetProfitPredictions() ([]models.ProfitPrediction, error) {
	return s.analyticsRepo.GetProfitPredictions()
}

func (s *AnalyticsService) GetCashFlowPredictions() ([]models.CashFlowPrediction, error) {
	return s.analyticsRepo.GetCashFlowPredictions()
}

func (s *AnalyticsService) GetDailySummaries(limit int) ([]models.DailySummary, error) {
	if limit < 1 {
		limit = 30
	}
	return s.analyticsRepo.GetDailySummaries(limit)
}

// GetDashboardMetrics serves the dashboard headline numbers, cached in Redis
// for a minute when a cache is available.
func (s *AnalyticsService) GetDashboardMetrics() (*models.DashboardMetrics, error) {
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(context.Background(), dashboardCacheKey).Result()
		if err == nil {
			var m models.DashboardMetrics
			if err := json.Unmarshal([]byte(cached), &m); err == nil {
				return &m, nil
			}
		}
	}

	metrics, err := s.analyticsRepo.GetDashboardMetrics()
	if err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		if payload, err := json.Marshal(metrics); err == nil {
			if err := models.RedisClient.Set(context.Background(), dashboardCacheKey, payload, time.Minute).Err(); err != nil {
				log.Println("Failed to cache dashboard metrics:", err)
			}
		}
	}

	return metrics, nil
}
