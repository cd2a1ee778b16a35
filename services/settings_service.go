package services

import (
	"math"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

type SettingsService struct {
	systemRepo *repositories.SystemRepository
}

func NewSettingsService() *SettingsService {
	return &SettingsService{
		systemRepo: repositories.NewSystemRepository(),
	}
}

func (s *SettingsService) GetPaymentMethods(activeOnly bool) ([]models.PaymentMethod, error) {
	return s.systemRepo.GetPaymentMethods(activeOnly)
}

func (s *SettingsService) CreatePaymentMethod(req models.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	pm := &models.PaymentMethod{
		Name:     req.Name,
		Type:     req.Type,
		IsActive: req.IsActive,
	}
	if err := s.systemRepo.CreatePaymentMethod(pm); err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *SettingsService) SetPaymentMethodActive(id int, active bool) error {
	return s.systemRepo.SetPaymentMethodActive(id, active)
}

func (s *SettingsService) GetTaxRates() ([]models.TaxRate, error) {
	return s.systemRepo.GetTaxRates()
}

func (s *SettingsService) CreateTaxRate(req models.CreateTaxRateRequest) (*models.TaxRate, error) {
	tr := &models.TaxRate{
		Name:     req.Name,
		Rate:     req.Rate,
		IsActive: req.IsActive,
	}
	if req.Description != "" {
		tr.Description = &req.Description
	}
	if err := s.systemRepo.CreateTaxRate(tr); err != nil {
		return nil, err
	}
	return tr, nil
}

func (s *SettingsService) CreateNotification(req models.CreateNotificationRequest) (*models.Notification, error) {
	kind := req.Type
	if kind == "" {
		kind = "Info"
	}
	n := &models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    kind,
	}
	if err := s.systemRepo.CreateNotification(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *SettingsService) GetNotifications(userID int) ([]models.Notification, error) {
	return s.systemRepo.GetNotifications(userID)
}

func (s *SettingsService) MarkNotificationRead(id, userID int) error {
	return s.systemRepo.MarkNotificationRead(id, userID)
}

func (s *SettingsService) GetAuditLogs(page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, total, err := s.systemRepo.GetAuditLogs(page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Audit logs retrieved successfully",
		Data:    logs,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}
