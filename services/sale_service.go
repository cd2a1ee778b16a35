package services

import (
	"math"
	"time"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

type SaleService struct {
	saleRepo *repositories.SaleRepository
}

func NewSaleService() *SaleService {
	return &SaleService{
		saleRepo: repositories.NewSaleRepository(),
	}
}

func (s *SaleService) GetAll(page, limit int, from, to *time.Time) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	sales, total, err := s.saleRepo.GetAll(page, limit, from, to)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Sales retrieved successfully",
		Data:    sales,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *SaleService) GetByID(id int) (*models.Sale, error) {
	return s.saleRepo.GetByID(id)
}

func (s *SaleService) GetReceipts(page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	receipts, total, err := s.saleRepo.GetReceipts(page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Receipts retrieved successfully",
		Data:    receipts,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *SaleService) GetReceiptByNumber(number string) (*models.Receipt, error) {
	return s.saleRepo.GetReceiptByNumber(number)
}
