package services

import (
	"fmt"
	"log"
	"math"
	"os"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

type ProductService struct {
	productRepo   *repositories.ProductRepository
	analyticsRepo *repositories.AnalyticsRepository
	mailer        *models.Mailer
	alertEmail    string
}

func NewProductService() *ProductService {
	s := &ProductService{
		productRepo:   repositories.NewProductRepository(),
		analyticsRepo: repositories.NewAnalyticsRepository(),
		alertEmail:    os.Getenv("ALERT_EMAIL"),
	}

	mailer, err := models.NewMailer()
	if err != nil {
		log.Println("Low-stock alert mail disabled:", err)
	} else {
		s.mailer = mailer
	}
	return s
}

func (s *ProductService) GetAll(page, limit int, search, category string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.productRepo.GetAll(page, limit, search, category)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *ProductService) GetByID(id int) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *ProductService) GetLowStock() ([]models.Product, error) {
	return s.productRepo.GetLowStock()
}

func (s *ProductService) Create(req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		CostPrice:         req.CostPrice,
		SellPrice:         req.SellPrice,
		LowStockThreshold: req.LowStockThreshold,
		SupplierID:        req.SupplierID,
	}
	if req.Barcode != "" {
		product.Barcode = &req.Barcode
	}
	if req.SKU != "" {
		product.SKU = &req.SKU
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SellPrice != nil {
		product.SellPrice = *req.SellPrice
	}
	if req.LowStockThreshold != nil {
		product.LowStockThreshold = *req.LowStockThreshold
	}
	if req.Barcode != nil {
		product.Barcode = req.Barcode
	}
	if req.SKU != nil {
		product.SKU = req.SKU
	}
	if req.SupplierID != nil {
		product.SupplierID = req.SupplierID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id int) error {
	return s.productRepo.Delete(id)
}

// ApplyAdjustment records a manual stock adjustment and raises a stock alert
// when the product lands at or below its threshold.
func (s *ProductService) ApplyAdjustment(req models.CreateStockAdjustmentRequest, adjustedBy string) (*models.StockAdjustment, error) {
	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	adj := &models.StockAdjustment{
		ProductID:      req.ProductID,
		ProductName:    product.Name,
		AdjustmentType: req.AdjustmentType,
		Quantity:       req.Quantity,
		Reason:         req.Reason,
		AdjustedBy:     adjustedBy,
	}

	if err := s.productRepo.ApplyAdjustment(adj); err != nil {
		return nil, err
	}

	product.Quantity += adj.StockDelta()
	if product.IsLowStock() {
		s.raiseLowStockAlert(product)
	}

	return adj, nil
}

func (s *ProductService) GetAdjustments(page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	adjustments, total, err := s.productRepo.GetAdjustments(page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Stock adjustments retrieved successfully",
		Data:    adjustments,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *ProductService) raiseLowStockAlert(product *models.Product) {
	alert := &models.AIAlert{
		AlertType: models.AlertStock,
		Message:   fmt.Sprintf("%s is low on stock: %d left (threshold %d)", product.Name, product.Quantity, product.LowStockThreshold),
		RiskScore: 60,
	}
	if err := s.analyticsRepo.CreateAlert(alert); err != nil {
		log.Println("Failed to create low-stock alert:", err)
	}

	if s.mailer != nil && s.alertEmail != "" {
		go func(p models.Product) {
			if err := s.mailer.SendLowStockAlert(s.alertEmail, &p); err != nil {
				log.Println("Failed to send low-stock mail:", err)
			}
		}(*product)
	}
}
