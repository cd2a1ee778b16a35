package services

import (
	"errors"
	"fmt"
	"math"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

type ReturnService struct {
	returnRepo *repositories.ReturnRepository
	saleRepo   *repositories.SaleRepository
	products   *ProductService
}

func NewReturnService() *ReturnService {
	return &ReturnService{
		returnRepo: repositories.NewReturnRepository(),
		saleRepo:   repositories.NewSaleRepository(),
		products:   NewProductService(),
	}
}

// buildReturnLines validates the requested lines against what the sale
// actually contained and prices them from the sale items, so a return can
// never cover products or quantities that were not sold.
func buildReturnLines(sale *models.Sale, requested []models.ReturnLineRequest) ([]models.ReturnItem, error) {
	sold := make(map[int]*models.SaleItem, len(sale.Items))
	for i := range sale.Items {
		sold[sale.Items[i].ProductID] = &sale.Items[i]
	}

	items := make([]models.ReturnItem, 0, len(requested))
	seen := make(map[int]bool, len(requested))
	for _, line := range requested {
		if seen[line.ProductID] {
			return nil, fmt.Errorf("product %d listed more than once", line.ProductID)
		}
		seen[line.ProductID] = true

		saleItem, ok := sold[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %d was not part of sale %d", line.ProductID, sale.ID)
		}
		if line.Quantity > saleItem.Quantity {
			return nil, fmt.Errorf("cannot return %d of %s, only %d were sold",
				line.Quantity, saleItem.ProductName, saleItem.Quantity)
		}

		items = append(items, models.ReturnItem{
			ProductID:   saleItem.ProductID,
			ProductName: saleItem.ProductName,
			Quantity:    line.Quantity,
			Price:       saleItem.Price,
		})
	}
	return items, nil
}

func (s *ReturnService) Create(req models.CreateReturnRequest) (*models.Return, error) {
	sale, err := s.saleRepo.GetByID(req.SaleID)
	if err != nil {
		return nil, err
	}

	items, err := buildReturnLines(sale, req.Items)
	if err != nil {
		return nil, err
	}

	ret := &models.Return{
		SaleID:     sale.ID,
		CustomerID: sale.CustomerID,
		Reason:     req.Reason,
		Items:      items,
	}
	if err := s.returnRepo.CreateWithItems(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *ReturnService) GetAll(page, limit int, status string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	returns, total, err := s.returnRepo.GetAll(page, limit, status)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Returns retrieved successfully",
		Data:    returns,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *ReturnService) GetByID(id int) (*models.Return, error) {
	return s.returnRepo.GetByID(id)
}

// Approve marks a pending return approved and restocks every returned line
// through the stock adjustment path, so each restock shows up in the
// adjustment history with the return number as its reason.
func (s *ReturnService) Approve(id int, processedBy string) (*models.Return, error) {
	ret, err := s.returnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret.Status != models.ReturnStatusPending {
		return nil, errors.New("only pending returns can be approved")
	}

	if err := s.returnRepo.UpdateStatus(id, models.ReturnStatusApproved, processedBy); err != nil {
		return nil, err
	}

	for _, item := range ret.Items {
		_, err := s.products.ApplyAdjustment(models.CreateStockAdjustmentRequest{
			ProductID:      item.ProductID,
			AdjustmentType: models.AdjustmentAdd,
			Quantity:       item.Quantity,
			Reason:         fmt.Sprintf("Return %s", ret.ReturnNumber),
		}, processedBy)
		if err != nil {
			return nil, fmt.Errorf("restock of product %d failed: %w", item.ProductID, err)
		}
	}

	return s.returnRepo.GetByID(id)
}

func (s *ReturnService) Reject(id int, processedBy string) (*models.Return, error) {
	ret, err := s.returnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret.Status != models.ReturnStatusPending {
		return nil, errors.New("only pending returns can be rejected")
	}

	if err := s.returnRepo.UpdateStatus(id, models.ReturnStatusRejected, processedBy); err != nil {
		return nil, err
	}
	return s.returnRepo.GetByID(id)
}
