package services

import (
	"errors"
	"fmt"
	"math"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

type SupplierService struct {
	supplierRepo *repositories.SupplierRepository
	poRepo       *repositories.PurchaseOrderRepository
	productRepo  *repositories.ProductRepository
}

func NewSupplierService() *SupplierService {
	return &SupplierService{
		supplierRepo: repositories.NewSupplierRepository(),
		poRepo:       repositories.NewPurchaseOrderRepository(),
		productRepo:  repositories.NewProductRepository(),
	}
}

func (s *SupplierService) GetAll(page, limit int, search string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	suppliers, total, err := s.supplierRepo.GetAll(page, limit, search)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Suppliers retrieved successfully",
		Data:    suppliers,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *SupplierService) GetByID(id int) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(id)
}

func (s *SupplierService) Create(req models.CreateSupplierRequest) (*models.Supplier, error) {
	supplier := &models.Supplier{Name: req.Name}
	if req.ContactPerson != "" {
		supplier.ContactPerson = &req.ContactPerson
	}
	if req.Email != "" {
		supplier.Email = &req.Email
	}
	if req.Phone != "" {
		supplier.Phone = &req.Phone
	}
	if req.Address != "" {
		supplier.Address = &req.Address
	}
	if req.PaymentTerms != "" {
		supplier.PaymentTerms = &req.PaymentTerms
	}

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Update(id int, req models.UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = req.ContactPerson
	}
	if req.Email != nil {
		supplier.Email = req.Email
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	if req.Address != nil {
		supplier.Address = req.Address
	}
	if req.PaymentTerms != nil {
		supplier.PaymentTerms = req.PaymentTerms
	}
	if req.Status != nil {
		supplier.Status = *req.Status
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Delete(id int) error {
	return s.supplierRepo.Delete(id)
}

func (s *SupplierService) CreatePurchaseOrder(req models.CreatePurchaseOrderRequest, createdBy string) (*models.PurchaseOrder, error) {
	supplier, err := s.supplierRepo.GetByID(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier lookup failed: %w", err)
	}

	po := &models.PurchaseOrder{
		SupplierID:       supplier.ID,
		SupplierName:     supplier.Name,
		ExpectedDelivery: req.ExpectedDelivery,
		CreatedBy:        createdBy,
	}

	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d lookup failed: %w", item.ProductID, err)
		}
		po.Items = append(po.Items, models.PurchaseOrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	if err := s.poRepo.CreateWithItems(po); err != nil {
		return nil, err
	}
	return po, nil
}

func (s *SupplierService) GetPurchaseOrders(page, limit int, status string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := s.poRepo.GetAll(page, limit, status)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Purchase orders retrieved successfully",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *SupplierService) GetPurchaseOrderByID(id int) (*models.PurchaseOrder, error) {
	return s.poRepo.GetByID(id)
}

// ReceivePurchaseOrder marks a pending order received and restocks the
// ordered products.
func (s *SupplierService) ReceivePurchaseOrder(id int, req models.ReceivePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po.Status != models.POStatusPending {
		return nil, errors.New("only pending purchase orders can be received")
	}

	received := make(map[int]int, len(req.Items))
	for _, item := range req.Items {
		received[item.ItemID] = item.ReceivedQuantity
	}

	if err := s.poRepo.Receive(po, received); err != nil {
		return nil, err
	}

	return s.poRepo.GetByID(id)
}

func (s *SupplierService) CancelPurchaseOrder(id int) error {
	po, err := s.poRepo.GetByID(id)
	if err != nil {
		return err
	}
	if po.Status != models.POStatusPending {
		return errors.New("only pending purchase orders can be cancelled")
	}
	return s.poRepo.UpdateStatus(id, models.POStatusCancelled)
}
