package services

import (
	"math"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

type CustomerService struct {
	customerRepo *repositories.CustomerRepository
}

func NewCustomerService() *CustomerService {
	return &CustomerService{
		customerRepo: repositories.NewCustomerRepository(),
	}
}

func (s *CustomerService) GetAll(page, limit int, search string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	customers, total, err := s.customerRepo.GetAll(page, limit, search)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Customers retrieved successfully",
		Data:    customers,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *CustomerService) GetByID(id int) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *CustomerService) Create(req models.CreateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{Name: req.Name}
	if req.Email != "" {
		customer.Email = &req.Email
	}
	if req.Phone != "" {
		customer.Phone = &req.Phone
	}
	if req.Address != "" {
		customer.Address = &req.Address
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(id int, req models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Address != nil {
		customer.Address = req.Address
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(id int) error {
	return s.customerRepo.Delete(id)
}
