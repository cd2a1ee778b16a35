package services

import (
	"math"

	"smart-supermarket/models"
	"smart-supermarket/repositories"
)

type EmployeeService struct {
	employeeRepo *repositories.EmployeeRepository
}

func NewEmployeeService() *EmployeeService {
	return &EmployeeService{
		employeeRepo: repositories.NewEmployeeRepository(),
	}
}

func (s *EmployeeService) GetAll(page, limit int, department string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	employees, total, err := s.employeeRepo.GetAll(page, limit, department)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Employees retrieved successfully",
		Data:    employees,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *EmployeeService) GetByID(id int) (*models.Employee, error) {
	return s.employeeRepo.GetByID(id)
}

func (s *EmployeeService) Create(req models.CreateEmployeeRequest) (*models.Employee, error) {
	employee := &models.Employee{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		HireDate:   req.HireDate,
		Salary:     req.Salary,
	}
	if req.Email != "" {
		employee.Email = &req.Email
	}
	if req.Phone != "" {
		employee.Phone = &req.Phone
	}
	if req.Position != "" {
		employee.Position = &req.Position
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Update(id int, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = req.Email
	}
	if req.Phone != nil {
		employee.Phone = req.Phone
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Position != nil {
		employee.Position = req.Position
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(id int) error {
	return s.employeeRepo.Delete(id)
}

func (s *EmployeeService) CreateShift(req models.CreateShiftRequest) (*models.Shift, error) {
	employee, err := s.employeeRepo.GetByID(req.EmployeeID)
	if err != nil {
		return nil, err
	}

	shift := &models.Shift{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		ShiftDate:    req.ShiftDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       models.ShiftScheduled,
	}

	if err := s.employeeRepo.CreateShift(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *EmployeeService) GetShifts(page, limit, employeeID int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	shifts, total, err := s.employeeRepo.GetShifts(page, limit, employeeID)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Shifts retrieved successfully",
		Data:    shifts,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *EmployeeService) ClockIn(shiftID int) error {
	return s.employeeRepo.ClockIn(shiftID)
}

func (s *EmployeeService) ClockOut(shiftID int) error {
	return s.employeeRepo.ClockOut(shiftID)
}
