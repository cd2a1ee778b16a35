package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int             `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	Email        *string         `json:"email,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Role         string          `json:"role"`
	Position     *string         `json:"position,omitempty"`
	Department   string          `json:"department"`
	HireDate     time.Time       `json:"hire_date"`
	Salary       decimal.Decimal `json:"salary"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

const (
	ShiftScheduled = "Scheduled"
	ShiftCompleted = "Completed"
	ShiftAbsent    = "Absent"
)

type Shift struct {
	ID           int        `json:"id"`
	EmployeeID   int        `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	ShiftDate    time.Time  `json:"shift_date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	ClockIn      *time.Time `json:"clock_in,omitempty"`
	ClockOut     *time.Time `json:"clock_out,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}
