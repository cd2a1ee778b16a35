package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/jackc/pgx/v5"
)

type EmployeeRepository struct{}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

const employeeColumns = `id, employee_code, name, email, phone, role, position, department, hire_date, salary, status, created_at, updated_at`

func (r *EmployeeRepository) Create(employee *models.Employee) error {
	now := time.Now()
	employee.EmployeeCode = fmt.Sprintf("EMP-%d", now.UnixNano()%1_000_000_000)
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO employees (employee_code, name, email, phone, role, position, department, hire_date, salary, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'Active', $10, $11)
		 RETURNING id, status, created_at, updated_at`,
		employee.EmployeeCode, employee.Name, employee.Email, employee.Phone, employee.Role,
		employee.Position, employee.Department, employee.HireDate, employee.Salary, now, now,
	).Scan(&employee.ID, &employee.Status, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *EmployeeRepository) GetByID(id int) (*models.Employee, error) {
	var e models.Employee
	err := config.DB.QueryRow(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Role, &e.Position,
		&e.Department, &e.HireDate, &e.Salary, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) GetAll(page, limit int, department string) ([]models.Employee, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1 = '' OR department = $1)`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM employees`+filter, department).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM employees`+filter+` ORDER BY name LIMIT $2 OFFSET $3`,
		department, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Role, &e.Position,
			&e.Department, &e.HireDate, &e.Salary, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

func (r *EmployeeRepository) Update(employee *models.Employee) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE employees SET name=$1, email=$2, phone=$3, role=$4, position=$5,
		 department=$6, salary=$7, status=$8, updated_at=$9 WHERE id=$10`,
		employee.Name, employee.Email, employee.Phone, employee.Role, employee.Position,
		employee.Department, employee.Salary, employee.Status, time.Now(), employee.ID)
	return err
}

func (r *EmployeeRepository) Delete(id int) error {
	tag, err := config.DB.Exec(context.Background(), `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) CreateShift(shift *models.Shift) error {
	now := time.Now()
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO shifts (employee_id, employee_name, shift_date, start_time, end_time, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		shift.EmployeeID, shift.EmployeeName, shift.ShiftDate, shift.StartTime,
		shift.EndTime, models.ShiftScheduled, now,
	).Scan(&shift.ID, &shift.CreatedAt)
}

func (r *EmployeeRepository) GetShifts(page, limit int, employeeID int) ([]models.Shift, int, error) {
	offset := (page - 1) * limit

	filter := ` WHERE ($1 = 0 OR employee_id = $1)`

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM shifts`+filter, employeeID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, employee_id, employee_name, shift_date, start_time, end_time, clock_in, clock_out, status, created_at
		 FROM shifts`+filter+` ORDER BY shift_date DESC LIMIT $2 OFFSET $3`,
		employeeID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	shifts := []models.Shift{}
	for rows.Next() {
		var s models.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.EmployeeName, &s.ShiftDate, &s.StartTime,
			&s.EndTime, &s.ClockIn, &s.ClockOut, &s.Status, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		shifts = append(shifts, s)
	}
	return shifts, total, rows.Err()
}

func (r *EmployeeRepository) ClockIn(shiftID int) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE shifts SET clock_in = $1 WHERE id = $2 AND clock_in IS NULL`,
		time.Now(), shiftID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("shift not found or already clocked in")
	}
	return nil
}

func (r *EmployeeRepository) ClockOut(shiftID int) error {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE shifts SET clock_out = $1, status = $2
		 WHERE id = $3 AND clock_in IS NOT NULL AND clock_out IS NULL`,
		time.Now(), models.ShiftCompleted, shiftID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("shift not found, not clocked in, or already clocked out")
	}
	return nil
}
