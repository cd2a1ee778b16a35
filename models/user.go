package models

import "time"

const (
	RoleManager          = "Manager"
	RoleAccountant       = "Accountant"
	RoleCashier          = "Cashier"
	RoleInventoryManager = "Inventory Manager"
	RoleReportViewer     = "Report Viewer"
)

type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	Name      string     `json:"name"`
	Phone     *string    `json:"phone,omitempty"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleManager, RoleAccountant, RoleCashier, RoleInventoryManager, RoleReportViewer:
		return true
	}
	return false
}
