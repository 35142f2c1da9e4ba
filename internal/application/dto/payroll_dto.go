package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollAccessRequest carries the payroll access code checked on every
// salary read, on top of the admin role.
type PayrollAccessRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
	Period     string `json:"period"` // optional "2025-08" filter
}

// SalaryRecordResponse one employee's pay for one period.
type SalaryRecordResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"`
	GrossPay   decimal.Decimal `json:"gross_pay"`
	Deductions decimal.Decimal `json:"deductions"`
	NetPay     decimal.Decimal `json:"net_pay"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
}
