package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is one employee's pay for one period ("2025-08"). Access to
// these rows is gated behind the payroll access code on top of the admin role.
type SalaryRecord struct {
	ID         string
	EmployeeID string
	Period     string
	GrossPay   decimal.Decimal
	Deductions decimal.Decimal
	NetPay     decimal.Decimal
	PaidAt     *time.Time
	CreatedAt  time.Time
}
