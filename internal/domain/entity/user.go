package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin      = "admin"
	RolePharmacist = "pharmacist"
	RoleCashier    = "cashier"
)

// User is a staff account of the clinic.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext in the domain after persisting
	Name         string
	Role         string // admin, pharmacist, cashier
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
