package entity

import "time"

// Supplier is a drug/consumables supplier the pharmacy orders from.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
