package entity

import "time"

// Patient is a clinic patient record.
type Patient struct {
	ID          string
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth *time.Time
	Phone       string
	Residence   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName joins first and last name for display.
func (p *Patient) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
