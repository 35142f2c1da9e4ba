package dto

import "time"

// CreatePatientRequest input to register a patient.
type CreatePatientRequest struct {
	FirstName   string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string     `json:"last_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Phone       string     `json:"phone"`
	Residence   string     `json:"residence"`
}

// UpdatePatientRequest partial update of patient demographics.
type UpdatePatientRequest struct {
	FirstName   *string    `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName    *string    `json:"last_name"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Phone       *string    `json:"phone"`
	Residence   *string    `json:"residence"`
}

// PatientResponse output shape for a patient.
type PatientResponse struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Phone       string     `json:"phone"`
	Residence   string     `json:"residence"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
