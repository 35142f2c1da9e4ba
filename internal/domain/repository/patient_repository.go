package repository

import "github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"

// PatientRepository is the persistence port for Patient.
type PatientRepository interface {
	Create(patient *entity.Patient) error
	GetByID(id string) (*entity.Patient, error)
	Update(patient *entity.Patient) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Patient, error)
	SearchByName(q string, limit int) ([]*entity.Patient, error)
}
