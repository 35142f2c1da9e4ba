package repository

import (
	"time"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

// PrescriptionRepository is the port for prescriptions and their lines.
type PrescriptionRepository interface {
	Create(p *entity.Prescription, items []entity.PrescriptionItem) error
	GetByID(id string) (*entity.Prescription, []entity.PrescriptionItem, error)
	ListByPatient(patientID string, limit, offset int) ([]*entity.Prescription, error)
	MarkDispensed(id string, at time.Time) error
	UpdateStatus(id string, status string) error
}
