package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// PatientUseCase patient registry operations.
type PatientUseCase struct {
	repo repository.PatientRepository
}

// NewPatientUseCase builds the use case.
func NewPatientUseCase(repo repository.PatientRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo}
}

// Create registers a patient.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if in.FirstName == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Patient{
		ID:          uuid.New().String(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		Phone:       in.Phone,
		Residence:   in.Residence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return toPatientResponse(p), nil
}

// Get returns one patient.
func (uc *PatientUseCase) Get(id string) (*dto.PatientResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPatientResponse(p), nil
}

// Update applies a partial update to patient demographics.
func (uc *PatientUseCase) Update(id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.DateOfBirth != nil {
		p.DateOfBirth = in.DateOfBirth
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Residence != nil {
		p.Residence = *in.Residence
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return toPatientResponse(p), nil
}

// Delete removes a patient record.
func (uc *PatientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List returns a page of patients.
func (uc *PatientUseCase) List(page dto.PageRequest) ([]*dto.PatientResponse, error) {
	patients, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPatientResponses(patients), nil
}

// Search finds patients by name fragment.
func (uc *PatientUseCase) Search(q string, limit int) ([]*dto.PatientResponse, error) {
	if q == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	patients, err := uc.repo.SearchByName(q, limit)
	if err != nil {
		return nil, err
	}
	return toPatientResponses(patients), nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Gender:      p.Gender,
		DateOfBirth: p.DateOfBirth,
		Phone:       p.Phone,
		Residence:   p.Residence,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPatientResponses(patients []*entity.Patient) []*dto.PatientResponse {
	out := make([]*dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	return out
}
