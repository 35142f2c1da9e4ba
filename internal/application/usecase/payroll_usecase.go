package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// PayrollUseCase salary reads gated behind a second factor: the caller must
// already hold the admin role, and every read re-checks the payroll access
// code against the configured bcrypt hash.
type PayrollUseCase struct {
	repo           repository.SalaryRepository
	accessCodeHash string
}

// NewPayrollUseCase builds the use case. accessCodeHash is the bcrypt hash of
// the shared payroll access code.
func NewPayrollUseCase(repo repository.SalaryRepository, accessCodeHash string) *PayrollUseCase {
	return &PayrollUseCase{repo: repo, accessCodeHash: accessCodeHash}
}

// ListSalaries verifies the access code, then returns salary records for the
// requested period, or all records when no period is given.
func (uc *PayrollUseCase) ListSalaries(in dto.PayrollAccessRequest) ([]*dto.SalaryRecordResponse, error) {
	if err := uc.checkAccessCode(in.AccessCode); err != nil {
		return nil, err
	}
	var (
		records []*entity.SalaryRecord
		err     error
	)
	if in.Period != "" {
		records, err = uc.repo.ListByPeriod(in.Period)
	} else {
		records, err = uc.repo.List(100, 0)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, &dto.SalaryRecordResponse{
			ID:         r.ID,
			EmployeeID: r.EmployeeID,
			Period:     r.Period,
			GrossPay:   r.GrossPay,
			Deductions: r.Deductions,
			NetPay:     r.NetPay,
			PaidAt:     r.PaidAt,
		})
	}
	return out, nil
}

func (uc *PayrollUseCase) checkAccessCode(code string) error {
	if uc.accessCodeHash == "" || code == "" {
		return domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.accessCodeHash), []byte(code)); err != nil {
		return domain.ErrForbidden
	}
	return nil
}
