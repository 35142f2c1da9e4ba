package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/usecase"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
)

type fakeSalaryRepo struct {
	byPeriod map[string][]*entity.SalaryRecord
	all      []*entity.SalaryRecord
}

func (f *fakeSalaryRepo) Create(s *entity.SalaryRecord) error { return nil }

func (f *fakeSalaryRepo) ListByPeriod(period string) ([]*entity.SalaryRecord, error) {
	return f.byPeriod[period], nil
}

func (f *fakeSalaryRepo) List(limit, offset int) ([]*entity.SalaryRecord, error) {
	return f.all, nil
}

func hashCode(t *testing.T, code string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestListSalaries_CorrectCode(t *testing.T) {
	repo := &fakeSalaryRepo{byPeriod: map[string][]*entity.SalaryRecord{
		"2026-08": {
			{ID: "s1", EmployeeID: "e1", Period: "2026-08", NetPay: decimal.NewFromInt(45000)},
		},
	}}
	uc := usecase.NewPayrollUseCase(repo, hashCode(t, "open-sesame"))

	out, err := uc.ListSalaries(dto.PayrollAccessRequest{AccessCode: "open-sesame", Period: "2026-08"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "e1", out[0].EmployeeID)
	assert.True(t, out[0].NetPay.Equal(decimal.NewFromInt(45000)))
}

func TestListSalaries_WrongCode(t *testing.T) {
	uc := usecase.NewPayrollUseCase(&fakeSalaryRepo{}, hashCode(t, "open-sesame"))
	_, err := uc.ListSalaries(dto.PayrollAccessRequest{AccessCode: "guess"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListSalaries_EmptyCode(t *testing.T) {
	uc := usecase.NewPayrollUseCase(&fakeSalaryRepo{}, hashCode(t, "open-sesame"))
	_, err := uc.ListSalaries(dto.PayrollAccessRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListSalaries_NoHashConfiguredDisablesAccess(t *testing.T) {
	uc := usecase.NewPayrollUseCase(&fakeSalaryRepo{}, "")
	_, err := uc.ListSalaries(dto.PayrollAccessRequest{AccessCode: "anything"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListSalaries_NoPeriodListsAll(t *testing.T) {
	repo := &fakeSalaryRepo{all: []*entity.SalaryRecord{
		{ID: "s1", Period: "2026-07"},
		{ID: "s2", Period: "2026-08"},
	}}
	uc := usecase.NewPayrollUseCase(repo, hashCode(t, "open-sesame"))

	out, err := uc.ListSalaries(dto.PayrollAccessRequest{AccessCode: "open-sesame"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
