package repository

import "github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"

// SalaryRepository is the persistence port for salary records.
type SalaryRepository interface {
	Create(s *entity.SalaryRecord) error
	ListByPeriod(period string) ([]*entity.SalaryRecord, error)
	List(limit, offset int) ([]*entity.SalaryRecord, error)
}
