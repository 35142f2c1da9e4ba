package repository

import "github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"

// SupplierRepository is the persistence port for Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Supplier, error)
}
