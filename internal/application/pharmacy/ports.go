package pharmacy

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// TxRunner runs a callback inside a transaction with the repos dispensing
// needs. Stock decrements and the status change must land together.
type TxRunner interface {
	RunDispense(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		rxRepo repository.PrescriptionRepository,
	) error) error
}

// PrescriptionLineForPDF is a denormalized line for the printout: the drug
// name is resolved up front so the generator needs no repository access.
type PrescriptionLineForPDF struct {
	DrugName string
	Quantity decimal.Decimal
	Unit     string
	Dosage   string
}

// PrintoutGenerator renders a prescription as a printable document.
type PrintoutGenerator interface {
	GeneratePrescriptionPDF(
		ctx context.Context,
		rx *entity.Prescription,
		patient *entity.Patient,
		lines []PrescriptionLineForPDF,
	) ([]byte, error)
}
