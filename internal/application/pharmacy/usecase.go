package pharmacy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// PharmacyUseCase prescriptions: issue, dispense, printouts.
type PharmacyUseCase struct {
	txRunner    TxRunner
	rxRepo      repository.PrescriptionRepository
	patientRepo repository.PatientRepository
	stockRepo   repository.StockItemRepository
	printer     PrintoutGenerator
}

// NewPharmacyUseCase builds the use case.
func NewPharmacyUseCase(
	txRunner TxRunner,
	rxRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	stockRepo repository.StockItemRepository,
	printer PrintoutGenerator,
) *PharmacyUseCase {
	return &PharmacyUseCase{
		txRunner:    txRunner,
		rxRepo:      rxRepo,
		patientRepo: patientRepo,
		stockRepo:   stockRepo,
		printer:     printer,
	}
}

// CreatePrescription issues a new pending prescription for a patient.
func (uc *PharmacyUseCase) CreatePrescription(in dto.CreatePrescriptionRequest, prescriberID string) (*dto.PrescriptionResponse, error) {
	if in.PatientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.StockItemID <= 0 || !it.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}
	patient, err := uc.patientRepo.GetByID(in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}

	rx := &entity.Prescription{
		ID:           uuid.New().String(),
		PatientID:    in.PatientID,
		PrescriberID: prescriberID,
		Status:       entity.PrescriptionPending,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}
	items := make([]entity.PrescriptionItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.PrescriptionItem{
			PrescriptionID: rx.ID,
			StockItemID:    it.StockItemID,
			Quantity:       it.Quantity,
			Dosage:         it.Dosage,
		})
	}
	if err := uc.rxRepo.Create(rx, items); err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	return toPrescriptionResponse(rx, items), nil
}

// GetPrescription returns one prescription with its lines.
func (uc *PharmacyUseCase) GetPrescription(id string) (*dto.PrescriptionResponse, error) {
	rx, items, err := uc.rxRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toPrescriptionResponse(rx, items), nil
}

// ListByPatient returns a patient's prescriptions, newest first.
func (uc *PharmacyUseCase) ListByPatient(patientID string, page dto.PageRequest) ([]*dto.PrescriptionResponse, error) {
	rxs, err := uc.rxRepo.ListByPatient(patientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PrescriptionResponse, 0, len(rxs))
	for _, rx := range rxs {
		out = append(out, toPrescriptionResponse(rx, nil))
	}
	return out, nil
}

// Dispense hands a pending prescription over the counter: locks each stock
// row, checks sufficiency, decrements, and marks the prescription dispensed.
// All of it in one transaction, so a shortage on any line leaves stock intact.
func (uc *PharmacyUseCase) Dispense(ctx context.Context, id string) (*dto.PrescriptionResponse, error) {
	err := uc.txRunner.RunDispense(ctx, func(
		stockRepo repository.StockItemRepository,
		rxRepo repository.PrescriptionRepository,
	) error {
		rx, items, err := rxRepo.GetByID(id)
		if err != nil {
			return err
		}
		if rx.Status == entity.PrescriptionDispensed {
			return domain.ErrAlreadyDispensed
		}
		if rx.Status != entity.PrescriptionPending {
			return domain.ErrConflict
		}
		for i := range items {
			stock, err := stockRepo.GetForUpdate(items[i].StockItemID)
			if err != nil {
				return err
			}
			if stock.CurrentStock.LessThan(items[i].Quantity) {
				return fmt.Errorf("item %d: %w", items[i].StockItemID, domain.ErrInsufficientStock)
			}
			if err := stockRepo.SetQuantity(items[i].StockItemID, stock.CurrentStock.Sub(items[i].Quantity)); err != nil {
				return fmt.Errorf("decrement stock for item %d: %w", items[i].StockItemID, err)
			}
		}
		return rxRepo.MarkDispensed(id, time.Now())
	})
	if err != nil {
		return nil, err
	}
	return uc.GetPrescription(id)
}

// Cancel voids a pending prescription without touching stock.
func (uc *PharmacyUseCase) Cancel(id string) error {
	rx, _, err := uc.rxRepo.GetByID(id)
	if err != nil {
		return err
	}
	if rx.Status != entity.PrescriptionPending {
		return domain.ErrConflict
	}
	return uc.rxRepo.UpdateStatus(id, entity.PrescriptionCancelled)
}

// GeneratePrintout renders the prescription as a PDF for the patient.
func (uc *PharmacyUseCase) GeneratePrintout(ctx context.Context, id string) ([]byte, error) {
	rx, items, err := uc.rxRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	patient, err := uc.patientRepo.GetByID(rx.PatientID)
	if err != nil {
		return nil, err
	}
	lines := make([]PrescriptionLineForPDF, 0, len(items))
	for i := range items {
		stock, err := uc.stockRepo.Get(items[i].StockItemID)
		if err != nil {
			return nil, err
		}
		name := stock.Name
		if name == "" {
			name = fmt.Sprintf("item #%d", items[i].StockItemID)
		}
		lines = append(lines, PrescriptionLineForPDF{
			DrugName: name,
			Quantity: items[i].Quantity,
			Unit:     stock.Unit,
			Dosage:   items[i].Dosage,
		})
	}
	pdf, err := uc.printer.GeneratePrescriptionPDF(ctx, rx, patient, lines)
	if err != nil {
		return nil, fmt.Errorf("generate prescription pdf: %w", err)
	}
	return pdf, nil
}

func toPrescriptionResponse(rx *entity.Prescription, items []entity.PrescriptionItem) *dto.PrescriptionResponse {
	resp := &dto.PrescriptionResponse{
		ID:           rx.ID,
		PatientID:    rx.PatientID,
		PrescriberID: rx.PrescriberID,
		Status:       rx.Status,
		Notes:        rx.Notes,
		CreatedAt:    rx.CreatedAt,
		DispensedAt:  rx.DispensedAt,
	}
	for i := range items {
		resp.Items = append(resp.Items, dto.PrescriptionItemResponse{
			StockItemID: items[i].StockItemID,
			Quantity:    items[i].Quantity,
			Dosage:      items[i].Dosage,
		})
	}
	return resp
}
