package pharmacy_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/pharmacy"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

type fakeStockRepo struct {
	quantities map[int64]decimal.Decimal
	names      map[int64]string
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: map[int64]decimal.Decimal{}, names: map[int64]string{}}
}

func (f *fakeStockRepo) Get(id int64) (*entity.StockItem, error) {
	qty, ok := f.quantities[id]
	if !ok {
		qty = decimal.Zero
	}
	return &entity.StockItem{ID: id, Name: f.names[id], CurrentStock: qty}, nil
}

func (f *fakeStockRepo) GetForUpdate(id int64) (*entity.StockItem, error) { return f.Get(id) }
func (f *fakeStockRepo) Create(*entity.StockItem) error                   { return nil }
func (f *fakeStockRepo) Update(*entity.StockItem) error                   { return nil }

func (f *fakeStockRepo) SetQuantity(id int64, qty decimal.Decimal) error {
	f.quantities[id] = qty
	return nil
}

func (f *fakeStockRepo) List(int, int) ([]*entity.StockItem, error) { return nil, nil }

type fakeRxRepo struct {
	rx    map[string]*entity.Prescription
	items map[string][]entity.PrescriptionItem
}

func newFakeRxRepo() *fakeRxRepo {
	return &fakeRxRepo{rx: map[string]*entity.Prescription{}, items: map[string][]entity.PrescriptionItem{}}
}

func (f *fakeRxRepo) Create(p *entity.Prescription, items []entity.PrescriptionItem) error {
	f.rx[p.ID] = p
	f.items[p.ID] = items
	return nil
}

func (f *fakeRxRepo) GetByID(id string) (*entity.Prescription, []entity.PrescriptionItem, error) {
	p, ok := f.rx[id]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, f.items[id], nil
}

func (f *fakeRxRepo) ListByPatient(string, int, int) ([]*entity.Prescription, error) {
	return nil, nil
}

func (f *fakeRxRepo) MarkDispensed(id string, at time.Time) error {
	p, ok := f.rx[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = entity.PrescriptionDispensed
	p.DispensedAt = &at
	return nil
}

func (f *fakeRxRepo) UpdateStatus(id string, status string) error {
	p, ok := f.rx[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

type fakePatientRepo struct {
	patients map[string]*entity.Patient
}

func (f *fakePatientRepo) Create(*entity.Patient) error { return nil }

func (f *fakePatientRepo) GetByID(id string) (*entity.Patient, error) {
	return f.patients[id], nil
}

func (f *fakePatientRepo) Update(*entity.Patient) error                       { return nil }
func (f *fakePatientRepo) Delete(string) error                                { return nil }
func (f *fakePatientRepo) List(int, int) ([]*entity.Patient, error)           { return nil, nil }
func (f *fakePatientRepo) SearchByName(string, int) ([]*entity.Patient, error) { return nil, nil }

type fakeDispenseTx struct {
	stockRepo *fakeStockRepo
	rxRepo    *fakeRxRepo
}

func (f *fakeDispenseTx) RunDispense(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	rxRepo repository.PrescriptionRepository,
) error) error {
	return fn(f.stockRepo, f.rxRepo)
}

type fakePrinter struct {
	lines []pharmacy.PrescriptionLineForPDF
}

func (f *fakePrinter) GeneratePrescriptionPDF(
	_ context.Context,
	_ *entity.Prescription,
	_ *entity.Patient,
	lines []pharmacy.PrescriptionLineForPDF,
) ([]byte, error) {
	f.lines = lines
	return []byte("%PDF-fake"), nil
}

func setup() (*pharmacy.PharmacyUseCase, *fakeStockRepo, *fakeRxRepo, *fakePrinter) {
	stockRepo := newFakeStockRepo()
	rxRepo := newFakeRxRepo()
	patients := &fakePatientRepo{patients: map[string]*entity.Patient{
		"p1": {ID: "p1", FirstName: "Akinyi", LastName: "Odhiambo"},
	}}
	printer := &fakePrinter{}
	tx := &fakeDispenseTx{stockRepo: stockRepo, rxRepo: rxRepo}
	uc := pharmacy.NewPharmacyUseCase(tx, rxRepo, patients, stockRepo, printer)
	return uc, stockRepo, rxRepo, printer
}

func rxRequest() dto.CreatePrescriptionRequest {
	return dto.CreatePrescriptionRequest{
		PatientID: "p1",
		Items: []dto.PrescriptionItemRequest{
			{StockItemID: 18, Quantity: decimal.NewFromInt(30), Dosage: "1x3 after meals"},
			{StockItemID: 26, Quantity: decimal.NewFromInt(2), Dosage: "5ml at night"},
		},
	}
}

func TestDispense_DecrementsStockAndMarksDispensed(t *testing.T) {
	uc, stockRepo, _, _ := setup()
	stockRepo.quantities[18] = decimal.NewFromInt(100)
	stockRepo.quantities[26] = decimal.NewFromInt(10)

	created, err := uc.CreatePrescription(rxRequest(), "staff-1")
	require.NoError(t, err)

	out, err := uc.Dispense(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.PrescriptionDispensed, out.Status)
	require.NotNil(t, out.DispensedAt)
	assert.True(t, stockRepo.quantities[18].Equal(decimal.NewFromInt(70)))
	assert.True(t, stockRepo.quantities[26].Equal(decimal.NewFromInt(8)))
}

func TestDispense_InsufficientStockLeavesEverythingPending(t *testing.T) {
	uc, stockRepo, rxRepo, _ := setup()
	stockRepo.quantities[18] = decimal.NewFromInt(100)
	stockRepo.quantities[26] = decimal.NewFromInt(1) // below the prescribed 2

	created, err := uc.CreatePrescription(rxRequest(), "staff-1")
	require.NoError(t, err)

	_, err = uc.Dispense(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The prescription stays pending. The fake runner has no rollback, so the
	// sufficiency check ordering is what keeps stock honest here: the failing
	// line aborts before its decrement.
	assert.Equal(t, entity.PrescriptionPending, rxRepo.rx[created.ID].Status)
}

func TestDispense_Twice(t *testing.T) {
	uc, stockRepo, _, _ := setup()
	stockRepo.quantities[18] = decimal.NewFromInt(100)
	stockRepo.quantities[26] = decimal.NewFromInt(10)

	created, err := uc.CreatePrescription(rxRequest(), "staff-1")
	require.NoError(t, err)

	_, err = uc.Dispense(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = uc.Dispense(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyDispensed)
	// No double decrement.
	assert.True(t, stockRepo.quantities[18].Equal(decimal.NewFromInt(70)))
}

func TestDispense_UnknownPrescription(t *testing.T) {
	uc, _, _, _ := setup()
	_, err := uc.Dispense(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_OnlyPending(t *testing.T) {
	uc, stockRepo, rxRepo, _ := setup()
	stockRepo.quantities[18] = decimal.NewFromInt(100)
	stockRepo.quantities[26] = decimal.NewFromInt(10)

	created, err := uc.CreatePrescription(rxRequest(), "staff-1")
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(created.ID))
	assert.Equal(t, entity.PrescriptionCancelled, rxRepo.rx[created.ID].Status)

	err = uc.Cancel(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGeneratePrintout_ResolvesDrugNames(t *testing.T) {
	uc, stockRepo, _, printer := setup()
	stockRepo.quantities[18] = decimal.NewFromInt(100)
	stockRepo.quantities[26] = decimal.NewFromInt(10)
	stockRepo.names[18] = "Pregabalin 75mg"
	stockRepo.names[26] = "Winam cough syrup"

	created, err := uc.CreatePrescription(rxRequest(), "staff-1")
	require.NoError(t, err)

	pdf, err := uc.GeneratePrintout(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.Len(t, printer.lines, 2)
	assert.Equal(t, "Pregabalin 75mg", printer.lines[0].DrugName)
	assert.Equal(t, "1x3 after meals", printer.lines[0].Dosage)
}

func TestCreatePrescription_UnknownPatient(t *testing.T) {
	uc, _, _, _ := setup()
	in := rxRequest()
	in.PatientID = "ghost"
	_, err := uc.CreatePrescription(in, "staff-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
