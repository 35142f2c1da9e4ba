package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	quantities map[int64]decimal.Decimal
	setErr     map[int64]error
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{
		quantities: map[int64]decimal.Decimal{},
		setErr:     map[int64]error{},
	}
}

func (f *fakeStockRepo) Get(id int64) (*entity.StockItem, error) {
	// Absent rows read back as zero quantity, like the real store adapter.
	qty, ok := f.quantities[id]
	if !ok {
		qty = decimal.Zero
	}
	return &entity.StockItem{ID: id, CurrentStock: qty}, nil
}

func (f *fakeStockRepo) GetForUpdate(id int64) (*entity.StockItem, error) { return f.Get(id) }

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	f.quantities[item.ID] = item.CurrentStock
	return nil
}

func (f *fakeStockRepo) Update(item *entity.StockItem) error { return nil }

func (f *fakeStockRepo) SetQuantity(id int64, qty decimal.Decimal) error {
	if err := f.setErr[id]; err != nil {
		return err
	}
	f.quantities[id] = qty
	return nil
}

func (f *fakeStockRepo) List(limit, offset int) ([]*entity.StockItem, error) { return nil, nil }

type poKey struct{ po, item int64 }

type fakePORepo struct {
	received map[poKey]decimal.Decimal
	setErr   map[poKey]error
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{
		received: map[poKey]decimal.Decimal{},
		setErr:   map[poKey]error{},
	}
}

func (f *fakePORepo) Create(po *entity.PurchaseOrder, items []entity.PurchaseOrderItem) error {
	return nil
}

func (f *fakePORepo) GetByID(id int64) (*entity.PurchaseOrder, []entity.PurchaseOrderItem, error) {
	return nil, nil, domain.ErrNotFound
}

func (f *fakePORepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) { return nil, nil }

func (f *fakePORepo) GetItem(poID, stockItemID int64) (*entity.PurchaseOrderItem, error) {
	return nil, domain.ErrNotFound
}

func (f *fakePORepo) GetItemForUpdate(poID, stockItemID int64) (*entity.PurchaseOrderItem, error) {
	return nil, domain.ErrNotFound
}

func (f *fakePORepo) SetReceivedQty(poID, stockItemID int64, qty decimal.Decimal) error {
	k := poKey{poID, stockItemID}
	if err := f.setErr[k]; err != nil {
		return err
	}
	f.received[k] = qty
	return nil
}

func (f *fakePORepo) UpdateStatus(id int64, status string) error { return nil }

type fakeCorrRepo struct {
	created []*entity.StockCorrection
	err     error
}

func (f *fakeCorrRepo) Create(c *entity.StockCorrection) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCorrRepo) List(limit, offset int) ([]*entity.StockCorrection, error) {
	return f.created, nil
}

// fakeTxRunner hands the same fakes to the callback. A callback error stands
// in for a rollback: the use case is expected to discard the partial result.
type fakeTxRunner struct {
	stockRepo *fakeStockRepo
	poRepo    *fakePORepo
	corrRepo  *fakeCorrRepo
	runs      int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	poRepo repository.PurchaseOrderRepository,
	corrRepo repository.CorrectionRepository,
) error) error {
	f.runs++
	return fn(f.stockRepo, f.poRepo, f.corrRepo)
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func newUseCase() (*stock.ReconcileUseCase, *fakeStockRepo, *fakePORepo, *fakeCorrRepo, *fakeTxRunner) {
	stockRepo := newFakeStockRepo()
	poRepo := newFakePORepo()
	corrRepo := &fakeCorrRepo{}
	txRunner := &fakeTxRunner{stockRepo: stockRepo, poRepo: poRepo, corrRepo: corrRepo}
	uc := stock.NewReconcileUseCase(txRunner, stockRepo, poRepo, corrRepo)
	return uc, stockRepo, poRepo, corrRepo, txRunner
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ─────────────────────────────────────────────────────────────────────────────
// Known batch
// ─────────────────────────────────────────────────────────────────────────────

func TestPO74ReceiptFix_FullRun(t *testing.T) {
	uc, stockRepo, poRepo, corrRepo, _ := newUseCase()
	stockRepo.quantities[18] = d(1000)
	stockRepo.quantities[26] = d(500)

	result, err := uc.Apply(context.Background(), stock.PO74ReceiptFix(), "tester", false)
	require.NoError(t, err)

	assert.True(t, result.NewStock["pregabalin"].Equal(d(3500)))
	assert.True(t, result.NewStock["winam"].Equal(d(1500)))
	assert.True(t, stockRepo.quantities[18].Equal(d(3500)))
	assert.True(t, stockRepo.quantities[26].Equal(d(1500)))
	assert.True(t, poRepo.received[poKey{74, 18}].Equal(d(2500)))
	assert.True(t, poRepo.received[poKey{74, 26}].Equal(d(1000)))

	assert.Equal(t, []string{
		"stock_item:18", "stock_item:26",
		"purchase_order_item:74/18", "purchase_order_item:74/26",
	}, result.CompletedSteps)

	require.Len(t, corrRepo.created, 1)
	assert.Equal(t, "po-74-receipt-fix", corrRepo.created[0].Label)
	assert.Equal(t, "tester", corrRepo.created[0].AppliedBy)
	assert.False(t, corrRepo.created[0].Atomic)
}

func TestApply_MissingStockRowDefaultsToZero(t *testing.T) {
	uc, stockRepo, _, _, _ := newUseCase()
	// No row for item 18: the read yields zero and the delta becomes the
	// item's full quantity.
	result, err := uc.Apply(context.Background(), stock.PO74ReceiptFix(), "tester", false)
	require.NoError(t, err)

	assert.True(t, result.NewStock["pregabalin"].Equal(d(2500)))
	assert.True(t, stockRepo.quantities[18].Equal(d(2500)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Partial failure, independent mode
// ─────────────────────────────────────────────────────────────────────────────

func TestApply_Independent_PartialFailureLeavesCommittedSteps(t *testing.T) {
	uc, stockRepo, poRepo, corrRepo, _ := newUseCase()
	stockRepo.quantities[18] = d(1000)
	stockRepo.quantities[26] = d(500)
	// Fail the third mutation: the first received-quantity overwrite.
	storeErr := errors.New(`relation "purchase_order_items" is locked`)
	poRepo.setErr[poKey{74, 18}] = storeErr

	result, err := uc.Apply(context.Background(), stock.PO74ReceiptFix(), "tester", false)
	require.Error(t, err)
	assert.Equal(t, storeErr, err)

	// The two stock writes stay committed; no rollback happens.
	assert.True(t, stockRepo.quantities[18].Equal(d(3500)))
	assert.True(t, stockRepo.quantities[26].Equal(d(1500)))
	_, touched := poRepo.received[poKey{74, 18}]
	assert.False(t, touched)

	assert.Equal(t, []string{"stock_item:18", "stock_item:26"}, result.CompletedSteps)
	assert.Empty(t, corrRepo.created, "failed batches are not recorded")
}

func TestApply_Independent_AuditFailureSurfaces(t *testing.T) {
	uc, stockRepo, _, corrRepo, _ := newUseCase()
	stockRepo.quantities[18] = d(1000)
	stockRepo.quantities[26] = d(500)
	corrRepo.err = errors.New("audit table gone")

	result, err := uc.Apply(context.Background(), stock.PO74ReceiptFix(), "tester", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record correction")
	// The mutations themselves completed.
	assert.Len(t, result.CompletedSteps, 4)
}

// ─────────────────────────────────────────────────────────────────────────────
// Atomic mode
// ─────────────────────────────────────────────────────────────────────────────

func TestApply_Atomic_Success(t *testing.T) {
	uc, stockRepo, _, corrRepo, txRunner := newUseCase()
	stockRepo.quantities[18] = d(1000)
	stockRepo.quantities[26] = d(500)

	result, err := uc.Apply(context.Background(), stock.PO74ReceiptFix(), "tester", true)
	require.NoError(t, err)

	assert.Equal(t, 1, txRunner.runs)
	assert.Len(t, result.CompletedSteps, 4)
	require.Len(t, corrRepo.created, 1)
	assert.True(t, corrRepo.created[0].Atomic)
}

func TestApply_Atomic_FailureReportsNothingCommitted(t *testing.T) {
	uc, stockRepo, poRepo, _, _ := newUseCase()
	stockRepo.quantities[18] = d(1000)
	poRepo.setErr[poKey{74, 26}] = errors.New("write refused")

	result, err := uc.Apply(context.Background(), stock.PO74ReceiptFix(), "tester", true)
	require.Error(t, err)

	// Everything rolled back, so the result must not claim any step committed.
	assert.Empty(t, result.CompletedSteps)
	assert.Empty(t, result.NewStock)
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

func TestApply_Validation(t *testing.T) {
	uc, _, _, _, _ := newUseCase()

	cases := []struct {
		name  string
		batch entity.CorrectionBatch
	}{
		{"empty label", entity.CorrectionBatch{Steps: stock.PO74ReceiptFix().Steps}},
		{"no steps", entity.CorrectionBatch{Label: "x"}},
		{"empty slug", entity.CorrectionBatch{Label: "x", Steps: []entity.CorrectionStep{
			{StockItemID: 1, PurchaseOrderID: 1},
		}}},
		{"duplicate slug", entity.CorrectionBatch{Label: "x", Steps: []entity.CorrectionStep{
			{Slug: "a", StockItemID: 1, PurchaseOrderID: 1},
			{Slug: "a", StockItemID: 2, PurchaseOrderID: 1},
		}}},
		{"bad item id", entity.CorrectionBatch{Label: "x", Steps: []entity.CorrectionStep{
			{Slug: "a", StockItemID: 0, PurchaseOrderID: 1},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Apply(context.Background(), tc.batch, "tester", false)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
