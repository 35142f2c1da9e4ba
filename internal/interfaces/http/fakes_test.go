package http_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// In-memory store fakes shared by the handler tests.

type fakeStockRepo struct {
	quantities map[int64]decimal.Decimal
	setErr     map[int64]error
	createErr  error
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{quantities: map[int64]decimal.Decimal{}, setErr: map[int64]error{}}
}

func (f *fakeStockRepo) Get(id int64) (*entity.StockItem, error) {
	qty, ok := f.quantities[id]
	if !ok {
		qty = decimal.Zero
	}
	return &entity.StockItem{ID: id, CurrentStock: qty}, nil
}

func (f *fakeStockRepo) GetForUpdate(id int64) (*entity.StockItem, error) { return f.Get(id) }

func (f *fakeStockRepo) Create(item *entity.StockItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.quantities[item.ID] = item.CurrentStock
	return nil
}

func (f *fakeStockRepo) Update(*entity.StockItem) error { return nil }

func (f *fakeStockRepo) SetQuantity(id int64, qty decimal.Decimal) error {
	if err := f.setErr[id]; err != nil {
		return err
	}
	f.quantities[id] = qty
	return nil
}

func (f *fakeStockRepo) List(int, int) ([]*entity.StockItem, error) { return nil, nil }

type poKey struct{ po, item int64 }

type fakePORepo struct {
	received map[poKey]decimal.Decimal
	setErr   map[poKey]error
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{received: map[poKey]decimal.Decimal{}, setErr: map[poKey]error{}}
}

func (f *fakePORepo) Create(*entity.PurchaseOrder, []entity.PurchaseOrderItem) error { return nil }

func (f *fakePORepo) GetByID(int64) (*entity.PurchaseOrder, []entity.PurchaseOrderItem, error) {
	return nil, nil, domain.ErrNotFound
}

func (f *fakePORepo) List(int, int) ([]*entity.PurchaseOrder, error) { return nil, nil }

func (f *fakePORepo) GetItem(int64, int64) (*entity.PurchaseOrderItem, error) {
	return nil, domain.ErrNotFound
}

func (f *fakePORepo) GetItemForUpdate(int64, int64) (*entity.PurchaseOrderItem, error) {
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

func (f *fakePORepo) UpdateStatus(int64, string) error { return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
	createErr error
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}

func (f *fakeSupplierRepo) Update(s *entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) Delete(id string) error          { return nil }

func (f *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }

type fakeCorrRepo struct {
	created []*entity.StockCorrection
}

func (f *fakeCorrRepo) Create(c *entity.StockCorrection) error {
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCorrRepo) List(int, int) ([]*entity.StockCorrection, error) { return f.created, nil }

type fakeTxRunner struct {
	stockRepo *fakeStockRepo
	poRepo    *fakePORepo
	corrRepo  *fakeCorrRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	poRepo repository.PurchaseOrderRepository,
	corrRepo repository.CorrectionRepository,
) error) error {
	return fn(f.stockRepo, f.poRepo, f.corrRepo)
}

type fakeVerifier struct {
	user *entity.User
	err  error
}

func (f *fakeVerifier) VerifySession(context.Context, string) (*entity.User, error) {
	return f.user, f.err
}

type fakeInvoker struct {
	err   error
	calls int
}

func (f *fakeInvoker) CaptureOpeningStock(context.Context) error {
	f.calls++
	return f.err
}
