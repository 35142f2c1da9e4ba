package procurement_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/procurement"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

type fakeStockRepo struct {
	quantities map[int64]decimal.Decimal
}

func (f *fakeStockRepo) Get(id int64) (*entity.StockItem, error) {
	qty, ok := f.quantities[id]
	if !ok {
		qty = decimal.Zero
	}
	return &entity.StockItem{ID: id, CurrentStock: qty}, nil
}

func (f *fakeStockRepo) GetForUpdate(id int64) (*entity.StockItem, error) { return f.Get(id) }
func (f *fakeStockRepo) Create(*entity.StockItem) error                   { return nil }
func (f *fakeStockRepo) Update(*entity.StockItem) error                   { return nil }

func (f *fakeStockRepo) SetQuantity(id int64, qty decimal.Decimal) error {
	f.quantities[id] = qty
	return nil
}

func (f *fakeStockRepo) List(int, int) ([]*entity.StockItem, error) { return nil, nil }

type fakePORepo struct {
	orders map[int64]*entity.PurchaseOrder
	items  map[int64][]entity.PurchaseOrderItem
	nextID int64
}

func newFakePORepo() *fakePORepo {
	return &fakePORepo{orders: map[int64]*entity.PurchaseOrder{}, items: map[int64][]entity.PurchaseOrderItem{}, nextID: 1}
}

func (f *fakePORepo) Create(po *entity.PurchaseOrder, items []entity.PurchaseOrderItem) error {
	po.ID = f.nextID
	f.nextID++
	for i := range items {
		items[i].PurchaseOrderID = po.ID
	}
	f.orders[po.ID] = po
	f.items[po.ID] = items
	return nil
}

func (f *fakePORepo) GetByID(id int64) (*entity.PurchaseOrder, []entity.PurchaseOrderItem, error) {
	po, ok := f.orders[id]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	return po, f.items[id], nil
}

func (f *fakePORepo) List(int, int) ([]*entity.PurchaseOrder, error) { return nil, nil }

func (f *fakePORepo) GetItem(poID, stockItemID int64) (*entity.PurchaseOrderItem, error) {
	for i := range f.items[poID] {
		if f.items[poID][i].StockItemID == stockItemID {
			cp := f.items[poID][i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePORepo) GetItemForUpdate(poID, stockItemID int64) (*entity.PurchaseOrderItem, error) {
	return f.GetItem(poID, stockItemID)
}

func (f *fakePORepo) SetReceivedQty(poID, stockItemID int64, qty decimal.Decimal) error {
	for i := range f.items[poID] {
		if f.items[poID][i].StockItemID == stockItemID {
			f.items[poID][i].ReceivedQty = qty
			return nil
		}
	}
	return nil
}

func (f *fakePORepo) UpdateStatus(id int64, status string) error {
	if po, ok := f.orders[id]; ok {
		po.Status = status
	}
	return nil
}

type fakeTxRunner struct {
	stockRepo *fakeStockRepo
	poRepo    *fakePORepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	poRepo repository.PurchaseOrderRepository,
	corrRepo repository.CorrectionRepository,
) error) error {
	return fn(f.stockRepo, f.poRepo, nil)
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func setup() (*procurement.ProcurementUseCase, *fakeStockRepo, *fakePORepo) {
	stockRepo := &fakeStockRepo{quantities: map[int64]decimal.Decimal{}}
	poRepo := newFakePORepo()
	tx := &fakeTxRunner{stockRepo: stockRepo, poRepo: poRepo}
	return procurement.NewProcurementUseCase(tx, poRepo), stockRepo, poRepo
}

func createOrder(t *testing.T, uc *procurement.ProcurementUseCase) *dto.PurchaseOrderResponse {
	t.Helper()
	out, err := uc.CreatePurchaseOrder(dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Items: []dto.PurchaseOrderItemRequest{
			{StockItemID: 18, OrderedQty: d(2500), UnitCost: d(12)},
			{StockItemID: 26, OrderedQty: d(1000), UnitCost: d(85)},
		},
	}, "staff-1")
	require.NoError(t, err)
	return out
}

func TestCreatePurchaseOrder(t *testing.T) {
	uc, _, _ := setup()
	out := createOrder(t, uc)

	assert.Equal(t, entity.POStatusOpen, out.Status)
	assert.Equal(t, "staff-1", out.CreatedBy)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].ReceivedQty.IsZero())
}

func TestCreatePurchaseOrder_Validation(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.CreatePurchaseOrder(dto.CreatePurchaseOrderRequest{SupplierID: "sup-1"}, "staff-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreatePurchaseOrder(dto.CreatePurchaseOrderRequest{
		SupplierID: "sup-1",
		Items:      []dto.PurchaseOrderItemRequest{{StockItemID: 18, OrderedQty: d(0)}},
	}, "staff-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiveDelivery_PartialThenFull(t *testing.T) {
	uc, stockRepo, _ := setup()
	stockRepo.quantities[18] = d(100)
	order := createOrder(t, uc)

	// Partial delivery on one line: order goes to partial, stock rises.
	out, err := uc.ReceiveDelivery(context.Background(), order.ID, dto.ReceiveDeliveryRequest{
		StockItemID: 18, Quantity: d(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusPartial, out.Status)
	assert.True(t, stockRepo.quantities[18].Equal(d(1600)))

	// Finish line 18, then line 26 in full: order flips to received.
	_, err = uc.ReceiveDelivery(context.Background(), order.ID, dto.ReceiveDeliveryRequest{
		StockItemID: 18, Quantity: d(1000),
	})
	require.NoError(t, err)

	out, err = uc.ReceiveDelivery(context.Background(), order.ID, dto.ReceiveDeliveryRequest{
		StockItemID: 26, Quantity: d(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusReceived, out.Status)
	assert.True(t, out.Items[0].ReceivedQty.Equal(d(2500)))
	assert.True(t, out.Items[1].ReceivedQty.Equal(d(1000)))
}

func TestReceiveDelivery_UnknownLine(t *testing.T) {
	uc, _, _ := setup()
	order := createOrder(t, uc)

	_, err := uc.ReceiveDelivery(context.Background(), order.ID, dto.ReceiveDeliveryRequest{
		StockItemID: 99, Quantity: d(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiveDelivery_Validation(t *testing.T) {
	uc, _, _ := setup()
	_, err := uc.ReceiveDelivery(context.Background(), 1, dto.ReceiveDeliveryRequest{
		StockItemID: 18, Quantity: d(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
