package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// ProcurementUseCase purchase orders and delivery receipts.
type ProcurementUseCase struct {
	txRunner TxRunner
	poRepo   repository.PurchaseOrderRepository
}

// NewProcurementUseCase builds the use case.
func NewProcurementUseCase(txRunner TxRunner, poRepo repository.PurchaseOrderRepository) *ProcurementUseCase {
	return &ProcurementUseCase{txRunner: txRunner, poRepo: poRepo}
}

// CreatePurchaseOrder places an order with a supplier.
func (uc *ProcurementUseCase) CreatePurchaseOrder(in dto.CreatePurchaseOrderRequest, createdBy string) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.StockItemID <= 0 || !it.OrderedQty.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	po := &entity.PurchaseOrder{
		SupplierID: in.SupplierID,
		Status:     entity.POStatusOpen,
		OrderedAt:  now,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.PurchaseOrderItem{
			StockItemID: it.StockItemID,
			OrderedQty:  it.OrderedQty,
			UnitCost:    it.UnitCost,
		})
	}
	if err := uc.poRepo.Create(po, items); err != nil {
		return nil, fmt.Errorf("create purchase order: %w", err)
	}
	return toPurchaseOrderResponse(po, items), nil
}

// GetPurchaseOrder returns one order with its lines.
func (uc *ProcurementUseCase) GetPurchaseOrder(id int64) (*dto.PurchaseOrderResponse, error) {
	po, items, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po, items), nil
}

// ListPurchaseOrders returns a page of orders, newest first.
func (uc *ProcurementUseCase) ListPurchaseOrders(page dto.PageRequest) ([]*dto.PurchaseOrderResponse, error) {
	orders, err := uc.poRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseOrderResponse, 0, len(orders))
	for _, po := range orders {
		out = append(out, toPurchaseOrderResponse(po, nil))
	}
	return out, nil
}

// ReceiveDelivery records a delivery against one order line: increments the
// on-hand stock, accumulates the line's received quantity, and rolls the order
// status forward. Runs inside a transaction with the stock row locked.
func (uc *ProcurementUseCase) ReceiveDelivery(ctx context.Context, poID int64, in dto.ReceiveDeliveryRequest) (*dto.PurchaseOrderResponse, error) {
	if poID <= 0 || in.StockItemID <= 0 || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		poRepo repository.PurchaseOrderRepository,
		_ repository.CorrectionRepository,
	) error {
		line, err := poRepo.GetItemForUpdate(poID, in.StockItemID)
		if err != nil {
			return err
		}
		item, err := stockRepo.GetForUpdate(in.StockItemID)
		if err != nil {
			return err
		}
		if err := stockRepo.SetQuantity(in.StockItemID, item.CurrentStock.Add(in.Quantity)); err != nil {
			return fmt.Errorf("update stock for item %d: %w", in.StockItemID, err)
		}
		line.ReceivedQty = line.ReceivedQty.Add(in.Quantity)
		if err := poRepo.SetReceivedQty(poID, in.StockItemID, line.ReceivedQty); err != nil {
			return fmt.Errorf("update received quantity: %w", err)
		}

		_, items, err := poRepo.GetByID(poID)
		if err != nil {
			return err
		}
		return poRepo.UpdateStatus(poID, orderStatus(items))
	})
	if err != nil {
		return nil, err
	}
	return uc.GetPurchaseOrder(poID)
}

// orderStatus derives the order status from its lines.
func orderStatus(items []entity.PurchaseOrderItem) string {
	received := 0
	anyDelivery := false
	for i := range items {
		if items[i].FullyReceived() {
			received++
		}
		if items[i].ReceivedQty.IsPositive() {
			anyDelivery = true
		}
	}
	switch {
	case len(items) > 0 && received == len(items):
		return entity.POStatusReceived
	case anyDelivery:
		return entity.POStatusPartial
	default:
		return entity.POStatusOpen
	}
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder, items []entity.PurchaseOrderItem) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:         po.ID,
		SupplierID: po.SupplierID,
		Status:     po.Status,
		OrderedAt:  po.OrderedAt,
		CreatedBy:  po.CreatedBy,
	}
	for i := range items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			StockItemID: items[i].StockItemID,
			OrderedQty:  items[i].OrderedQty,
			ReceivedQty: items[i].ReceivedQty,
			UnitCost:    items[i].UnitCost,
		})
	}
	return resp
}
