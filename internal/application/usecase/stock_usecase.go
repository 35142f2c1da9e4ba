package usecase

import (
	"fmt"
	"time"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/dto"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// StockUseCase inventory catalogue operations and snapshot reads. Quantity
// mutations live elsewhere: deliveries, dispensing, and corrections.
type StockUseCase struct {
	stockRepo    repository.StockItemRepository
	snapshotRepo repository.SnapshotRepository
}

// NewStockUseCase builds the use case.
func NewStockUseCase(stockRepo repository.StockItemRepository, snapshotRepo repository.SnapshotRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, snapshotRepo: snapshotRepo}
}

// Create registers an inventory item under its legacy catalogue id.
func (uc *StockUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.ID <= 0 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:           in.ID,
		Name:         in.Name,
		Unit:         in.Unit,
		UnitPrice:    in.UnitPrice,
		CurrentStock: in.CurrentStock,
		ReorderLevel: in.ReorderLevel,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.stockRepo.Create(item); err != nil {
		return nil, fmt.Errorf("create stock item: %w", err)
	}
	return toStockItemResponse(item), nil
}

// Get returns one item. Absent ids read back as zero-quantity items, so a
// zero Name means the catalogue has no such entry.
func (uc *StockUseCase) Get(id int64) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if item.Name == "" {
		return nil, domain.ErrNotFound
	}
	return toStockItemResponse(item), nil
}

// Update applies a partial update to catalogue fields.
func (uc *StockUseCase) Update(id int64, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if item.Name == "" {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.SupplierID != nil {
		item.SupplierID = *in.SupplierID
	}
	item.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(item); err != nil {
		return nil, fmt.Errorf("update stock item: %w", err)
	}
	return toStockItemResponse(item), nil
}

// List returns a page of inventory items.
func (uc *StockUseCase) List(page dto.PageRequest) ([]*dto.StockItemResponse, error) {
	items, err := uc.stockRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toStockItemResponse(it))
	}
	return out, nil
}

// ListSnapshots returns a page of opening-stock snapshot rows, newest first.
func (uc *StockUseCase) ListSnapshots(page dto.PageRequest) ([]*dto.SnapshotRowResponse, error) {
	rows, err := uc.snapshotRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SnapshotRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.SnapshotRowResponse{
			ID:          r.ID,
			StockItemID: r.StockItemID,
			ItemName:    r.ItemName,
			Quantity:    r.Quantity,
			CapturedAt:  r.CapturedAt,
		})
	}
	return out, nil
}

func toStockItemResponse(item *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Unit:         item.Unit,
		UnitPrice:    item.UnitPrice,
		CurrentStock: item.CurrentStock,
		ReorderLevel: item.ReorderLevel,
		SupplierID:   item.SupplierID,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
