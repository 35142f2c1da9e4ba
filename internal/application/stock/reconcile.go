package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// ReconcileUseCase applies correction batches: per step it adds a delta to an
// item's on-hand quantity and overwrites the received figure on the matching
// purchase order line, then records the batch in the corrections audit trail.
//
// Two modes. Atomic wraps the whole batch in one transaction. Independent
// commits each statement on its own, the way the original repair ran; a
// failure mid-batch leaves the earlier statements committed, and the result
// reports exactly which steps went through.
type ReconcileUseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockItemRepository
	poRepo    repository.PurchaseOrderRepository
	corrRepo  repository.CorrectionRepository
}

// NewReconcileUseCase builds the use case. The plain repositories serve
// independent mode; txRunner serves atomic mode.
func NewReconcileUseCase(
	txRunner TxRunner,
	stockRepo repository.StockItemRepository,
	poRepo repository.PurchaseOrderRepository,
	corrRepo repository.CorrectionRepository,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		txRunner:  txRunner,
		stockRepo: stockRepo,
		poRepo:    poRepo,
		corrRepo:  corrRepo,
	}
}

// ReconcileResult reports the outcome of a batch. NewStock maps step slug to
// the resulting on-hand quantity. CompletedSteps lists the store mutations
// that committed, in execution order; on full success it covers every step,
// and in atomic mode it stays empty on failure because everything rolled back.
type ReconcileResult struct {
	NewStock       map[string]decimal.Decimal
	CompletedSteps []string
}

// Apply validates and executes a batch, then writes the audit record.
// The returned result is meaningful even when err is non-nil: it carries the
// partial-commit state for independent mode.
func (uc *ReconcileUseCase) Apply(ctx context.Context, batch entity.CorrectionBatch, appliedBy string, atomic bool) (*ReconcileResult, error) {
	if err := validateBatch(batch); err != nil {
		return &ReconcileResult{NewStock: map[string]decimal.Decimal{}}, err
	}

	if atomic {
		return uc.applyAtomic(ctx, batch, appliedBy)
	}
	return uc.applyIndependent(batch, appliedBy)
}

func validateBatch(batch entity.CorrectionBatch) error {
	if batch.Label == "" || len(batch.Steps) == 0 {
		return domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(batch.Steps))
	for _, s := range batch.Steps {
		if s.Slug == "" || s.StockItemID <= 0 || s.PurchaseOrderID <= 0 || seen[s.Slug] {
			return domain.ErrInvalidInput
		}
		seen[s.Slug] = true
	}
	return nil
}

func (uc *ReconcileUseCase) applyAtomic(ctx context.Context, batch entity.CorrectionBatch, appliedBy string) (*ReconcileResult, error) {
	result := &ReconcileResult{NewStock: map[string]decimal.Decimal{}}
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockItemRepository,
		poRepo repository.PurchaseOrderRepository,
		corrRepo repository.CorrectionRepository,
	) error {
		if err := runSteps(batch, stockRepo, poRepo, result); err != nil {
			return err
		}
		return corrRepo.Create(newAuditRecord(batch, result, appliedBy, true))
	})
	if err != nil {
		// Rolled back: nothing committed, regardless of how far we got.
		return &ReconcileResult{NewStock: map[string]decimal.Decimal{}}, err
	}
	return result, nil
}

func (uc *ReconcileUseCase) applyIndependent(batch entity.CorrectionBatch, appliedBy string) (*ReconcileResult, error) {
	result := &ReconcileResult{NewStock: map[string]decimal.Decimal{}}
	if err := runSteps(batch, uc.stockRepo, uc.poRepo, result); err != nil {
		return result, err
	}
	if err := uc.corrRepo.Create(newAuditRecord(batch, result, appliedBy, false)); err != nil {
		return result, fmt.Errorf("record correction: %w", err)
	}
	return result, nil
}

// runSteps executes the fixed mutation order: every stock read-modify-write
// first, then every purchase-order overwrite. CompletedSteps is appended
// after each committed write so a caller in independent mode can see exactly
// where a failure cut the batch.
func runSteps(
	batch entity.CorrectionBatch,
	stockRepo repository.StockItemRepository,
	poRepo repository.PurchaseOrderRepository,
	result *ReconcileResult,
) error {
	for _, step := range batch.Steps {
		// Absent rows read as zero stock; the write then establishes the
		// delta as the item's full quantity.
		item, err := stockRepo.Get(step.StockItemID)
		if err != nil {
			return err
		}
		newQty := item.CurrentStock.Add(step.Delta)
		if err := stockRepo.SetQuantity(step.StockItemID, newQty); err != nil {
			return err
		}
		result.NewStock[step.Slug] = newQty
		result.CompletedSteps = append(result.CompletedSteps, fmt.Sprintf("stock_item:%d", step.StockItemID))
	}
	for _, step := range batch.Steps {
		if err := poRepo.SetReceivedQty(step.PurchaseOrderID, step.StockItemID, step.TargetReceivedQty); err != nil {
			return err
		}
		result.CompletedSteps = append(result.CompletedSteps,
			fmt.Sprintf("purchase_order_item:%d/%d", step.PurchaseOrderID, step.StockItemID))
	}
	return nil
}

func newAuditRecord(batch entity.CorrectionBatch, result *ReconcileResult, appliedBy string, atomic bool) *entity.StockCorrection {
	return &entity.StockCorrection{
		ID:        uuid.New().String(),
		Label:     batch.Label,
		Steps:     batch.Steps,
		Results:   result.NewStock,
		Atomic:    atomic,
		AppliedBy: appliedBy,
		AppliedAt: time.Now(),
	}
}
