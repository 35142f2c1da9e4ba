package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/pharmacy"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/procurement"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// Ensure TxRunner implements the application-layer transaction ports.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ procurement.TxRunner = (*TxRunner)(nil)
var _ pharmacy.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, executes fn with repos bound to the tx and commits
// or rolls back. Used by stock reconciliation (atomic mode) and delivery receipt.
func (r *TxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	poRepo repository.PurchaseOrderRepository,
	corrRepo repository.CorrectionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockItemRepository(tx)
	poRepo := NewPurchaseOrderRepository(tx)
	corrRepo := NewCorrectionRepository(tx)

	if err := fn(stockRepo, poRepo, corrRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDispense starts a transaction with the repos prescription dispensing needs.
func (r *TxRunner) RunDispense(ctx context.Context, fn func(
	stockRepo repository.StockItemRepository,
	rxRepo repository.PrescriptionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stockRepo := NewStockItemRepository(tx)
	rxRepo := NewPrescriptionRepository(tx)

	if err := fn(stockRepo, rxRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
