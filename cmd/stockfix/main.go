// stockfix replays the known PO #74 receipt correction against the store,
// the same batch the HTTP replay endpoint runs. Meant for operators who want
// the repair applied from a shell with the outcome in the terminal.
//
// Usage: go run ./cmd/stockfix [-atomic] [-applied-by name]
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/infrastructure/postgres"
	"github.com/rbgumti/nh-stock-billing-software-sub003/pkg/config"
	"github.com/rbgumti/nh-stock-billing-software-sub003/pkg/logger"
)

func main() {
	atomic := flag.Bool("atomic", false, "run the batch inside one transaction instead of independent statements")
	appliedBy := flag.String("applied-by", "stockfix-cli", "who to record in the correction audit trail")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockItemRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	corrRepo := postgres.NewCorrectionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	uc := stock.NewReconcileUseCase(txRunner, stockRepo, poRepo, corrRepo)
	batch := stock.PO74ReceiptFix()

	log.Info().
		Str("label", batch.Label).
		Int("steps", len(batch.Steps)).
		Bool("atomic", *atomic).
		Msg("applying correction batch")

	result, err := uc.Apply(ctx, batch, *appliedBy, *atomic)
	if err != nil {
		log.Error().
			Err(err).
			Strs("completed_steps", result.CompletedSteps).
			Msg("correction failed")
		os.Exit(1)
	}

	for slug, qty := range result.NewStock {
		log.Info().Str("item", slug).Str("new_stock", qty.String()).Msg("stock corrected")
	}
	log.Info().Msg("correction applied")
}
