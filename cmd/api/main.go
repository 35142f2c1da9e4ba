package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/auth"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/pharmacy"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/procurement"
	appstock "github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/usecase"
	infrapdf "github.com/rbgumti/nh-stock-billing-software-sub003/internal/infrastructure/pdf"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/infrastructure/postgres"
	httpRouter "github.com/rbgumti/nh-stock-billing-software-sub003/internal/interfaces/http"
	"github.com/rbgumti/nh-stock-billing-software-sub003/pkg/config"
	"github.com/rbgumti/nh-stock-billing-software-sub003/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	// Second pool on the elevated service role. Only the snapshot invoker
	// touches it.
	servicePool, err := postgres.NewPool(ctx, cfg.ServiceDB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL service connection")
	}
	defer servicePool.Close()

	userRepo := postgres.NewUserRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockRepo := postgres.NewStockItemRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	rxRepo := postgres.NewPrescriptionRepository(pool)
	corrRepo := postgres.NewCorrectionRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	salaryRepo := postgres.NewSalaryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	patientUC := usecase.NewPatientUseCase(patientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, snapshotRepo)
	payrollUC := usecase.NewPayrollUseCase(salaryRepo, cfg.Payroll.AccessCodeHash)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, snapshotRepo)
	procurementUC := procurement.NewProcurementUseCase(txRunner, poRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pharmacyUC := pharmacy.NewPharmacyUseCase(txRunner, rxRepo, patientRepo, stockRepo, pdfGenerator)

	reconcileUC := appstock.NewReconcileUseCase(txRunner, stockRepo, poRepo, corrRepo)
	snapshotInvoker := postgres.NewSnapshotInvoker(servicePool)
	snapshotUC := appstock.NewSnapshotUseCase(authUC, snapshotInvoker)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NH Stock & Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		PatientUC:       patientUC,
		SupplierUC:      supplierUC,
		StockUC:         stockUC,
		PayrollUC:       payrollUC,
		DashboardUC:     dashboardUC,
		ProcurementUC:   procurementUC,
		PharmacyUC:      pharmacyUC,
		ReconcileUC:     reconcileUC,
		SnapshotUC:      snapshotUC,
		CorrectionRepo:  corrRepo,
		JWTSecret:       cfg.JWT.Secret,
		ReconcileAtomic: cfg.Reconcile.Atomic,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
