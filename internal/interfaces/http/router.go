package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/auth"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/pharmacy"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/procurement"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/usecase"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	PatientUC       *usecase.PatientUseCase
	SupplierUC      *usecase.SupplierUseCase
	StockUC         *usecase.StockUseCase
	PayrollUC       *usecase.PayrollUseCase
	DashboardUC     *usecase.DashboardUseCase
	ProcurementUC   *procurement.ProcurementUseCase
	PharmacyUC      *pharmacy.PharmacyUseCase
	ReconcileUC     *stock.ReconcileUseCase
	SnapshotUC      *stock.SnapshotUseCase
	CorrectionRepo  repository.CorrectionRepository
	JWTSecret       string
	ReconcileAtomic bool
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(CORSMiddleware())

	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Legacy repair endpoints: any method runs them, auth handled inside.
	correctionHandler := NewCorrectionHandler(deps.ReconcileUC, deps.CorrectionRepo, deps.ReconcileAtomic)
	app.All("/api/stock/corrections/replay-known", correctionHandler.ReplayKnown)
	snapshotHandler := NewSnapshotHandler(deps.SnapshotUC, deps.StockUC)
	app.All("/api/stock/snapshots/capture", snapshotHandler.Capture)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Patients
	patients := protected.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Put("/:id", patientHandler.Update)
	patients.Delete("/:id", patientHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Stock catalogue + snapshots + corrections audit
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/items", stockHandler.Create)
	stockGroup.Get("/items", stockHandler.List)
	stockGroup.Get("/items/:id", stockHandler.GetByID)
	stockGroup.Put("/items/:id", stockHandler.Update)
	stockGroup.Get("/snapshots", snapshotHandler.List)
	stockGroup.Get("/corrections", correctionHandler.List)
	stockGroup.Post("/corrections", RequireRole(entity.RoleAdmin), correctionHandler.Apply)

	// Purchase orders
	orders := protected.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.ProcurementUC)
	orders.Post("/", poHandler.Create)
	orders.Get("/", poHandler.List)
	orders.Get("/:id", poHandler.GetByID)
	orders.Post("/:id/receive", poHandler.Receive)

	// Prescriptions (issuing and dispensing need pharmacist or admin)
	rx := protected.Group("/prescriptions")
	rxHandler := NewPrescriptionHandler(deps.PharmacyUC)
	rx.Post("/", RequireRole(entity.RoleAdmin, entity.RolePharmacist), rxHandler.Create)
	rx.Get("/", rxHandler.ListByPatient)
	rx.Get("/:id", rxHandler.GetByID)
	rx.Get("/:id/pdf", rxHandler.Printout)
	rx.Post("/:id/dispense", RequireRole(entity.RoleAdmin, entity.RolePharmacist), rxHandler.Dispense)
	rx.Post("/:id/cancel", RequireRole(entity.RoleAdmin, entity.RolePharmacist), rxHandler.Cancel)

	// Payroll (admin only; access code checked per request)
	payroll := protected.Group("/payroll", RequireRole(entity.RoleAdmin))
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	payroll.Post("/salaries", payrollHandler.ListSalaries)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
