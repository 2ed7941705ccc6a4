package router

import (
	"github.com/gin-gonic/gin"

	"billmitra/internal/domain"
	"billmitra/internal/handler"
	"billmitra/internal/middleware"
	"billmitra/internal/service"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Tenant   *handler.TenantHandler
	User     *handler.UserHandler
	Party    *handler.PartyHandler
	Product  *handler.ProductHandler
	Invoice  *handler.InvoiceHandler
	Purchase *handler.PurchaseHandler
	EWayBill *handler.EWayBillHandler
	Ledger   *handler.LedgerHandler
	Rental   *handler.RentalHandler
	ITR      *handler.ITRHandler
	Health   *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, tenantSvc service.TenantService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Tenant self-service
	tenant := protected.Group("/tenant")
	tenant.GET("", h.Tenant.Me)
	tenant.PUT("", middleware.RequireRole(domain.RoleAdmin), h.Tenant.Update)
	tenant.GET("/features", h.Tenant.Features)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Parties
	parties := protected.Group("/parties")
	parties.POST("", h.Party.Create)
	parties.GET("", h.Party.List)
	parties.GET("/:id", h.Party.GetByID)
	parties.PUT("/:id", h.Party.Update)
	parties.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Party.Delete)

	// Products
	products := protected.Group("/products")
	products.POST("", h.Product.Create)
	products.GET("", h.Product.List)
	products.GET("/margins", h.Product.Margins)
	products.GET("/:id", h.Product.GetByID)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Product.Delete)

	// Invoices and payments
	invoices := protected.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.GET("/:id/lines", h.Invoice.GetLines)
	invoices.POST("/:id/payments", h.Invoice.RecordPayment)

	// Purchases
	purchases := protected.Group("/purchases")
	purchases.POST("", h.Purchase.Create)
	purchases.GET("", h.Purchase.List)

	// E-way bills, gated on the industry flag
	ewayBills := protected.Group("/eway-bills")
	ewayBills.Use(middleware.RequireFeature(tenantSvc, func(f *domain.IndustryConfig) bool { return f.EnableEWayBill }))
	ewayBills.POST("", h.EWayBill.Generate)
	ewayBills.GET("", h.EWayBill.List)
	ewayBills.GET("/:id", h.EWayBill.GetByID)
	ewayBills.POST("/:id/cancel", h.EWayBill.Cancel)

	// Ledgers and exports
	ledgers := protected.Group("/ledgers")
	ledgers.GET("/party/:id", h.Ledger.PartyLedger)
	ledgers.GET("/party/:id/export", h.Ledger.ExportPartyLedgerCSV)
	ledgers.GET("/daybook", h.Ledger.DayBook)
	ledgers.GET("/daybook/export", h.Ledger.ExportDayBookXLSX)

	// Rentals, gated on the industry flag
	rentals := protected.Group("/rentals")
	rentals.Use(middleware.RequireFeature(tenantSvc, func(f *domain.IndustryConfig) bool { return f.EnableRentals }))
	rentals.POST("", h.Rental.Create)
	rentals.GET("", h.Rental.List)
	rentals.GET("/:id", h.Rental.GetByID)
	rentals.POST("/:id/return", h.Rental.Return)
	rentals.POST("/reminders", h.Rental.SendReminders)

	// Income tax computations
	itr := protected.Group("/itr")
	itr.POST("/compute", h.ITR.Compute)
	itr.POST("/compare-regimes", h.ITR.CompareRegimes)
	itr.POST("/advance-tax", h.ITR.AdvanceTax)
	itr.GET("", h.ITR.List)
	itr.GET("/:year", h.ITR.GetByYear)

	// Admin routes - cross-tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.GetByID)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
