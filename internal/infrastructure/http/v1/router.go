// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"wakala/internal/domain/alerts"
	"wakala/internal/domain/backup"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/catalogs/item"
	"wakala/internal/domain/closing"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/debts"
	"wakala/internal/domain/documents/expense"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
	"wakala/internal/domain/inventory"
	"wakala/internal/domain/ledger"
	"wakala/internal/infrastructure/http/v1/handlers"
	"wakala/internal/infrastructure/http/v1/middleware"
	"wakala/internal/infrastructure/storage/postgres"
	"wakala/pkg/logger"
)

// RouterConfig carries the wired services into the router.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	Counterparties *counterparty.Service
	Items          *item.Service
	Sales          *sale.Service
	Purchases      *purchase.Service
	Vouchers       *voucher.Service
	Expenses       *expense.Service
	Rates          *currency.Service
	Ledger         *ledger.Service
	Debts          *debts.Service
	Inventory      *inventory.Service
	Closing        *closing.Service
	Alerts         *alerts.Service
	Backup         *backup.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	api := router.Group("/api/v1")
	{
		registerCatalogRoutes(api, cfg)
		registerDocumentRoutes(api, cfg)
		registerReportRoutes(api, cfg)
		registerClosingRoutes(api, cfg)
		registerBackupRoutes(api, cfg)
	}

	return router
}

func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	cpHandler := handlers.NewCounterpartyHandler(cfg.Counterparties)

	customers := rg.Group("/customers")
	{
		customers.GET("", cpHandler.ListCustomers)
		customers.POST("", cpHandler.Create)
	}
	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", cpHandler.ListSuppliers)
		suppliers.POST("", cpHandler.Create)
	}
	counterparties := rg.Group("/counterparties")
	{
		counterparties.GET("/:id", cpHandler.Get)
		counterparties.PUT("/:id", cpHandler.Update)
		counterparties.DELETE("/:id", cpHandler.Delete)
	}
}

func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docHandler := handlers.NewDocumentHandler(cfg.Sales, cfg.Purchases, cfg.Vouchers, cfg.Expenses, cfg.Items)

	sales := rg.Group("/sales")
	{
		sales.GET("", docHandler.ListSales)
		sales.POST("", docHandler.CreateSale)
		sales.DELETE("/:id", docHandler.DeleteSale)
	}
	purchases := rg.Group("/purchases")
	{
		purchases.GET("", docHandler.ListPurchases)
		purchases.POST("", docHandler.CreatePurchase)
		purchases.DELETE("/:id", docHandler.DeletePurchase)
	}
	vouchers := rg.Group("/vouchers")
	{
		vouchers.GET("", docHandler.ListVouchers)
		vouchers.POST("", docHandler.CreateVoucher)
		vouchers.DELETE("/:id", docHandler.DeleteVoucher)
	}
	expenses := rg.Group("/expenses")
	{
		expenses.GET("", docHandler.ListExpenses)
		expenses.POST("", docHandler.CreateExpense)
		expenses.DELETE("/:id", docHandler.DeleteExpense)
		expenses.GET("/categories", docHandler.ListExpenseCategories)
		expenses.POST("/categories", docHandler.CreateExpenseCategory)
		expenses.DELETE("/categories/:name", docHandler.DeleteExpenseCategory)
	}
	items := rg.Group("/item-types")
	{
		items.GET("", docHandler.ListItemTypes)
		items.POST("", docHandler.CreateItemType)
		items.DELETE("/:name", docHandler.DeleteItemType)
	}

	rateHandler := handlers.NewRateHandler(cfg.Rates)
	rates := rg.Group("/rates")
	{
		rates.GET("", rateHandler.History)
		rates.POST("", rateHandler.Record)
	}
}

func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	reportHandler := handlers.NewReportHandler(cfg.Ledger, cfg.Debts, cfg.Inventory, cfg.Alerts)

	rg.GET("/counterparties/:id/statement", reportHandler.Statement)

	reports := rg.Group("/reports")
	{
		reports.GET("/debts/customers", reportHandler.CustomerDebts)
		reports.GET("/debts/suppliers", reportHandler.SupplierDebts)
		reports.GET("/inventory", reportHandler.InventoryLevels)
		reports.GET("/inventory/:itemType/movements", reportHandler.InventoryMovements)
		reports.GET("/alerts", reportHandler.Alerts)
	}
}

func registerClosingRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	closingHandler := handlers.NewClosingHandler(cfg.Closing)

	closings := rg.Group("/closings")
	{
		closings.GET("/summary", closingHandler.Summary)
		closings.POST("", closingHandler.Finalize)
		closings.GET("", closingHandler.History)
	}
}

func registerBackupRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	backupHandler := handlers.NewBackupHandler(cfg.Backup)

	backups := rg.Group("/backup")
	{
		backups.GET("/export", backupHandler.Export)
		backups.POST("/import", backupHandler.Restore)
	}
}
