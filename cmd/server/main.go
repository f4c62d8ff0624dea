// Package main is the entry point for the wakala API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wakala/internal/config"
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
	v1 "wakala/internal/infrastructure/http/v1"
	"wakala/internal/infrastructure/storage/postgres"
	"wakala/pkg/logger"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Env == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting wakala server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txm := postgres.NewTxManager(pool)

	// --- Repositories ---
	counterpartyRepo := postgres.NewCounterpartyRepo(txm)
	itemRepo := postgres.NewItemRepo(txm)
	saleRepo := postgres.NewSaleRepo(txm)
	purchaseRepo := postgres.NewPurchaseRepo(txm)
	voucherRepo := postgres.NewVoucherRepo(txm)
	expenseRepo := postgres.NewExpenseRepo(txm)
	rateRepo := postgres.NewRateRepo(txm)
	closingRepo := postgres.NewClosingRepo(txm)

	// --- Services ---
	rateSvc := currency.NewService(rateRepo, cfg.Engine.DefaultSARRate, cfg.Engine.DefaultOMRRate)
	counterpartySvc := counterparty.NewService(counterpartyRepo)
	itemSvc := item.NewService(itemRepo)
	saleSvc := sale.NewService(saleRepo)
	purchaseSvc := purchase.NewService(purchaseRepo)
	voucherSvc := voucher.NewService(voucherRepo)
	expenseSvc := expense.NewService(expenseRepo)

	ledgerSvc := ledger.NewService(counterpartyRepo, saleRepo, purchaseRepo, voucherRepo, rateSvc)
	debtsSvc := debts.NewService(counterpartyRepo, saleRepo, purchaseRepo, voucherRepo, rateSvc, debts.AgingPolicy{
		NewDays:     cfg.Engine.AgingNewDays,
		ActiveDays:  cfg.Engine.AgingActiveDays,
		OverdueDays: cfg.Engine.AgingOverdueDays,
	})
	inventorySvc := inventory.NewService(itemRepo, purchaseRepo, saleRepo, cfg.Engine.LowStockThreshold)
	closingSvc := closing.NewService(closingRepo, saleRepo, purchaseRepo, expenseRepo, voucherRepo, rateSvc)
	alertsSvc := alerts.NewService(inventorySvc, debtsSvc, cfg.Engine.ReminderThreshold)

	codec, err := backup.NewCodec()
	if err != nil {
		log.Fatalw("failed to initialize backup codec", "error", err)
	}
	backupSvc := backup.NewService(codec, counterpartyRepo, itemRepo, saleRepo, purchaseRepo, voucherRepo, expenseRepo, rateRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:   pool,
		Logger: log,

		Counterparties: counterpartySvc,
		Items:          itemSvc,
		Sales:          saleSvc,
		Purchases:      purchaseSvc,
		Vouchers:       voucherSvc,
		Expenses:       expenseSvc,
		Rates:          rateSvc,
		Ledger:         ledgerSvc,
		Debts:          debtsSvc,
		Inventory:      inventorySvc,
		Closing:        closingSvc,
		Alerts:         alertsSvc,
		Backup:         backupSvc,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "port", cfg.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
