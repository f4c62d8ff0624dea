package handlers

import (
	"github.com/gin-gonic/gin"

	"wakala/internal/domain/alerts"
	"wakala/internal/domain/debts"
	"wakala/internal/domain/inventory"
	"wakala/internal/domain/ledger"
)

// ReportHandler serves the derived views: statements, debts, inventory
// and alerts. Everything here is computed from documents on demand.
type ReportHandler struct {
	BaseHandler

	ledger    *ledger.Service
	debts     *debts.Service
	inventory *inventory.Service
	alerts    *alerts.Service
}

// NewReportHandler creates a report handler.
func NewReportHandler(
	ledgerSvc *ledger.Service,
	debtsSvc *debts.Service,
	inventorySvc *inventory.Service,
	alertsSvc *alerts.Service,
) *ReportHandler {
	return &ReportHandler{
		ledger:    ledgerSvc,
		debts:     debtsSvc,
		inventory: inventorySvc,
		alerts:    alertsSvc,
	}
}

// Statement returns one counterparty's unified account history.
func (h *ReportHandler) Statement(c *gin.Context) {
	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	st, err := h.ledger.Statement(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, st)
}

// CustomerDebts returns the customer debt report, largest first.
func (h *ReportHandler) CustomerDebts(c *gin.Context) {
	report, err := h.debts.Customers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{
		"debts": report,
		"total": debts.TotalOutstanding(report),
	})
}

// SupplierDebts returns the supplier debt report, largest first.
func (h *ReportHandler) SupplierDebts(c *gin.Context) {
	report, err := h.debts.Suppliers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{
		"debts": report,
		"total": debts.TotalOutstanding(report),
	})
}

// InventoryLevels returns the current stock position per item type.
func (h *ReportHandler) InventoryLevels(c *gin.Context) {
	levels, err := h.inventory.Levels(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, levels)
}

// InventoryMovements returns one item type's movement log, newest first.
func (h *ReportHandler) InventoryMovements(c *gin.Context) {
	movements, err := h.inventory.Movements(c.Request.Context(), c.Param("itemType"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, movements)
}

// Alerts returns the current alert feed.
func (h *ReportHandler) Alerts(c *gin.Context) {
	feed, err := h.alerts.All(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, feed)
}
