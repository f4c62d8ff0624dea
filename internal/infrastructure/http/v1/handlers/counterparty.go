package handlers

import (
	"github.com/gin-gonic/gin"

	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/infrastructure/http/v1/dto"
)

// CounterpartyHandler serves the customer and supplier catalog.
type CounterpartyHandler struct {
	BaseHandler
	svc *counterparty.Service
}

// NewCounterpartyHandler creates a counterparty handler.
func NewCounterpartyHandler(svc *counterparty.Service) *CounterpartyHandler {
	return &CounterpartyHandler{svc: svc}
}

// ListCustomers returns all customers.
func (h *CounterpartyHandler) ListCustomers(c *gin.Context) {
	out, err := h.svc.Customers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// ListSuppliers returns all suppliers.
func (h *CounterpartyHandler) ListSuppliers(c *gin.Context) {
	out, err := h.svc.Suppliers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// Get returns one counterparty.
func (h *CounterpartyHandler) Get(c *gin.Context) {
	cpID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cp, err := h.svc.Get(c.Request.Context(), cpID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cp)
}

// Create registers a customer or supplier.
func (h *CounterpartyHandler) Create(c *gin.Context) {
	var req dto.CreateCounterpartyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cp := counterparty.New("", req.Name, counterparty.Kind(req.Kind))
	cp.Phone = req.Phone
	cp.Address = req.Address
	cp.Category = req.Category

	if !h.applyOpening(c, cp, req.OpeningBalance, req.OpeningCurrency, req.OpeningDate, req.OpeningNote) {
		return
	}

	if err := h.svc.Create(c.Request.Context(), cp); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, cp.ID)
}

// Update edits a counterparty, including its opening balance.
func (h *CounterpartyHandler) Update(c *gin.Context) {
	cpID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCounterpartyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cp, err := h.svc.Get(c.Request.Context(), cpID)
	if err != nil {
		h.Error(c, err)
		return
	}

	cp.Name = req.Name
	cp.Version = req.Version
	cp.Phone = req.Phone
	cp.Address = req.Address
	cp.Category = req.Category

	if !h.applyOpening(c, cp, req.OpeningBalance, req.OpeningCurrency, req.OpeningDate, req.OpeningNote) {
		return
	}

	if err := h.svc.Update(c.Request.Context(), cp); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cp)
}

// Delete removes a counterparty and its documents.
func (h *CounterpartyHandler) Delete(c *gin.Context) {
	cpID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), cpID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CounterpartyHandler) applyOpening(c *gin.Context, cp *counterparty.Counterparty, balance *string, code, date, note string) bool {
	if balance == nil {
		return true
	}

	amount, ok := h.ParseMoney(c, "openingBalance", *balance)
	if !ok {
		return false
	}
	at, ok := h.ParseDate(c, date)
	if !ok {
		return false
	}
	if code == "" {
		code = string(currency.Base())
	}

	cp.SetOpeningBalance(amount, currency.Code(code), at, note)
	return true
}
