package handlers

import (
	"github.com/gin-gonic/gin"

	"wakala/internal/core/id"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/catalogs/item"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/expense"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
	"wakala/internal/infrastructure/http/v1/dto"
)

// DocumentHandler serves the trade documents: sales, purchases, vouchers
// and expenses, plus the item-type catalog they reference.
type DocumentHandler struct {
	BaseHandler

	sales     *sale.Service
	purchases *purchase.Service
	vouchers  *voucher.Service
	expenses  *expense.Service
	items     *item.Service
}

// NewDocumentHandler creates a document handler.
func NewDocumentHandler(
	sales *sale.Service,
	purchases *purchase.Service,
	vouchers *voucher.Service,
	expenses *expense.Service,
	items *item.Service,
) *DocumentHandler {
	return &DocumentHandler{
		sales:     sales,
		purchases: purchases,
		vouchers:  vouchers,
		expenses:  expenses,
		items:     items,
	}
}

// --- Sales ---

// ListSales returns all sales, newest first.
func (h *DocumentHandler) ListSales(c *gin.Context) {
	out, err := h.sales.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// CreateSale records a sale or a customer return.
func (h *DocumentHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	unitPrice, ok := h.ParseMoney(c, "unitPrice", req.UnitPrice)
	if !ok {
		return
	}
	at, ok := h.ParseDate(c, req.Date)
	if !ok {
		return
	}

	var customerID *id.ID
	if req.CustomerID != "" {
		parsed, err := id.Parse(req.CustomerID)
		if err != nil {
			h.Error(c, err)
			return
		}
		customerID = &parsed
	}

	doc := sale.New(customerID, req.CustomerName, req.ItemType, req.Quantity,
		unitPrice, currency.Code(req.Currency), documents.Status(req.Status))
	doc.IsReturn = req.IsReturn
	doc.Date = at
	doc.Note = req.Note

	if err := h.sales.Record(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, doc.ID)
}

// DeleteSale removes a sale document.
func (h *DocumentHandler) DeleteSale(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.sales.Remove(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// --- Purchases ---

// ListPurchases returns all purchases, newest first.
func (h *DocumentHandler) ListPurchases(c *gin.Context) {
	out, err := h.purchases.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// CreatePurchase records a purchase or a return to the supplier.
func (h *DocumentHandler) CreatePurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	costPrice, ok := h.ParseMoney(c, "costPrice", req.CostPrice)
	if !ok {
		return
	}
	at, ok := h.ParseDate(c, req.Date)
	if !ok {
		return
	}
	supplierID, err := id.Parse(req.SupplierID)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc := purchase.New(supplierID, req.SupplierName, req.ItemType, req.Quantity,
		costPrice, currency.Code(req.Currency), documents.Status(req.Status))
	doc.IsReturn = req.IsReturn
	doc.Date = at
	doc.Note = req.Note

	if err := h.purchases.Record(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, doc.ID)
}

// DeletePurchase removes a purchase document.
func (h *DocumentHandler) DeletePurchase(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.purchases.Remove(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// --- Vouchers ---

// ListVouchers returns all vouchers, newest first.
func (h *DocumentHandler) ListVouchers(c *gin.Context) {
	out, err := h.vouchers.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// CreateVoucher records a receipt or payment voucher.
func (h *DocumentHandler) CreateVoucher(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if !h.BindJSON(c, &req) {
		return
	}

	amount, ok := h.ParseMoney(c, "amount", req.Amount)
	if !ok {
		return
	}
	at, ok := h.ParseDate(c, req.Date)
	if !ok {
		return
	}
	entityID, err := id.Parse(req.EntityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc := voucher.New(entityID, counterparty.Kind(req.EntityKind), req.EntityName,
		voucher.Kind(req.Kind), amount, currency.Code(req.Currency))
	doc.Date = at
	doc.Note = req.Note

	if err := h.vouchers.Record(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, doc.ID)
}

// DeleteVoucher removes a voucher.
func (h *DocumentHandler) DeleteVoucher(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.vouchers.Remove(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// --- Expenses ---

// ListExpenses returns all expenses, newest first.
func (h *DocumentHandler) ListExpenses(c *gin.Context) {
	out, err := h.expenses.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// CreateExpense records an expense.
func (h *DocumentHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	amount, ok := h.ParseMoney(c, "amount", req.Amount)
	if !ok {
		return
	}
	at, ok := h.ParseDate(c, req.Date)
	if !ok {
		return
	}

	doc := expense.New(req.Category, amount, currency.Code(req.Currency), req.Description)
	doc.Recurring = req.Recurring
	if req.Frequency != "" {
		doc.Frequency = expense.Frequency(req.Frequency)
	}
	doc.Date = at

	if err := h.expenses.Record(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, doc.ID)
}

// DeleteExpense removes an expense.
func (h *DocumentHandler) DeleteExpense(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.expenses.Remove(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// ListExpenseCategories returns the expense category names.
func (h *DocumentHandler) ListExpenseCategories(c *gin.Context) {
	out, err := h.expenses.Categories(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// CreateExpenseCategory adds a category name.
func (h *DocumentHandler) CreateExpenseCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if err := h.expenses.AddCategory(c.Request.Context(), req.Name); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "category added")
}

// DeleteExpenseCategory removes a category name.
func (h *DocumentHandler) DeleteExpenseCategory(c *gin.Context) {
	if err := h.expenses.RemoveCategory(c.Request.Context(), c.Param("name")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// --- Item types ---

// ListItemTypes returns the item-type names.
func (h *DocumentHandler) ListItemTypes(c *gin.Context) {
	out, err := h.items.Names(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, out)
}

// CreateItemType adds an item type.
func (h *DocumentHandler) CreateItemType(c *gin.Context) {
	var req dto.CreateItemTypeRequest
	if !h.BindJSON(c, &req) {
		return
	}
	it, err := h.items.Add(c.Request.Context(), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, it.ID)
}

// DeleteItemType removes an item type by name.
func (h *DocumentHandler) DeleteItemType(c *gin.Context) {
	if err := h.items.Remove(c.Request.Context(), c.Param("name")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
