package dto

// CreateSaleRequest records a sale or a customer return.
type CreateSaleRequest struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	ItemType     string `json:"itemType" binding:"required"`
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
	UnitPrice    string `json:"unitPrice" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=cash credit"`
	IsReturn     bool   `json:"isReturn"`
	Date         string `json:"date"`
	Note         string `json:"note"`
}

// CreatePurchaseRequest records a purchase or a return to the supplier.
type CreatePurchaseRequest struct {
	SupplierID   string `json:"supplierId" binding:"required"`
	SupplierName string `json:"supplierName"`
	ItemType     string `json:"itemType" binding:"required"`
	Quantity     int64  `json:"quantity" binding:"required,gt=0"`
	CostPrice    string `json:"costPrice" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=cash credit"`
	IsReturn     bool   `json:"isReturn"`
	Date         string `json:"date"`
	Note         string `json:"note"`
}

// CreateVoucherRequest records a receipt or payment voucher.
type CreateVoucherRequest struct {
	EntityID   string `json:"entityId" binding:"required"`
	EntityKind string `json:"entityKind" binding:"required,oneof=customer supplier"`
	EntityName string `json:"entityName"`
	Kind       string `json:"kind" binding:"required,oneof=receipt payment"`
	Amount     string `json:"amount" binding:"required"`
	Currency   string `json:"currency" binding:"required"`
	Date       string `json:"date"`
	Note       string `json:"note"`
}

// CreateExpenseRequest records an expense.
type CreateExpenseRequest struct {
	Category    string `json:"category" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Description string `json:"description"`
	Recurring   bool   `json:"recurring"`
	Frequency   string `json:"frequency"`
	Date        string `json:"date"`
}

// CreateItemTypeRequest adds an item type to the catalog.
type CreateItemTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategoryRequest adds an expense category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
