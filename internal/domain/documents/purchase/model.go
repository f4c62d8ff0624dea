// Package purchase provides the purchase document: one inbound supply of
// an item type from a supplier, or its return.
package purchase

import (
	"context"
	"time"

	"wakala/internal/core/apperror"
	"wakala/internal/core/entity"
	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
)

// Purchase mirrors Sale on the supply side.
type Purchase struct {
	entity.BaseEntity

	SupplierID   id.ID  `db:"supplier_id" json:"supplierId"`
	SupplierName string `db:"supplier_name" json:"supplierName"`

	ItemType string `db:"item_type" json:"itemType"`
	Quantity int64  `db:"quantity" json:"quantity"`

	CostPrice types.Money `db:"cost_price" json:"costPrice"`
	TotalCost types.Money `db:"total_cost" json:"totalCost"`

	Currency currency.Code    `db:"currency" json:"currency"`
	Status   documents.Status `db:"status" json:"status"`

	// IsReturn marks a return to the supplier: stock leaves, balance reverses
	IsReturn bool `db:"is_return" json:"isReturn"`

	Date time.Time `db:"doc_date" json:"date"`

	Note string `db:"note" json:"note,omitempty"`
}

// New creates a purchase document dated now.
func New(supplierID id.ID, supplierName, itemType string, qty int64, costPrice types.Money, code currency.Code, status documents.Status) *Purchase {
	return &Purchase{
		BaseEntity:   entity.NewBaseEntity(),
		SupplierID:   supplierID,
		SupplierName: supplierName,
		ItemType:     itemType,
		Quantity:     qty,
		CostPrice:    costPrice,
		TotalCost:    costPrice.Mul(types.NewMoneyFromInt(qty)),
		Currency:     code,
		Status:       status,
		Date:         time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if id.IsNil(p.SupplierID) {
		return apperror.NewValidation("supplier is required").
			WithDetail("field", "supplierId")
	}
	if p.ItemType == "" {
		return apperror.NewValidation("item type is required").
			WithDetail("field", "itemType")
	}
	if p.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	if p.TotalCost.IsNegative() {
		return apperror.NewValidation("total cost must not be negative").
			WithDetail("field", "totalCost")
	}
	if !p.Currency.Valid() {
		return apperror.NewValidation("currency is not supported").
			WithDetail("field", "currency").
			WithDetail("value", string(p.Currency))
	}
	if !p.Status.Valid() {
		return apperror.NewValidation("invalid payment status").
			WithDetail("field", "status")
	}
	return nil
}
