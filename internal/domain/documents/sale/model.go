// Package sale provides the sale document: one outbound trade of an item
// type to a customer, or its return.
package sale

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

// Sale is immutable once recorded; corrections are separate return
// documents, never edits.
type Sale struct {
	entity.BaseEntity

	// CustomerID is nil for walk-in cash sales
	CustomerID *id.ID `db:"customer_id" json:"customerId,omitempty"`

	// CustomerName is denormalized for display and statements
	CustomerName string `db:"customer_name" json:"customerName"`

	// ItemType names the stocked variety sold
	ItemType string `db:"item_type" json:"itemType"`

	// Quantity in bundles
	Quantity int64 `db:"quantity" json:"quantity"`

	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`
	Total     types.Money `db:"total" json:"total"`

	Currency currency.Code    `db:"currency" json:"currency"`
	Status   documents.Status `db:"status" json:"status"`

	// IsReturn marks a customer return: stock re-enters, balance reverses
	IsReturn bool `db:"is_return" json:"isReturn"`

	// Date is the transaction instant (UTC)
	Date time.Time `db:"doc_date" json:"date"`

	Note string `db:"note" json:"note,omitempty"`
}

// New creates a sale document dated now.
func New(customerID *id.ID, customerName, itemType string, qty int64, unitPrice types.Money, code currency.Code, status documents.Status) *Sale {
	return &Sale{
		BaseEntity:   entity.NewBaseEntity(),
		CustomerID:   customerID,
		CustomerName: customerName,
		ItemType:     itemType,
		Quantity:     qty,
		UnitPrice:    unitPrice,
		Total:        unitPrice.Mul(types.NewMoneyFromInt(qty)),
		Currency:     code,
		Status:       status,
		Date:         time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if s.ItemType == "" {
		return apperror.NewValidation("item type is required").
			WithDetail("field", "itemType")
	}
	if s.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	if s.Total.IsNegative() {
		return apperror.NewValidation("total must not be negative").
			WithDetail("field", "total")
	}
	if !s.Currency.Valid() {
		return apperror.NewValidation("currency is not supported").
			WithDetail("field", "currency").
			WithDetail("value", string(s.Currency))
	}
	if !s.Status.Valid() {
		return apperror.NewValidation("invalid payment status").
			WithDetail("field", "status")
	}
	if s.Status == documents.StatusCredit && s.CustomerID == nil {
		return apperror.NewValidation("credit sale requires a customer").
			WithDetail("field", "customerId")
	}
	return nil
}
