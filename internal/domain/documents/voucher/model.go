// Package voucher provides cash vouchers: money received from or paid to
// a counterparty, always settling against its outstanding balance.
package voucher

import (
	"context"
	"time"

	"wakala/internal/core/apperror"
	"wakala/internal/core/entity"
	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
)

// Kind is the voucher direction.
type Kind string

const (
	// KindReceipt records money received by the agency
	KindReceipt Kind = "receipt"
	// KindPayment records money paid out by the agency
	KindPayment Kind = "payment"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindReceipt || k == KindPayment
}

// Voucher is a cash settlement document.
type Voucher struct {
	entity.BaseEntity

	EntityID   id.ID              `db:"entity_id" json:"entityId"`
	EntityKind counterparty.Kind  `db:"entity_kind" json:"entityKind"`
	EntityName string             `db:"entity_name" json:"entityName"`

	Kind     Kind          `db:"kind" json:"kind"`
	Amount   types.Money   `db:"amount" json:"amount"`
	Currency currency.Code `db:"currency" json:"currency"`

	Date time.Time `db:"doc_date" json:"date"`

	Note string `db:"note" json:"note,omitempty"`
}

// New creates a voucher dated now.
func New(entityID id.ID, entityKind counterparty.Kind, entityName string, kind Kind, amount types.Money, code currency.Code) *Voucher {
	return &Voucher{
		BaseEntity: entity.NewBaseEntity(),
		EntityID:   entityID,
		EntityKind: entityKind,
		EntityName: entityName,
		Kind:       kind,
		Amount:     amount,
		Currency:   code,
		Date:       time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (v *Voucher) Validate(ctx context.Context) error {
	if id.IsNil(v.EntityID) {
		return apperror.NewValidation("counterparty is required").
			WithDetail("field", "entityId")
	}
	if !v.EntityKind.Valid() {
		return apperror.NewValidation("invalid counterparty kind").
			WithDetail("field", "entityKind")
	}
	if !v.Kind.Valid() {
		return apperror.NewValidation("voucher kind must be receipt or payment").
			WithDetail("field", "kind")
	}
	if !v.Amount.IsPositive() {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}
	if !v.Currency.Valid() {
		return apperror.NewValidation("currency is not supported").
			WithDetail("field", "currency").
			WithDetail("value", string(v.Currency))
	}
	return nil
}
