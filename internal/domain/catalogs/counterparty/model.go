// Package counterparty provides the catalog of business partners:
// customers the agency sells to and suppliers it buys from.
package counterparty

import (
	"context"
	"regexp"
	"time"

	"wakala/internal/core/apperror"
	"wakala/internal/core/entity"
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
)

var phoneRE = regexp.MustCompile(`^\+?[0-9\s-]{6,20}$`)

// Kind defines which side of the trade the counterparty sits on.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindSupplier Kind = "supplier"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindCustomer || k == KindSupplier
}

// Counterparty represents a customer or supplier.
//
// The opening balance is a synthetic ledger entry for debt that predates
// the system's own history: fixed at creation with a user-supplied
// backdate, changed only through an explicit edit.
type Counterparty struct {
	entity.Catalog

	// Kind is customer or supplier
	Kind Kind `db:"kind" json:"kind"`

	// Phone is the primary contact number
	Phone string `db:"phone" json:"phone,omitempty"`

	// Address is a free-form location note
	Address string `db:"address" json:"address,omitempty"`

	// Category groups suppliers by sourcing region (unused for customers)
	Category string `db:"category" json:"category,omitempty"`

	// OpeningBalance is the pre-history debt. Positive means the
	// counterparty owes the agency. Nil means no opening entry.
	OpeningBalance *types.Money `db:"opening_balance" json:"openingBalance,omitempty"`

	// OpeningCurrency denominates the opening balance
	OpeningCurrency currency.Code `db:"opening_currency" json:"openingCurrency,omitempty"`

	// OpeningDate is the user-supplied backdate of the opening entry
	OpeningDate time.Time `db:"opening_date" json:"openingDate,omitempty"`

	// OpeningNote is shown as the opening entry's description
	OpeningNote string `db:"opening_note" json:"openingNote,omitempty"`
}

// New creates a counterparty with required fields.
func New(code, name string, kind Kind) *Counterparty {
	return &Counterparty{
		Catalog: entity.NewCatalog(code, name),
		Kind:    kind,
	}
}

// SetOpeningBalance fixes the opening entry. A zero date defaults to now.
func (c *Counterparty) SetOpeningBalance(amount types.Money, code currency.Code, at time.Time, note string) {
	c.OpeningBalance = &amount
	c.OpeningCurrency = code
	if at.IsZero() {
		at = time.Now()
	}
	c.OpeningDate = at
	c.OpeningNote = note
}

// HasOpeningBalance reports whether a non-zero opening entry exists.
func (c *Counterparty) HasOpeningBalance() bool {
	return c.OpeningBalance != nil && !c.OpeningBalance.IsZero()
}

// Validate implements entity.Validatable.
func (c *Counterparty) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !c.Kind.Valid() {
		return apperror.NewValidation("invalid counterparty kind").
			WithDetail("field", "kind").
			WithDetail("value", string(c.Kind))
	}

	if c.Phone != "" && !phoneRE.MatchString(c.Phone) {
		return apperror.NewValidation("invalid phone format").
			WithDetail("field", "phone")
	}

	if c.OpeningBalance != nil {
		if !c.OpeningCurrency.Valid() {
			return apperror.NewValidation("opening balance currency is not supported").
				WithDetail("field", "openingCurrency").
				WithDetail("value", string(c.OpeningCurrency))
		}
	}

	return nil
}
