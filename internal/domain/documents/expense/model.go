// Package expense provides expense documents: operating costs that leave
// the cash box without touching counterparty balances or stock.
package expense

import (
	"context"
	"time"

	"wakala/internal/core/apperror"
	"wakala/internal/core/entity"
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
)

// Frequency describes how a recurring expense repeats.
type Frequency string

const (
	FrequencyNone    Frequency = "none"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyNone, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Expense is a standalone cost document.
type Expense struct {
	entity.BaseEntity

	Category    string        `db:"category" json:"category"`
	Amount      types.Money   `db:"amount" json:"amount"`
	Currency    currency.Code `db:"currency" json:"currency"`
	Description string        `db:"description" json:"description,omitempty"`

	Recurring bool      `db:"recurring" json:"recurring"`
	Frequency Frequency `db:"frequency" json:"frequency"`

	Date time.Time `db:"doc_date" json:"date"`
}

// New creates an expense dated now.
func New(category string, amount types.Money, code currency.Code, description string) *Expense {
	return &Expense{
		BaseEntity:  entity.NewBaseEntity(),
		Category:    category,
		Amount:      amount,
		Currency:    code,
		Description: description,
		Frequency:   FrequencyNone,
		Date:        time.Now().UTC(),
	}
}

// Validate implements entity.Validatable.
func (e *Expense) Validate(ctx context.Context) error {
	if e.Category == "" {
		return apperror.NewValidation("category is required").
			WithDetail("field", "category")
	}
	if e.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").
			WithDetail("field", "amount")
	}
	if !e.Currency.Valid() {
		return apperror.NewValidation("currency is not supported").
			WithDetail("field", "currency").
			WithDetail("value", string(e.Currency))
	}
	if e.Recurring && !e.Frequency.Valid() {
		return apperror.NewValidation("invalid recurrence frequency").
			WithDetail("field", "frequency")
	}
	return nil
}
