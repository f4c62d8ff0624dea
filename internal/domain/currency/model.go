// Package currency provides the supported currency codes, the dated
// exchange-rate history and conversion into the base reporting currency.
package currency

import (
	"context"
	"time"

	"wakala/internal/core/apperror"
	"wakala/internal/core/entity"
	"wakala/internal/core/types"
)

// Code identifies one of the three supported currencies.
type Code string

const (
	// YER is the base reporting currency; every aggregate rolls up to it.
	YER Code = "YER"
	SAR Code = "SAR"
	OMR Code = "OMR"
)

// Base returns the base reporting currency.
func Base() Code { return YER }

// Codes lists all supported currencies, base first.
func Codes() []Code { return []Code{YER, SAR, OMR} }

// Valid reports whether c is a supported code.
func (c Code) Valid() bool {
	switch c {
	case YER, SAR, OMR:
		return true
	}
	return false
}

// IsBase reports whether c is the base currency.
func (c Code) IsBase() bool { return c == YER }

// Rate is one exchange-rate snapshot: how many base units one SAR/OMR
// buys on the given day. The base currency is definitionally 1.
type Rate struct {
	entity.BaseEntity

	SAR  types.Money     `db:"sar_rate" json:"sar"`
	OMR  types.Money     `db:"omr_rate" json:"omr"`
	Date types.CivilDate `db:"rate_date" json:"date"`
}

// NewRate creates a snapshot dated at the given instant's civil day.
func NewRate(sar, omr types.Money, at time.Time) Rate {
	return Rate{
		BaseEntity: entity.NewBaseEntity(),
		SAR:        sar,
		OMR:        omr,
		Date:       types.CivilDateOf(at),
	}
}

// For returns the rate for a single code. Base is 1.
func (r Rate) For(code Code) types.Money {
	switch code {
	case SAR:
		return r.SAR
	case OMR:
		return r.OMR
	default:
		return types.NewMoneyFromInt(1)
	}
}

// Validate implements entity.Validatable.
func (r *Rate) Validate(ctx context.Context) error {
	if !r.SAR.IsPositive() {
		return apperror.NewValidation("SAR rate must be positive").
			WithDetail("field", "sar")
	}
	if !r.OMR.IsPositive() {
		return apperror.NewValidation("OMR rate must be positive").
			WithDetail("field", "omr")
	}
	return nil
}

// History is the rate timeline, newest first (insertion order from the
// persistence layer). The current rate is the first element.
type History []Rate

// Current returns the newest snapshot and true, or false when empty.
func (h History) Current() (Rate, bool) {
	if len(h) == 0 {
		return Rate{}, false
	}
	return h[0], true
}

// At returns the snapshot whose civil date matches day exactly.
// No nearest-date search and no interpolation: rates are agency-set once
// per day, and a day without an entry deliberately falls back to the
// current rate at the caller.
func (h History) At(day types.CivilDate) (Rate, bool) {
	for _, r := range h {
		if r.Date.Equal(day) {
			return r, true
		}
	}
	return Rate{}, false
}
