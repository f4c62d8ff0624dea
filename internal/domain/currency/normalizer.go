package currency

import (
	"time"

	"wakala/internal/core/types"
)

// Normalizer converts amounts into the base reporting currency.
//
// It is a pure value over an immutable history snapshot: build one per
// computation, never share one across history mutations.
type Normalizer struct {
	history  History
	fallback Rate
}

// NewNormalizer creates a Normalizer over a history snapshot.
// The fallback rate is used only when the history is empty; it comes from
// configuration, not from this package.
func NewNormalizer(history History, fallback Rate) Normalizer {
	return Normalizer{history: history, fallback: fallback}
}

// Current returns the rate snapshot in effect now.
func (n Normalizer) Current() Rate {
	if r, ok := n.history.Current(); ok {
		return r
	}
	return n.fallback
}

// ToBase converts amount using the current rate.
func (n Normalizer) ToBase(amount types.Money, code Code) types.Money {
	if code.IsBase() {
		return amount
	}
	return amount.Mul(n.Current().For(code))
}

// ToBaseAt converts amount using the rate in effect on the civil day of at.
// A day with no snapshot falls back to the current rate: a known
// imprecision, preserved deliberately over nearest-date guessing.
func (n Normalizer) ToBaseAt(amount types.Money, code Code, at time.Time) types.Money {
	if code.IsBase() {
		return amount
	}
	return amount.Mul(n.RateAt(code, at))
}

// RateAt returns the per-unit rate used for a conversion dated at.
func (n Normalizer) RateAt(code Code, at time.Time) types.Money {
	if code.IsBase() {
		return types.NewMoneyFromInt(1)
	}
	if r, ok := n.history.At(types.CivilDateOf(at)); ok {
		return r.For(code)
	}
	return n.Current().For(code)
}
