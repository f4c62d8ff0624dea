// Package debts aggregates outstanding balances per counterparty, kept
// strictly per currency, with base-currency totals and aging labels for
// collection work.
package debts

import (
	"time"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
)

// Debt is one counterparty's outstanding position.
//
// Balances never mix currencies: a SAR sale and a YER receipt live in
// separate buckets, and only TotalBase rolls them up at the current rate.
// Positive means the other side owes money (the customer owes the agency,
// or the agency owes the supplier).
type Debt struct {
	EntityID id.ID  `json:"entityId"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`

	Balances map[currency.Code]types.Money `json:"balances"`

	// TotalBase is the sum of all buckets converted at the current rate.
	TotalBase types.Money `json:"totalBase"`

	// LastActivity is the newest document timestamp, falling back to the
	// opening balance date when no documents exist.
	LastActivity time.Time `json:"lastActivity"`

	Aging AgingStatus `json:"aging"`
}

// IsSettled reports whether every bucket is zero.
func (d *Debt) IsSettled() bool {
	for _, v := range d.Balances {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// AgingStatus labels how stale a debt is.
type AgingStatus string

const (
	AgingNew      AgingStatus = "new"
	AgingActive   AgingStatus = "active"
	AgingOverdue  AgingStatus = "overdue"
	AgingStagnant AgingStatus = "stagnant"
)

// AgingPolicy holds the day thresholds separating the aging buckets.
type AgingPolicy struct {
	NewDays     int
	ActiveDays  int
	OverdueDays int
}

// DefaultAgingPolicy matches the collection practice the agency runs on.
func DefaultAgingPolicy() AgingPolicy {
	return AgingPolicy{NewDays: 3, ActiveDays: 15, OverdueDays: 30}
}

// Classify returns the aging bucket for a debt last touched at the given
// instant, evaluated at now.
func (p AgingPolicy) Classify(lastActivity, now time.Time) AgingStatus {
	days := int(now.Sub(lastActivity).Hours() / 24)
	switch {
	case days < p.NewDays:
		return AgingNew
	case days < p.ActiveDays:
		return AgingActive
	case days < p.OverdueDays:
		return AgingOverdue
	default:
		return AgingStagnant
	}
}
