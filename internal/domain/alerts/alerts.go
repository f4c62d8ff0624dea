// Package alerts derives operational warnings from the other engines:
// stock running out and debts going stale. Alerts are computed views,
// never stored.
package alerts

import (
	"context"
	"fmt"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/debts"
	"wakala/internal/domain/inventory"
)

// Kind names the alert category.
type Kind string

const (
	KindLowStock  Kind = "low_stock"
	KindStaleDebt Kind = "stale_debt"
)

// Severity orders alerts for display.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is one actionable warning.
type Alert struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`

	// EntityID points at the debtor for stale-debt alerts, nil otherwise.
	EntityID *id.ID `json:"entityId,omitempty"`

	// ItemType names the stock line for low-stock alerts.
	ItemType string `json:"itemType,omitempty"`
}

// FromInventory flags item types at or below the stock threshold.
// An empty line is critical, a low one a warning.
func FromInventory(levels []inventory.Level) []Alert {
	var out []Alert
	for _, l := range levels {
		if !l.LowStock {
			continue
		}
		a := Alert{
			Kind:     KindLowStock,
			Severity: SeverityWarning,
			ItemType: l.ItemType,
			Message:  fmt.Sprintf("%s stock is low: %d on hand", l.ItemType, l.OnHand),
		}
		if l.OnHand == 0 {
			a.Severity = SeverityCritical
			a.Message = fmt.Sprintf("%s is out of stock", l.ItemType)
		}
		out = append(out, a)
	}
	return out
}

// FromDebts flags overdue debtors whose base-currency total crosses the
// reminder threshold. Stagnant debts are critical regardless of size.
func FromDebts(report []debts.Debt, threshold types.Money) []Alert {
	var out []Alert
	for i := range report {
		d := &report[i]
		if d.IsSettled() {
			continue
		}

		switch d.Aging {
		case debts.AgingStagnant:
			eid := d.EntityID
			out = append(out, Alert{
				Kind:     KindStaleDebt,
				Severity: SeverityCritical,
				EntityID: &eid,
				Message:  fmt.Sprintf("%s has a stagnant debt of %s", d.Name, d.TotalBase),
			})
		case debts.AgingOverdue:
			if d.TotalBase.LessThan(threshold) {
				continue
			}
			eid := d.EntityID
			out = append(out, Alert{
				Kind:     KindStaleDebt,
				Severity: SeverityWarning,
				EntityID: &eid,
				Message:  fmt.Sprintf("%s is overdue with %s outstanding", d.Name, d.TotalBase),
			})
		}
	}
	return out
}

// Service assembles the full alert feed.
type Service struct {
	inventory *inventory.Service
	debts     *debts.Service
	threshold types.Money
}

// NewService creates an alerts service. The threshold is the minimum
// base-currency debt worth chasing.
func NewService(inv *inventory.Service, dbt *debts.Service, threshold types.Money) *Service {
	return &Service{inventory: inv, debts: dbt, threshold: threshold}
}

// All returns every current alert, stock first.
func (s *Service) All(ctx context.Context) ([]Alert, error) {
	levels, err := s.inventory.Levels(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory levels: %w", err)
	}
	customers, err := s.debts.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer debts: %w", err)
	}

	out := FromInventory(levels)
	out = append(out, FromDebts(customers, s.threshold)...)
	return out, nil
}
