// Package closing computes the end-of-day cash reconciliation: what the
// drawer should hold against what it actually holds.
package closing

import (
	"context"

	"wakala/internal/core/apperror"
	"wakala/internal/core/entity"
	"wakala/internal/core/types"
)

// Summary is the derived picture of one business day, every figure in the
// base currency at the current rate.
type Summary struct {
	Day types.CivilDate `json:"day"`

	// CashIn is cash sales plus receipt vouchers.
	CashIn types.Money `json:"cashIn"`

	// CashOut is cash purchases plus expenses plus payment vouchers.
	CashOut types.Money `json:"cashOut"`

	// ExpectedCash is what the drawer should hold: CashIn minus CashOut.
	ExpectedCash types.Money `json:"expectedCash"`

	// CreditSales is the day's credit turnover, tracked but not in the drawer.
	CreditSales types.Money `json:"creditSales"`

	Counts Counts `json:"counts"`
}

// Counts are the document tallies behind a summary.
type Counts struct {
	Sales     int `json:"sales"`
	Purchases int `json:"purchases"`
	Expenses  int `json:"expenses"`
	Vouchers  int `json:"vouchers"`
}

// DailyClosing is a finalized reconciliation record. Once stored it is
// immutable; a recount on the same day is a business-rule violation.
type DailyClosing struct {
	entity.BaseEntity

	Day types.CivilDate `db:"closing_day" json:"day"`

	ExpectedCash types.Money `db:"expected_cash" json:"expectedCash"`
	ActualCash   types.Money `db:"actual_cash" json:"actualCash"`

	// Difference is actual minus expected: negative means a shortage.
	Difference types.Money `db:"difference" json:"difference"`

	TotalSales    types.Money `db:"total_sales" json:"totalSales"`
	TotalExpenses types.Money `db:"total_expenses" json:"totalExpenses"`

	Note string `db:"note" json:"note,omitempty"`
}

// NewDailyClosing seals a summary against the counted drawer.
func NewDailyClosing(s Summary, actualCash types.Money, note string) *DailyClosing {
	return &DailyClosing{
		BaseEntity:    entity.NewBaseEntity(),
		Day:           s.Day,
		ExpectedCash:  s.ExpectedCash,
		ActualCash:    actualCash,
		Difference:    actualCash.Sub(s.ExpectedCash),
		TotalSales:    s.CashIn.Add(s.CreditSales),
		TotalExpenses: s.CashOut,
		Note:          note,
	}
}

// Validate implements entity.Validatable.
func (d *DailyClosing) Validate(ctx context.Context) error {
	if d.Day.IsZero() {
		return apperror.NewValidation("closing day is required").
			WithDetail("field", "day")
	}
	if d.ActualCash.IsNegative() {
		return apperror.NewValidation("counted cash must not be negative").
			WithDetail("field", "actualCash")
	}
	return nil
}
