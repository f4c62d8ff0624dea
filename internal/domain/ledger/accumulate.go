package ledger

import (
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
)

// Row is an entry with base-currency figures and the running balance
// after applying it.
type Row struct {
	Entry

	// DebitBase and CreditBase are the entry amounts converted into the
	// base currency at the rate in effect on the entry's civil day.
	DebitBase  types.Money `json:"debitBase"`
	CreditBase types.Money `json:"creditBase"`

	// Balance is the running base-currency balance after this row.
	// Positive means the counterparty owes the agency.
	Balance types.Money `json:"balance"`

	// RateUsed is the per-unit conversion rate applied to this row.
	RateUsed types.Money `json:"rateUsed"`
}

// Accumulate converts each entry into the base currency with the rate of
// its own day and threads a running balance through the stream. The sum
// is exact decimal arithmetic: replaying the same entries always yields
// the same balances.
func Accumulate(entries []Entry, n currency.Normalizer) []Row {
	rows := make([]Row, 0, len(entries))
	balance := types.Zero()

	for _, e := range entries {
		debitBase := n.ToBaseAt(e.Debit, e.Currency, e.Date)
		creditBase := n.ToBaseAt(e.Credit, e.Currency, e.Date)
		balance = balance.Add(debitBase).Sub(creditBase)

		rows = append(rows, Row{
			Entry:      e,
			DebitBase:  debitBase,
			CreditBase: creditBase,
			Balance:    balance,
			RateUsed:   n.RateAt(e.Currency, e.Date),
		})
	}
	return rows
}

// FinalBalance returns the closing balance of an accumulated statement,
// zero for an empty one.
func FinalBalance(rows []Row) types.Money {
	if len(rows) == 0 {
		return types.Zero()
	}
	return rows[len(rows)-1].Balance
}
