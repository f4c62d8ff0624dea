package closing

import (
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/expense"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
)

// Compute reconciles one civil day from its documents. All figures
// convert at the current rate, not the historical one: the drawer is
// counted today, so today's rate is the honest yardstick.
func Compute(
	day types.CivilDate,
	sales []*sale.Sale,
	purchases []*purchase.Purchase,
	expenses []*expense.Expense,
	vouchers []*voucher.Voucher,
	n currency.Normalizer,
) Summary {
	s := Summary{
		Day:          day,
		CashIn:       types.Zero(),
		CashOut:      types.Zero(),
		ExpectedCash: types.Zero(),
		CreditSales:  types.Zero(),
		Counts: Counts{
			Sales:     len(sales),
			Purchases: len(purchases),
			Expenses:  len(expenses),
			Vouchers:  len(vouchers),
		},
	}

	for _, doc := range sales {
		amount := n.ToBase(doc.Total.Abs(), doc.Currency)
		switch doc.Status {
		case documents.StatusCash:
			s.CashIn = s.CashIn.Add(amount)
		case documents.StatusCredit:
			s.CreditSales = s.CreditSales.Add(amount)
		}
	}

	for _, doc := range purchases {
		if doc.Status == documents.StatusCash {
			s.CashOut = s.CashOut.Add(n.ToBase(doc.TotalCost.Abs(), doc.Currency))
		}
	}

	for _, doc := range expenses {
		s.CashOut = s.CashOut.Add(n.ToBase(doc.Amount, doc.Currency))
	}

	for _, doc := range vouchers {
		amount := n.ToBase(doc.Amount.Abs(), doc.Currency)
		switch doc.Kind {
		case voucher.KindReceipt:
			s.CashIn = s.CashIn.Add(amount)
		case voucher.KindPayment:
			s.CashOut = s.CashOut.Add(amount)
		}
	}

	s.ExpectedCash = s.CashIn.Sub(s.CashOut)
	return s
}
