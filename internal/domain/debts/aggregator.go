package debts

import (
	"slices"
	"strings"
	"time"

	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
)

// AggregateCustomers folds sales and vouchers into one Debt per customer.
//
// Only credit sales move the balance; cash sales are already settled.
// Vouchers always count regardless of any status. Each amount lands in
// its own currency bucket, returns and receipts subtract.
func AggregateCustomers(
	customers []*counterparty.Counterparty,
	sales []*sale.Sale,
	vouchers []*voucher.Voucher,
	n currency.Normalizer,
	policy AgingPolicy,
	now time.Time,
) []Debt {
	out := make([]Debt, 0, len(customers))

	for _, c := range customers {
		d := seed(c)

		for _, s := range sales {
			if s.CustomerID == nil || *s.CustomerID != c.ID || s.Status != documents.StatusCredit {
				continue
			}
			amount := s.Total
			if s.IsReturn {
				amount = amount.Neg()
			}
			addTo(d.Balances, s.Currency, amount)
			d.LastActivity = latest(d.LastActivity, s.Date)
		}

		for _, v := range vouchers {
			if v.EntityID != c.ID || v.EntityKind != counterparty.KindCustomer {
				continue
			}
			amount := v.Amount
			if v.Kind == voucher.KindReceipt {
				amount = amount.Neg()
			}
			addTo(d.Balances, v.Currency, amount)
			d.LastActivity = latest(d.LastActivity, v.Date)
		}

		finish(&d, n, policy, now)
		out = append(out, d)
	}

	sortByTotal(out)
	return out
}

// AggregateSuppliers mirrors AggregateCustomers on the supply side:
// credit purchases raise what the agency owes, payments settle it.
func AggregateSuppliers(
	suppliers []*counterparty.Counterparty,
	purchases []*purchase.Purchase,
	vouchers []*voucher.Voucher,
	n currency.Normalizer,
	policy AgingPolicy,
	now time.Time,
) []Debt {
	out := make([]Debt, 0, len(suppliers))

	for _, sp := range suppliers {
		d := seed(sp)

		for _, p := range purchases {
			if p.SupplierID != sp.ID || p.Status != documents.StatusCredit {
				continue
			}
			amount := p.TotalCost
			if p.IsReturn {
				amount = amount.Neg()
			}
			addTo(d.Balances, p.Currency, amount)
			d.LastActivity = latest(d.LastActivity, p.Date)
		}

		for _, v := range vouchers {
			if v.EntityID != sp.ID || v.EntityKind != counterparty.KindSupplier {
				continue
			}
			amount := v.Amount
			if v.Kind == voucher.KindPayment {
				amount = amount.Neg()
			}
			addTo(d.Balances, v.Currency, amount)
			d.LastActivity = latest(d.LastActivity, v.Date)
		}

		finish(&d, n, policy, now)
		out = append(out, d)
	}

	sortByTotal(out)
	return out
}

// seed starts a debt from the counterparty's opening balance, placed in
// the opening currency's own bucket.
func seed(cp *counterparty.Counterparty) Debt {
	d := Debt{
		EntityID: cp.ID,
		Name:     cp.Name,
		Phone:    cp.Phone,
		Balances: make(map[currency.Code]types.Money, len(currency.Codes())),
	}
	for _, code := range currency.Codes() {
		d.Balances[code] = types.Zero()
	}
	if cp.HasOpeningBalance() {
		addTo(d.Balances, cp.OpeningCurrency, *cp.OpeningBalance)
		d.LastActivity = cp.OpeningDate
	}
	return d
}

func finish(d *Debt, n currency.Normalizer, policy AgingPolicy, now time.Time) {
	total := types.Zero()
	for code, amount := range d.Balances {
		total = total.Add(n.ToBase(amount, code))
	}
	d.TotalBase = total

	if d.LastActivity.IsZero() {
		d.LastActivity = now
	}
	d.Aging = policy.Classify(d.LastActivity, now)
}

func addTo(balances map[currency.Code]types.Money, code currency.Code, amount types.Money) {
	balances[code] = balances[code].Add(amount)
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// sortByTotal orders largest debtor first, ties by name for stability.
func sortByTotal(debts []Debt) {
	slices.SortStableFunc(debts, func(a, b Debt) int {
		if c := b.TotalBase.Cmp(a.TotalBase); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}
