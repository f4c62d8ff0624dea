// Package ledger unifies heterogeneous documents into a single
// double-entry statement timeline and accumulates running balances over
// it in the base currency.
package ledger

import (
	"fmt"
	"slices"
	"time"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
)

// Source names the document kind an entry was derived from.
type Source string

const (
	SourceOpening  Source = "opening"
	SourceSale     Source = "sale"
	SourcePurchase Source = "purchase"
	SourceReceipt  Source = "receipt"
	SourcePayment  Source = "payment"
)

// Entry is one row of a counterparty statement before accumulation.
// Exactly one of Debit and Credit is non-zero. Debit increases what the
// counterparty owes the agency, credit decreases it.
type Entry struct {
	Source      Source           `json:"source"`
	DocID       id.ID            `json:"docId"`
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Debit       types.Money      `json:"debit"`
	Credit      types.Money      `json:"credit"`
	Currency    currency.Code    `json:"currency"`
	Status      documents.Status `json:"status,omitempty"`
}

// Unify merges a counterparty's opening balance, trade documents and
// vouchers into one chronological entry stream.
//
// The opening entry always comes first regardless of its date. The rest
// sorts by timestamp ascending; entries sharing a timestamp keep the
// order the documents were recorded in.
func Unify(cp *counterparty.Counterparty, sales []*sale.Sale, purchases []*purchase.Purchase, vouchers []*voucher.Voucher) []Entry {
	entries := make([]Entry, 0, len(sales)+len(purchases)+len(vouchers)+1)

	for _, s := range sales {
		entries = append(entries, saleEntry(s))
	}
	for _, p := range purchases {
		entries = append(entries, purchaseEntry(p))
	}
	for _, v := range vouchers {
		entries = append(entries, voucherEntry(v))
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Date.Compare(b.Date)
	})

	if cp.HasOpeningBalance() {
		return append([]Entry{openingEntry(cp)}, entries...)
	}
	return entries
}

// openingEntry converts the pre-history balance into a synthetic first row.
// A positive balance means the counterparty owes the agency, so it lands
// on the same side a fresh document of that kind would.
func openingEntry(cp *counterparty.Counterparty) Entry {
	e := Entry{
		Source:      SourceOpening,
		DocID:       cp.ID,
		Date:        cp.OpeningDate,
		Description: openingDescription(cp),
		Currency:    cp.OpeningCurrency,
	}

	amount := *cp.OpeningBalance
	if amount.IsNegative() {
		e.Credit = amount.Neg()
	} else {
		e.Debit = amount
	}
	return e
}

func openingDescription(cp *counterparty.Counterparty) string {
	if cp.OpeningNote != "" {
		return "opening balance: " + cp.OpeningNote
	}
	return "opening balance"
}

// saleEntry maps a sale onto the customer's statement: a sale debits the
// customer, a return credits them back.
func saleEntry(s *sale.Sale) Entry {
	e := Entry{
		Source:      SourceSale,
		DocID:       s.ID,
		Date:        s.Date,
		Description: fmt.Sprintf("sale %s x%d", s.ItemType, s.Quantity),
		Currency:    s.Currency,
		Status:      s.Status,
	}
	if s.IsReturn {
		e.Description = fmt.Sprintf("sale return %s x%d", s.ItemType, s.Quantity)
		e.Credit = s.Total
	} else {
		e.Debit = s.Total
	}
	return e
}

// purchaseEntry maps a purchase onto the supplier's statement: a purchase
// credits the supplier (the agency owes more), a return debits them.
func purchaseEntry(p *purchase.Purchase) Entry {
	e := Entry{
		Source:      SourcePurchase,
		DocID:       p.ID,
		Date:        p.Date,
		Description: fmt.Sprintf("purchase %s x%d", p.ItemType, p.Quantity),
		Currency:    p.Currency,
		Status:      p.Status,
	}
	if p.IsReturn {
		e.Description = fmt.Sprintf("purchase return %s x%d", p.ItemType, p.Quantity)
		e.Debit = p.TotalCost
	} else {
		e.Credit = p.TotalCost
	}
	return e
}

// voucherEntry maps a cash voucher onto the statement. A receipt credits
// the counterparty (money received settles toward the agency), a payment
// debits it. The same sides hold for customers and suppliers because a
// supplier balance accumulates on the credit side.
func voucherEntry(v *voucher.Voucher) Entry {
	e := Entry{
		DocID:    v.ID,
		Date:     v.Date,
		Currency: v.Currency,
	}

	switch v.Kind {
	case voucher.KindReceipt:
		e.Source = SourceReceipt
		e.Description = "receipt voucher"
		e.Credit = v.Amount
	case voucher.KindPayment:
		e.Source = SourcePayment
		e.Description = "payment voucher"
		e.Debit = v.Amount
	}

	if v.Note != "" {
		e.Description += ": " + v.Note
	}
	return e
}
