package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, time.March, d, hour, 0, 0, 0, time.UTC)
}

func testNormalizer(history currency.History) currency.Normalizer {
	fallback := currency.NewRate(types.NewMoneyFromInt(430), types.NewMoneyFromInt(425), day(1, 0))
	return currency.NewNormalizer(history, fallback)
}

func customer(name string) *counterparty.Counterparty {
	return counterparty.New("", name, counterparty.KindCustomer)
}

func creditSale(cp *counterparty.Counterparty, total int64, at time.Time) *sale.Sale {
	s := sale.New(&cp.ID, cp.Name, "TypeA", 1, types.NewMoneyFromInt(total), currency.YER, documents.StatusCredit)
	s.Date = at
	return s
}

func receipt(cp *counterparty.Counterparty, amount int64, at time.Time) *voucher.Voucher {
	v := voucher.New(cp.ID, cp.Kind, cp.Name, voucher.KindReceipt, types.NewMoneyFromInt(amount), currency.YER)
	v.Date = at
	return v
}

func TestAccumulateRunningBalance(t *testing.T) {
	ahmad := customer("Ahmad")

	entries := Unify(ahmad,
		[]*sale.Sale{
			creditSale(ahmad, 1000, day(1, 10)),
			creditSale(ahmad, 500, day(2, 10)),
		},
		nil,
		[]*voucher.Voucher{
			receipt(ahmad, 300, day(3, 10)),
		},
	)
	require.Len(t, entries, 3)

	rows := Accumulate(entries, testNormalizer(nil))

	assert.True(t, rows[0].Balance.Equal(types.NewMoneyFromInt(1000)))
	assert.True(t, rows[1].Balance.Equal(types.NewMoneyFromInt(1500)))
	assert.True(t, rows[2].Balance.Equal(types.NewMoneyFromInt(1200)))
	assert.True(t, FinalBalance(rows).Equal(types.NewMoneyFromInt(1200)))
}

func TestAccumulateDeterministic(t *testing.T) {
	ahmad := customer("Ahmad")
	sales := []*sale.Sale{
		creditSale(ahmad, 1000, day(1, 10)),
		creditSale(ahmad, 500, day(2, 10)),
	}
	vouchers := []*voucher.Voucher{receipt(ahmad, 300, day(3, 10))}

	first := Accumulate(Unify(ahmad, sales, nil, vouchers), testNormalizer(nil))
	second := Accumulate(Unify(ahmad, sales, nil, vouchers), testNormalizer(nil))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Balance.Equal(second[i].Balance), "row %d", i)
	}
}

func TestUnifyOpeningBalanceAlwaysFirst(t *testing.T) {
	cp := customer("Salem")
	cp.SetOpeningBalance(types.NewMoneyFromInt(200), currency.YER, day(5, 0), "carried over")

	entries := Unify(cp, []*sale.Sale{creditSale(cp, 100, day(1, 9))}, nil, nil)

	require.Len(t, entries, 2)
	assert.Equal(t, SourceOpening, entries[0].Source)
	assert.True(t, entries[0].Debit.Equal(types.NewMoneyFromInt(200)))
}

func TestUnifyNegativeOpeningIsCredit(t *testing.T) {
	cp := customer("Salem")
	cp.SetOpeningBalance(types.NewMoneyFromInt(-150), currency.YER, day(1, 0), "")

	entries := Unify(cp, nil, nil, nil)

	require.Len(t, entries, 1)
	assert.True(t, entries[0].Debit.IsZero())
	assert.True(t, entries[0].Credit.Equal(types.NewMoneyFromInt(150)))
}

func TestUnifySortsByTimestampStable(t *testing.T) {
	cp := customer("Ahmad")

	early := creditSale(cp, 100, day(2, 8))
	late := creditSale(cp, 200, day(2, 18))
	tiedA := creditSale(cp, 300, day(1, 12))
	tiedB := creditSale(cp, 400, day(1, 12))

	entries := Unify(cp, []*sale.Sale{late, tiedA, tiedB, early}, nil, nil)

	require.Len(t, entries, 4)
	assert.Equal(t, tiedA.ID, entries[0].DocID)
	assert.Equal(t, tiedB.ID, entries[1].DocID)
	assert.Equal(t, early.ID, entries[2].DocID)
	assert.Equal(t, late.ID, entries[3].DocID)
}

func TestUnifySaleReturnCreditsCustomer(t *testing.T) {
	cp := customer("Ahmad")
	ret := creditSale(cp, 250, day(1, 10))
	ret.IsReturn = true

	entries := Unify(cp, []*sale.Sale{ret}, nil, nil)

	require.Len(t, entries, 1)
	assert.True(t, entries[0].Debit.IsZero())
	assert.True(t, entries[0].Credit.Equal(types.NewMoneyFromInt(250)))
}

func TestUnifySupplierSides(t *testing.T) {
	sup := counterparty.New("", "Nashwan", counterparty.KindSupplier)

	buy := purchase.New(sup.ID, sup.Name, "TypeA", 2, types.NewMoneyFromInt(500), currency.YER, documents.StatusCredit)
	buy.Date = day(1, 9)

	ret := purchase.New(sup.ID, sup.Name, "TypeA", 1, types.NewMoneyFromInt(500), currency.YER, documents.StatusCredit)
	ret.IsReturn = true
	ret.Date = day(2, 9)

	pay := voucher.New(sup.ID, sup.Kind, sup.Name, voucher.KindPayment, types.NewMoneyFromInt(400), currency.YER)
	pay.Date = day(3, 9)

	entries := Unify(sup, nil, []*purchase.Purchase{buy, ret}, []*voucher.Voucher{pay})
	require.Len(t, entries, 3)

	// Purchase credits the supplier, its return and the payment debit.
	assert.True(t, entries[0].Credit.Equal(types.NewMoneyFromInt(1000)))
	assert.True(t, entries[1].Debit.Equal(types.NewMoneyFromInt(500)))
	assert.True(t, entries[2].Debit.Equal(types.NewMoneyFromInt(400)))

	rows := Accumulate(entries, testNormalizer(nil))
	assert.True(t, FinalBalance(rows).Equal(types.NewMoneyFromInt(-100)))
}

func TestAccumulateUsesRateOfEntryDay(t *testing.T) {
	history := currency.History{
		currency.NewRate(types.NewMoneyFromInt(400), types.NewMoneyFromInt(410), day(3, 0)),
		currency.NewRate(types.NewMoneyFromInt(420), types.NewMoneyFromInt(415), day(1, 0)),
	}

	cp := customer("Ahmad")
	s := sale.New(&cp.ID, cp.Name, "TypeA", 1, types.NewMoneyFromInt(10), currency.SAR, documents.StatusCredit)
	s.Date = day(1, 14)

	rows := Accumulate(Unify(cp, []*sale.Sale{s}, nil, nil), testNormalizer(history))

	require.Len(t, rows, 1)
	assert.True(t, rows[0].RateUsed.Equal(types.NewMoneyFromInt(420)))
	assert.True(t, rows[0].DebitBase.Equal(types.NewMoneyFromInt(4200)))
}

func TestAccumulateFallsBackToCurrentRate(t *testing.T) {
	history := currency.History{
		currency.NewRate(types.NewMoneyFromInt(400), types.NewMoneyFromInt(410), day(3, 0)),
	}

	cp := customer("Ahmad")
	s := sale.New(&cp.ID, cp.Name, "TypeA", 1, types.NewMoneyFromInt(10), currency.SAR, documents.StatusCredit)
	s.Date = day(2, 14) // no snapshot on day 2

	rows := Accumulate(Unify(cp, []*sale.Sale{s}, nil, nil), testNormalizer(history))

	require.Len(t, rows, 1)
	assert.True(t, rows[0].RateUsed.Equal(types.NewMoneyFromInt(400)))
}

func TestAccumulateEmpty(t *testing.T) {
	rows := Accumulate(nil, testNormalizer(nil))
	assert.Empty(t, rows)
	assert.True(t, FinalBalance(rows).IsZero())
}

func TestStatementIncludesCashDocuments(t *testing.T) {
	cp := customer("Ahmad")
	cash := sale.New(&cp.ID, cp.Name, "TypeA", 1, types.NewMoneyFromInt(700), currency.YER, documents.StatusCash)
	cash.Date = day(1, 10)

	entries := Unify(cp, []*sale.Sale{cash}, nil, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, documents.StatusCash, entries[0].Status)
	assert.True(t, entries[0].Debit.Equal(types.NewMoneyFromInt(700)))
}
