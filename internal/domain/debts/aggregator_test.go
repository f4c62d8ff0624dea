package debts

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

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func testNormalizer() currency.Normalizer {
	fallback := currency.NewRate(types.NewMoneyFromInt(430), types.NewMoneyFromInt(425), day(1))
	return currency.NewNormalizer(nil, fallback)
}

func newCustomer(name string) *counterparty.Counterparty {
	return counterparty.New("", name, counterparty.KindCustomer)
}

func newSale(cp *counterparty.Counterparty, total int64, code currency.Code, status documents.Status, at time.Time) *sale.Sale {
	s := sale.New(&cp.ID, cp.Name, "TypeA", 1, types.NewMoneyFromInt(total), code, status)
	s.Date = at
	return s
}

func newVoucher(cp *counterparty.Counterparty, kind voucher.Kind, amount int64, code currency.Code, at time.Time) *voucher.Voucher {
	v := voucher.New(cp.ID, cp.Kind, cp.Name, kind, types.NewMoneyFromInt(amount), code)
	v.Date = at
	return v
}

func TestAggregateCustomersCreditOnly(t *testing.T) {
	ahmad := newCustomer("Ahmad")

	sales := []*sale.Sale{
		newSale(ahmad, 1000, currency.YER, documents.StatusCredit, day(1)),
		newSale(ahmad, 500, currency.YER, documents.StatusCredit, day(2)),
		newSale(ahmad, 9999, currency.YER, documents.StatusCash, day(2)), // settled, must not count
	}
	vouchers := []*voucher.Voucher{
		newVoucher(ahmad, voucher.KindReceipt, 300, currency.YER, day(3)),
	}

	out := AggregateCustomers([]*counterparty.Counterparty{ahmad}, sales, vouchers, testNormalizer(), DefaultAgingPolicy(), day(3))

	require.Len(t, out, 1)
	assert.True(t, out[0].Balances[currency.YER].Equal(types.NewMoneyFromInt(1200)))
	assert.True(t, out[0].TotalBase.Equal(types.NewMoneyFromInt(1200)))
}

func TestAggregateKeepsCurrenciesApart(t *testing.T) {
	ahmad := newCustomer("Ahmad")

	sales := []*sale.Sale{
		newSale(ahmad, 100, currency.SAR, documents.StatusCredit, day(1)),
		newSale(ahmad, 5000, currency.YER, documents.StatusCredit, day(1)),
	}
	vouchers := []*voucher.Voucher{
		newVoucher(ahmad, voucher.KindReceipt, 5000, currency.YER, day(2)),
	}

	out := AggregateCustomers([]*counterparty.Counterparty{ahmad}, sales, vouchers, testNormalizer(), DefaultAgingPolicy(), day(2))

	require.Len(t, out, 1)
	d := out[0]
	assert.True(t, d.Balances[currency.SAR].Equal(types.NewMoneyFromInt(100)), "SAR bucket untouched by YER receipt")
	assert.True(t, d.Balances[currency.YER].IsZero())
	// 100 SAR at the fallback rate of 430
	assert.True(t, d.TotalBase.Equal(types.NewMoneyFromInt(43000)))
}

func TestAggregateReturnsNegate(t *testing.T) {
	ahmad := newCustomer("Ahmad")

	ret := newSale(ahmad, 400, currency.YER, documents.StatusCredit, day(2))
	ret.IsReturn = true

	sales := []*sale.Sale{
		newSale(ahmad, 1000, currency.YER, documents.StatusCredit, day(1)),
		ret,
	}

	out := AggregateCustomers([]*counterparty.Counterparty{ahmad}, sales, nil, testNormalizer(), DefaultAgingPolicy(), day(2))

	require.Len(t, out, 1)
	assert.True(t, out[0].Balances[currency.YER].Equal(types.NewMoneyFromInt(600)))
}

func TestAggregateOpeningBalanceSeedsOwnBucket(t *testing.T) {
	salem := newCustomer("Salem")
	salem.SetOpeningBalance(types.NewMoneyFromInt(50), currency.OMR, day(1), "")

	out := AggregateCustomers([]*counterparty.Counterparty{salem}, nil, nil, testNormalizer(), DefaultAgingPolicy(), day(1))

	require.Len(t, out, 1)
	assert.True(t, out[0].Balances[currency.OMR].Equal(types.NewMoneyFromInt(50)))
	assert.True(t, out[0].Balances[currency.YER].IsZero())
	assert.True(t, out[0].TotalBase.Equal(types.NewMoneyFromInt(21250)))
}

func TestAggregateSuppliers(t *testing.T) {
	nashwan := counterparty.New("", "Nashwan", counterparty.KindSupplier)

	buy := purchase.New(nashwan.ID, nashwan.Name, "TypeA", 2, types.NewMoneyFromInt(500), currency.YER, documents.StatusCredit)
	buy.Date = day(1)
	cashBuy := purchase.New(nashwan.ID, nashwan.Name, "TypeA", 1, types.NewMoneyFromInt(700), currency.YER, documents.StatusCash)
	cashBuy.Date = day(1)

	pay := voucher.New(nashwan.ID, counterparty.KindSupplier, nashwan.Name, voucher.KindPayment, types.NewMoneyFromInt(400), currency.YER)
	pay.Date = day(2)

	out := AggregateSuppliers([]*counterparty.Counterparty{nashwan}, []*purchase.Purchase{buy, cashBuy}, []*voucher.Voucher{pay}, testNormalizer(), DefaultAgingPolicy(), day(2))

	require.Len(t, out, 1)
	assert.True(t, out[0].Balances[currency.YER].Equal(types.NewMoneyFromInt(600)))
}

func TestAggregateLastActivityFollowsDocuments(t *testing.T) {
	ahmad := newCustomer("Ahmad")
	ahmad.SetOpeningBalance(types.NewMoneyFromInt(100), currency.YER, day(1), "")

	sales := []*sale.Sale{newSale(ahmad, 200, currency.YER, documents.StatusCredit, day(10))}

	out := AggregateCustomers([]*counterparty.Counterparty{ahmad}, sales, nil, testNormalizer(), DefaultAgingPolicy(), day(11))

	require.Len(t, out, 1)
	assert.Equal(t, day(10), out[0].LastActivity)
	assert.Equal(t, AgingNew, out[0].Aging)
}

func TestAggregateSortsLargestFirst(t *testing.T) {
	small := newCustomer("Aziz")
	big := newCustomer("Basheer")

	sales := []*sale.Sale{
		newSale(small, 100, currency.YER, documents.StatusCredit, day(1)),
		newSale(big, 900, currency.YER, documents.StatusCredit, day(1)),
	}

	out := AggregateCustomers([]*counterparty.Counterparty{small, big}, sales, nil, testNormalizer(), DefaultAgingPolicy(), day(1))

	require.Len(t, out, 2)
	assert.Equal(t, "Basheer", out[0].Name)
	assert.Equal(t, "Aziz", out[1].Name)
}

func TestAgingPolicyClassify(t *testing.T) {
	p := DefaultAgingPolicy()
	now := day(31)

	assert.Equal(t, AgingNew, p.Classify(day(30), now))
	assert.Equal(t, AgingActive, p.Classify(day(25), now))
	assert.Equal(t, AgingOverdue, p.Classify(day(10), now))
	assert.Equal(t, AgingStagnant, p.Classify(day(1), now))
}

func TestTotalOutstanding(t *testing.T) {
	debts := []Debt{
		{TotalBase: types.NewMoneyFromInt(100)},
		{TotalBase: types.NewMoneyFromInt(250)},
	}
	assert.True(t, TotalOutstanding(debts).Equal(types.NewMoneyFromInt(350)))
}
