package closing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/expense"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
)

var testDay = types.CivilDate{Year: 2026, Month: time.March, Day: 5}

func testNormalizer() currency.Normalizer {
	fallback := currency.NewRate(types.NewMoneyFromInt(430), types.NewMoneyFromInt(425), testDay.Time())
	return currency.NewNormalizer(nil, fallback)
}

func cashSale(total int64, code currency.Code) *sale.Sale {
	return sale.New(nil, "Ahmad", "TypeA", 1, types.NewMoneyFromInt(total), code, documents.StatusCash)
}

func TestComputeExpectedCash(t *testing.T) {
	sales := []*sale.Sale{cashSale(5000, currency.YER)}
	purchases := []*purchase.Purchase{
		purchase.New(id.New(), "Nashwan", "TypeA", 1, types.NewMoneyFromInt(2000), currency.YER, documents.StatusCash),
	}
	expenses := []*expense.Expense{
		expense.New("fuel", types.NewMoneyFromInt(500), currency.YER, ""),
	}
	vouchers := []*voucher.Voucher{
		voucher.New(id.New(), "customer", "Ahmad", voucher.KindReceipt, types.NewMoneyFromInt(300), currency.YER),
		voucher.New(id.New(), "supplier", "Nashwan", voucher.KindPayment, types.NewMoneyFromInt(100), currency.YER),
	}

	s := Compute(testDay, sales, purchases, expenses, vouchers, testNormalizer())

	assert.True(t, s.CashIn.Equal(types.NewMoneyFromInt(5300)))
	assert.True(t, s.CashOut.Equal(types.NewMoneyFromInt(2600)))
	assert.True(t, s.ExpectedCash.Equal(types.NewMoneyFromInt(2700)))
}

func TestComputeCreditSalesStayOutOfDrawer(t *testing.T) {
	cID := id.New()
	credit := sale.New(&cID, "Ahmad", "TypeA", 1, types.NewMoneyFromInt(9000), currency.YER, documents.StatusCredit)

	s := Compute(testDay, []*sale.Sale{credit}, nil, nil, nil, testNormalizer())

	assert.True(t, s.CashIn.IsZero())
	assert.True(t, s.CreditSales.Equal(types.NewMoneyFromInt(9000)))
	assert.True(t, s.ExpectedCash.IsZero())
}

func TestComputeConvertsAtCurrentRate(t *testing.T) {
	s := Compute(testDay, []*sale.Sale{cashSale(10, currency.SAR)}, nil, nil, nil, testNormalizer())

	assert.True(t, s.CashIn.Equal(types.NewMoneyFromInt(4300)))
}

func TestComputeCounts(t *testing.T) {
	s := Compute(testDay, []*sale.Sale{cashSale(100, currency.YER)}, nil,
		[]*expense.Expense{expense.New("rent", types.NewMoneyFromInt(50), currency.YER, "")}, nil, testNormalizer())

	assert.Equal(t, 1, s.Counts.Sales)
	assert.Equal(t, 1, s.Counts.Expenses)
	assert.Equal(t, 0, s.Counts.Purchases)
}

func TestComputeEmptyDay(t *testing.T) {
	s := Compute(testDay, nil, nil, nil, nil, testNormalizer())

	assert.True(t, s.ExpectedCash.IsZero())
	assert.True(t, s.CashIn.IsZero())
	assert.True(t, s.CashOut.IsZero())
}

func TestNewDailyClosingDifference(t *testing.T) {
	summary := Compute(testDay, []*sale.Sale{cashSale(5000, currency.YER)}, nil, nil, nil, testNormalizer())

	record := NewDailyClosing(summary, types.NewMoneyFromInt(4800), "drawer short")

	assert.True(t, record.Difference.Equal(types.NewMoneyFromInt(-200)))
	assert.True(t, record.ExpectedCash.Equal(types.NewMoneyFromInt(5000)))
	assert.Equal(t, testDay, record.Day)
}
