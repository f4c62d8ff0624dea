package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/debts"
	"wakala/internal/domain/inventory"
)

func TestFromInventory(t *testing.T) {
	levels := []inventory.Level{
		{ItemType: "TypeA", OnHand: 20},
		{ItemType: "TypeB", OnHand: 3, LowStock: true},
		{ItemType: "TypeC", OnHand: 0, LowStock: true},
	}

	out := FromInventory(levels)

	require.Len(t, out, 2)
	assert.Equal(t, SeverityWarning, out[0].Severity)
	assert.Equal(t, "TypeB", out[0].ItemType)
	assert.Equal(t, SeverityCritical, out[1].Severity)
	assert.Equal(t, "TypeC", out[1].ItemType)
}

func TestFromDebts(t *testing.T) {
	yer := func(v int64) map[currency.Code]types.Money {
		return map[currency.Code]types.Money{currency.YER: types.NewMoneyFromInt(v)}
	}
	threshold := types.NewMoneyFromInt(100_000)

	report := []debts.Debt{
		{EntityID: id.New(), Name: "Fresh", Balances: yer(500), TotalBase: types.NewMoneyFromInt(500), Aging: debts.AgingNew},
		{EntityID: id.New(), Name: "SmallOverdue", Balances: yer(900), TotalBase: types.NewMoneyFromInt(900), Aging: debts.AgingOverdue},
		{EntityID: id.New(), Name: "BigOverdue", Balances: yer(200_000), TotalBase: types.NewMoneyFromInt(200_000), Aging: debts.AgingOverdue},
		{EntityID: id.New(), Name: "Stagnant", Balances: yer(50), TotalBase: types.NewMoneyFromInt(50), Aging: debts.AgingStagnant},
		{EntityID: id.New(), Name: "Settled", Balances: yer(0), TotalBase: types.Zero(), Aging: debts.AgingStagnant},
	}

	out := FromDebts(report, threshold)

	require.Len(t, out, 2)
	assert.Contains(t, out[0].Message, "BigOverdue")
	assert.Equal(t, SeverityWarning, out[0].Severity)
	assert.Equal(t, SeverityCritical, out[1].Severity)
	require.NotNil(t, out[1].EntityID)
}
