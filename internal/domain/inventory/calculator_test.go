package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func buy(itemType string, qty int64, isReturn bool, at time.Time) *purchase.Purchase {
	p := purchase.New(id.New(), "Nashwan", itemType, qty, types.NewMoneyFromInt(100), "YER", documents.StatusCash)
	p.IsReturn = isReturn
	p.Date = at
	return p
}

func sell(itemType string, qty int64, isReturn bool, at time.Time) *sale.Sale {
	s := sale.New(nil, "Ahmad", itemType, qty, types.NewMoneyFromInt(150), "YER", documents.StatusCash)
	s.IsReturn = isReturn
	s.Date = at
	return s
}

func TestCalculateFlows(t *testing.T) {
	purchases := []*purchase.Purchase{
		buy("TypeA", 10, false, day(1)),
	}
	sales := []*sale.Sale{
		sell("TypeA", 3, false, day(2)),
	}

	level := Calculate("TypeA", purchases, sales, 5)

	assert.Equal(t, int64(10), level.Inbound)
	assert.Equal(t, int64(3), level.Outbound)
	assert.Equal(t, int64(7), level.OnHand)
	assert.InDelta(t, 0.3, level.Turnover, 1e-9)
}

func TestCalculateReturnsFlipDirection(t *testing.T) {
	purchases := []*purchase.Purchase{
		buy("TypeA", 10, false, day(1)),
		buy("TypeA", 2, true, day(3)), // back to the supplier
	}
	sales := []*sale.Sale{
		sell("TypeA", 4, false, day(2)),
		sell("TypeA", 5, true, day(4)), // customer return re-enters
	}

	level := Calculate("TypeA", purchases, sales, 5)

	assert.Equal(t, int64(15), level.Inbound)
	assert.Equal(t, int64(6), level.Outbound)
	assert.Equal(t, int64(9), level.OnHand)
}

func TestCalculateClampsAtZero(t *testing.T) {
	purchases := []*purchase.Purchase{buy("TypeA", 2, false, day(1))}
	sales := []*sale.Sale{sell("TypeA", 5, false, day(2))}

	level := Calculate("TypeA", purchases, sales, 5)

	assert.Equal(t, int64(0), level.OnHand)
}

func TestCalculateEmptyHistory(t *testing.T) {
	level := Calculate("TypeA", nil, nil, 5)

	assert.Zero(t, level.Inbound)
	assert.Zero(t, level.OnHand)
	assert.Zero(t, level.Turnover)
	assert.True(t, level.LowStock)
}

func TestCalculateTurnoverExcludesSupplierReturns(t *testing.T) {
	purchases := []*purchase.Purchase{
		buy("TypeA", 10, false, day(1)),
		buy("TypeA", 5, true, day(2)),
	}
	sales := []*sale.Sale{sell("TypeA", 2, false, day(3))}

	level := Calculate("TypeA", purchases, sales, 5)

	// 2 sold out of 10 inbound; the supplier return is not a sale
	assert.InDelta(t, 0.2, level.Turnover, 1e-9)
}

func TestCalculateTurnoverClampedWhenOversold(t *testing.T) {
	purchases := []*purchase.Purchase{buy("TypeA", 3, false, day(1))}
	sales := []*sale.Sale{sell("TypeA", 5, false, day(2))}

	level := Calculate("TypeA", purchases, sales, 5)

	// 5 sold against 3 received: on-hand already clamps, the ratio must too.
	assert.Equal(t, int64(0), level.OnHand)
	assert.InDelta(t, 1.0, level.Turnover, 1e-9)
}

func TestCalculateIgnoresOtherItemTypes(t *testing.T) {
	purchases := []*purchase.Purchase{
		buy("TypeA", 10, false, day(1)),
		buy("TypeB", 99, false, day(1)),
	}

	level := Calculate("TypeA", purchases, nil, 5)

	assert.Equal(t, int64(10), level.Inbound)
}

func TestCalculateLowStockFlag(t *testing.T) {
	purchases := []*purchase.Purchase{buy("TypeA", 5, false, day(1))}

	assert.True(t, Calculate("TypeA", purchases, nil, 5).LowStock)
	assert.False(t, Calculate("TypeA", purchases, nil, 4).LowStock)
}

func TestMovementsNewestFirst(t *testing.T) {
	purchases := []*purchase.Purchase{
		buy("TypeA", 10, false, day(1)),
		buy("TypeA", 2, true, day(4)),
	}
	sales := []*sale.Sale{
		sell("TypeA", 3, false, day(2)),
	}

	log := Movements("TypeA", purchases, sales)

	require.Len(t, log, 3)
	assert.Equal(t, day(4), log[0].Date)
	assert.Equal(t, DirectionOut, log[0].Direction)
	assert.Equal(t, day(2), log[1].Date)
	assert.Equal(t, day(1), log[2].Date)
	assert.Equal(t, DirectionIn, log[2].Direction)
}

func TestMovementsCustomerReturnIsInbound(t *testing.T) {
	sales := []*sale.Sale{sell("TypeA", 5, true, day(1))}

	log := Movements("TypeA", nil, sales)

	require.Len(t, log, 1)
	assert.Equal(t, DirectionIn, log[0].Direction)
	assert.Equal(t, int64(5), log[0].Quantity)
}
