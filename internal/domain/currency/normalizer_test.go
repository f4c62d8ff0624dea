package currency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wakala/internal/core/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testHistory() History {
	// Newest first, as the persistence layer delivers it.
	return History{
		NewRate(types.NewMoneyFromInt(400), types.NewMoneyFromInt(410), day("2024-05-02")),
		NewRate(types.NewMoneyFromInt(420), types.NewMoneyFromInt(415), day("2024-05-01")),
	}
}

func testFallback() Rate {
	return NewRate(types.NewMoneyFromInt(430), types.NewMoneyFromInt(425), day("2024-01-01"))
}

func TestNormalizer_BaseIdentity(t *testing.T) {
	n := NewNormalizer(testHistory(), testFallback())

	amount := types.MustMoney("1234.56")
	assert.True(t, n.ToBase(amount, YER).Equal(amount))
	assert.True(t, n.ToBaseAt(amount, YER, day("2024-05-01")).Equal(amount))

	// Identity twice over stays identity.
	assert.True(t, n.ToBase(n.ToBase(amount, YER), YER).Equal(amount))
}

func TestNormalizer_HistoricalExactDay(t *testing.T) {
	n := NewNormalizer(testHistory(), testFallback())

	// Dated day one: converts at 420, not the newer 400.
	got := n.ToBaseAt(types.NewMoneyFromInt(10), SAR, day("2024-05-01"))
	assert.True(t, got.Equal(types.NewMoneyFromInt(4200)), "got %s", got)

	// Time-of-day must not matter: same civil day, same rate.
	evening := day("2024-05-01").Add(23*time.Hour + 59*time.Minute)
	assert.True(t, n.ToBaseAt(types.NewMoneyFromInt(10), SAR, evening).Equal(types.NewMoneyFromInt(4200)))
}

func TestNormalizer_FallbackToCurrent(t *testing.T) {
	n := NewNormalizer(testHistory(), testFallback())

	// Day three has no snapshot: falls back to the newest (400), with no
	// nearest-date search. Equivalent to an undated conversion.
	dated := n.ToBaseAt(types.NewMoneyFromInt(10), SAR, day("2024-05-03"))
	undated := n.ToBase(types.NewMoneyFromInt(10), SAR)
	assert.True(t, dated.Equal(undated))
	assert.True(t, dated.Equal(types.NewMoneyFromInt(4000)))
}

func TestNormalizer_EmptyHistoryUsesFallback(t *testing.T) {
	n := NewNormalizer(nil, testFallback())

	assert.True(t, n.ToBase(types.NewMoneyFromInt(2), SAR).Equal(types.NewMoneyFromInt(860)))
	assert.True(t, n.ToBaseAt(types.NewMoneyFromInt(2), OMR, day("2024-05-01")).Equal(types.NewMoneyFromInt(850)))
}

func TestRate_Validate(t *testing.T) {
	r := NewRate(types.NewMoneyFromInt(0), types.NewMoneyFromInt(425), day("2024-05-01"))
	assert.Error(t, r.Validate(t.Context()))

	r = NewRate(types.NewMoneyFromInt(430), types.NewMoneyFromInt(-1), day("2024-05-01"))
	assert.Error(t, r.Validate(t.Context()))

	r = NewRate(types.NewMoneyFromInt(430), types.NewMoneyFromInt(425), day("2024-05-01"))
	assert.NoError(t, r.Validate(t.Context()))
}

func TestHistory_At(t *testing.T) {
	h := testHistory()

	if _, ok := h.At(types.CivilDateOf(day("2024-04-30"))); ok {
		t.Error("no snapshot expected for 2024-04-30")
	}

	r, ok := h.At(types.CivilDateOf(day("2024-05-02")))
	if !ok {
		t.Fatal("snapshot expected for 2024-05-02")
	}
	assert.True(t, r.SAR.Equal(types.NewMoneyFromInt(400)))
}
