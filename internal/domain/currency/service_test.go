package currency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakala/internal/core/types"
)

// fakeRateRepo honors ListHistory limits the way the SQL repo does.
type fakeRateRepo struct {
	history History // newest first
}

func (f *fakeRateRepo) ListHistory(_ context.Context, limit int) (History, error) {
	if limit > 0 && limit < len(f.history) {
		return f.history[:limit], nil
	}
	return f.history, nil
}

func (f *fakeRateRepo) Record(_ context.Context, rate Rate) error {
	f.history = append(History{rate}, f.history...)
	return nil
}

// longHistory returns count daily snapshots, newest first, with a
// distinctive SAR rate on the oldest day.
func longHistory(count int, oldestSAR types.Money) History {
	h := make(History, 0, count)
	for i := 0; i < count; i++ {
		sar := types.NewMoneyFromInt(400)
		if i == count-1 {
			sar = oldestSAR
		}
		at := day("2024-05-01").AddDate(0, 0, count-1-i)
		h = append(h, NewRate(sar, types.NewMoneyFromInt(410), at))
	}
	return h
}

func TestServiceNormalizerSeesFullHistory(t *testing.T) {
	// More snapshots than the History listing window: conversions dated on
	// the oldest day must still find its recorded rate.
	repo := &fakeRateRepo{history: longHistory(historyDepth+5, types.NewMoneyFromInt(999))}
	svc := NewService(repo, types.NewMoneyFromInt(430), types.NewMoneyFromInt(425))

	n, err := svc.Normalizer(t.Context())
	require.NoError(t, err)

	got := n.RateAt(SAR, day("2024-05-01"))
	assert.True(t, got.Equal(types.NewMoneyFromInt(999)), "oldest day rate: got %s", got)

	// And the conversion itself uses that day's rate, not the current one.
	base := n.ToBaseAt(types.NewMoneyFromInt(10), SAR, day("2024-05-01"))
	assert.True(t, base.Equal(types.NewMoneyFromInt(9990)), "got %s", base)
}

func TestServiceHistoryListingStaysWindowed(t *testing.T) {
	repo := &fakeRateRepo{history: longHistory(historyDepth+5, types.NewMoneyFromInt(999))}
	svc := NewService(repo, types.NewMoneyFromInt(430), types.NewMoneyFromInt(425))

	h, err := svc.History(t.Context())
	require.NoError(t, err)
	assert.Len(t, h, historyDepth)
}

func TestServiceRecordRejectsInvalidRate(t *testing.T) {
	repo := &fakeRateRepo{}
	svc := NewService(repo, types.NewMoneyFromInt(430), types.NewMoneyFromInt(425))

	err := svc.Record(t.Context(), NewRate(types.NewMoneyFromInt(0), types.NewMoneyFromInt(425), day("2024-05-01")))
	assert.Error(t, err)
	assert.Empty(t, repo.history)
}
