package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakala/internal/core/types"
)

func TestFromEnvRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/wakala")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Engine.AgingNewDays)
	assert.Equal(t, int64(5), cfg.Engine.LowStockThreshold)
	assert.True(t, cfg.Engine.DefaultSARRate.Equal(types.NewMoneyFromInt(430)))
	assert.True(t, cfg.Engine.DefaultOMRRate.Equal(types.NewMoneyFromInt(425)))
	assert.Equal(t, "8080", cfg.HTTP.Port)
}

func TestFromEnvOverridesEnginePolicy(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/wakala")
	t.Setenv("AGING_OVERDUE_DAYS", "45")
	t.Setenv("LOW_STOCK_THRESHOLD", "10")
	t.Setenv("DEBT_REMINDER_THRESHOLD", "250000")
	t.Setenv("DEFAULT_SAR_RATE", "440.5")
	t.Setenv("DEFAULT_OMR_RATE", "418")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Engine.AgingOverdueDays)
	assert.Equal(t, int64(10), cfg.Engine.LowStockThreshold)
	assert.True(t, cfg.Engine.ReminderThreshold.Equal(types.NewMoneyFromInt(250000)))
	assert.True(t, cfg.Engine.DefaultSARRate.Equal(types.MustMoney("440.5")))
	assert.True(t, cfg.Engine.DefaultOMRRate.Equal(types.NewMoneyFromInt(418)))
}

func TestFromEnvRejectsBadRateOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/wakala")
	t.Setenv("DEFAULT_SAR_RATE", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}
