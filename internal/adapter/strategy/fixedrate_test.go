package strategy

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

func TestFixedRateAdapter_RejectsForeignVault(t *testing.T) {
	vaultID := uuid.New()
	a := NewFixedRateAdapter(vaultID, "USDX", 100, time.Hour)

	err := a.Invest(context.Background(), uuid.New(), decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))

	_, err = a.Divest(context.Background(), uuid.New(), decimal.NewFromInt(100))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))
}

func TestFixedRateAdapter_AccruesAndHarvests(t *testing.T) {
	ctx := context.Background()
	vaultID := uuid.New()

	current := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := NewFixedRateAdapter(vaultID, "USDX", 100, time.Hour). // 1% per hour
									WithClock(func() time.Time { return current })

	require.NoError(t, a.Invest(ctx, vaultID, decimal.NewFromInt(1000)))

	// No time passed: harvest is idle.
	profit, loss, err := a.Harvest(ctx, vaultID)
	require.NoError(t, err)
	assert.True(t, profit.IsZero())
	assert.True(t, loss.IsZero())

	// Two hours: 2 x 1% of 1000.
	current = current.Add(2 * time.Hour)
	profit, loss, err = a.Harvest(ctx, vaultID)
	require.NoError(t, err)
	assert.True(t, profit.Equal(decimal.NewFromInt(20)), "profit was %s", profit)
	assert.True(t, loss.IsZero())

	// Harvest again with no elapsed interval: zero.
	profit, _, err = a.Harvest(ctx, vaultID)
	require.NoError(t, err)
	assert.True(t, profit.IsZero())
}

func TestFixedRateAdapter_DivestCapsAtPrincipal(t *testing.T) {
	ctx := context.Background()
	vaultID := uuid.New()
	a := NewFixedRateAdapter(vaultID, "USDX", 0, time.Hour)

	require.NoError(t, a.Invest(ctx, vaultID, decimal.NewFromInt(500)))

	returned, err := a.Divest(ctx, vaultID, decimal.NewFromInt(800))
	require.NoError(t, err)
	assert.True(t, returned.Equal(decimal.NewFromInt(500)))

	total, err := a.TotalAssets(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve(uuid.New())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))

	a := NewFixedRateAdapter(uuid.New(), "USDX", 0, time.Hour)
	r.Register(a)
	got, err := r.Resolve(a.ID())
	require.NoError(t, err)
	assert.Equal(t, a.ID(), got.ID())
}
