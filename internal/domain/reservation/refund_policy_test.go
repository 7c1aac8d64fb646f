//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRefundPolicy(t *testing.T) {
	policy := reservation.DefaultRefundPolicy()
	total, _ := reservation.NewMoney(10000)

	tests := []struct {
		name string
		lead time.Duration
		want int64
	}{
		{"two days ahead", 48 * time.Hour, 10000},
		{"exactly 24h", 24 * time.Hour, 10000},
		{"just under 24h", 24*time.Hour - time.Second, 5000},
		{"exactly 2h", 2 * time.Hour, 5000},
		{"just under 2h", 2*time.Hour - time.Second, 0},
		{"ten minutes", 10 * time.Minute, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.RefundFor(total, tt.lead).Cents())
		})
	}
}

func TestParseRefundTiers(t *testing.T) {
	tiers, err := reservation.ParseRefundTiers("2h:50, 48h:100 ,24h:75")
	require.NoError(t, err)
	require.Len(t, tiers, 3)

	policy, err := reservation.NewTieredRefundPolicy(tiers...)
	require.NoError(t, err)
	ordered := policy.Tiers()
	assert.Equal(t, 48*time.Hour, ordered[0].MinLeadTime)
	assert.Equal(t, 24*time.Hour, ordered[1].MinLeadTime)
	assert.Equal(t, 2*time.Hour, ordered[2].MinLeadTime)

	total, _ := reservation.NewMoney(1000)
	assert.Equal(t, int64(750), policy.RefundFor(total, 30*time.Hour).Cents())

	for _, bad := range []string{"24h", "1d:100", "24h:x"} {
		_, err := reservation.ParseRefundTiers(bad)
		assert.ErrorIsf(t, err, reservation.ErrInvalidRefundTier, "input %q", bad)
	}

	_, err = reservation.NewTieredRefundPolicy(reservation.RefundTier{MinLeadTime: time.Hour, Percent: 120})
	assert.ErrorIs(t, err, reservation.ErrInvalidRefundTier)
}
