package usury

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Natim/payment-plan-generator/internal/domain"
)

func TestLookupQuarter(t *testing.T) {
	q, ok := LookupQuarter("2024-T1")

	require.True(t, ok)
	assert.Equal(t, "2024-T1", q.Label)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), q.Start)
	assert.NotEmpty(t, q.Offsets)
	assert.NotEmpty(t, q.DeferredOffsets)
}

func TestLookupQuarter_Unknown(t *testing.T) {
	_, ok := LookupQuarter("1999-T9")
	assert.False(t, ok)
}

func TestQuarterLabels_Sorted(t *testing.T) {
	labels := QuarterLabels()

	require.NotEmpty(t, labels)
	for i := 1; i < len(labels); i++ {
		assert.Less(t, labels[i-1], labels[i])
	}
}

func TestMaxRateBps_Amortized(t *testing.T) {
	q, ok := LookupQuarter("2024-T2")
	require.True(t, ok)

	bps, found := MaxRateBps(12, 600, 0, q)

	assert.True(t, found)
	assert.Greater(t, bps, 0)
}

func TestMaxRateBps_MonotonicInRate(t *testing.T) {
	q, ok := LookupQuarter("2024-T1")
	require.True(t, ok)

	tests := []struct {
		name  string
		count int
	}{
		{name: "amortized credit", count: 12},
		{name: "short deferred credit", count: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := -1 << 30
			for _, rateBps := range []int{100, 300, 600, 1200} {
				bps, found := MaxRateBps(tt.count, rateBps, 0, q)
				require.True(t, found)
				assert.Greater(t, bps, previous, "cap should grow with the quarter rate %d", rateBps)
				previous = bps
			}
		})
	}
}

func TestMaxRateBps_ConservativeMinimum(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	full := domain.Quarter{Label: "full", Start: start, Offsets: []int{0, 30, 60, 89}}

	fullBps, found := MaxRateBps(10, 600, 0, full)
	require.True(t, found)

	// The minimum over all candidate dates can never exceed any single
	// candidate's value.
	for _, offset := range full.Offsets {
		single := domain.Quarter{Label: "single", Start: start, Offsets: []int{offset}}
		singleBps, ok := MaxRateBps(10, 600, 0, single)
		require.True(t, ok)
		assert.LessOrEqual(t, fullBps, singleBps)
	}
}

func TestMaxRateBps_DeferredDaysRaiseCap(t *testing.T) {
	q, ok := LookupQuarter("2025-T1")
	require.True(t, ok)

	short, found := MaxRateBps(4, 800, 0, q)
	require.True(t, found)
	deferred, found := MaxRateBps(4, 800, 60, q)
	require.True(t, found)

	// A longer deferral discounts every payment further, leaving more
	// headroom for the fee.
	assert.Greater(t, deferred, short)
}

func TestMaxRateBps_NoCandidates(t *testing.T) {
	empty := domain.Quarter{Label: "empty", Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}

	_, found := MaxRateBps(12, 600, 0, empty)
	assert.False(t, found)

	_, found = MaxRateBps(2, 600, 0, empty)
	assert.False(t, found)
}

func TestMaxRateBps_InvalidCount(t *testing.T) {
	q, _ := LookupQuarter("2024-T1")

	_, found := MaxRateBps(0, 600, 0, q)
	assert.False(t, found)
}

func TestMaxRateBps_Deterministic(t *testing.T) {
	q, _ := LookupQuarter("2024-T3")

	first, ok1 := MaxRateBps(24, 550, 0, q)
	second, ok2 := MaxRateBps(24, 550, 0, q)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}
