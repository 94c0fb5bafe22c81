package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyPaymentDates(t *testing.T) {
	dates := MonthlyPaymentDates(3, date(2024, time.January, 15))

	require.Len(t, dates, 3)
	assert.Equal(t, date(2024, time.January, 15), dates[0])
	assert.Equal(t, date(2024, time.February, 15), dates[1])
	assert.Equal(t, date(2024, time.March, 15), dates[2])
}

func TestMonthlyPaymentDates_EndOfMonthNormalizes(t *testing.T) {
	// Jan 31 + 1 month lands on a normalized date, not a clamped one.
	dates := MonthlyPaymentDates(2, date(2024, time.January, 31))

	require.Len(t, dates, 2)
	assert.Equal(t, date(2024, time.March, 2), dates[1])
}

func TestMonthlyPaymentDates_InvalidCount(t *testing.T) {
	assert.Nil(t, MonthlyPaymentDates(0, date(2024, time.January, 1)))
}

func TestWeeklyPaymentDates(t *testing.T) {
	start := date(2024, time.January, 1)
	dates := WeeklyPaymentDates(4, start)

	require.Len(t, dates, 4)
	for i, d := range dates {
		assert.Equal(t, start.AddDate(0, 0, 7*i), d)
	}
}

func TestAnchoredWeeklyDates(t *testing.T) {
	// 2024-01-01 is a Monday.
	start := date(2024, time.January, 1)

	tests := []struct {
		name        string
		anchor      time.Weekday
		offsetWeeks int
		firstDue    time.Time
	}{
		{
			name:     "rolls forward to the anchor weekday",
			anchor:   time.Wednesday,
			firstDue: date(2024, time.January, 3),
		},
		{
			name:     "start already on the anchor weekday",
			anchor:   time.Monday,
			firstDue: start,
		},
		{
			name:        "posting offset shifts by whole weeks",
			anchor:      time.Wednesday,
			offsetWeeks: 2,
			firstDue:    date(2024, time.January, 17),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := AnchoredWeeklyDates(3, start, tt.anchor, tt.offsetWeeks)

			require.Len(t, dates, 3)
			assert.Equal(t, tt.firstDue, dates[0])
			assert.Equal(t, tt.firstDue.AddDate(0, 0, 7), dates[1])
			assert.Equal(t, tt.firstDue.AddDate(0, 0, 14), dates[2])
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "same day",
			from:     date(2024, time.January, 1),
			to:       date(2024, time.January, 1),
			expected: 0,
		},
		{
			name:     "across a leap february",
			from:     date(2024, time.January, 1),
			to:       date(2024, time.March, 1),
			expected: 60,
		},
		{
			name:     "one week",
			from:     date(2024, time.June, 3),
			to:       date(2024, time.June, 10),
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestPlanDays_Monotonic(t *testing.T) {
	start := date(2024, time.January, 31)
	dates := MonthlyPaymentDates(13, start)
	days := PlanDays(start, dates)

	require.Len(t, days, 13)
	assert.Equal(t, 0, days[0])
	for i := 1; i < len(days); i++ {
		assert.GreaterOrEqual(t, days[i], days[i-1])
	}
}

func TestDiscountFactor(t *testing.T) {
	assert.Equal(t, 1.0, DiscountFactor(0, 365))
	assert.Equal(t, 1.0, DiscountFactor(0.05, 0))
	assert.InDelta(t, 1/1.05, DiscountFactor(0.05, 365), 1e-12)
	assert.Less(t, DiscountFactor(0.05, 30), 1.0)
}

func TestPhaseAmount(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		count    int
		expected []int64
	}{
		{
			name:     "remainder absorbed by last part",
			total:    100,
			count:    3,
			expected: []int64{33, 33, 34},
		},
		{
			name:     "even split",
			total:    300,
			count:    3,
			expected: []int64{100, 100, 100},
		},
		{
			name:     "single part",
			total:    250,
			count:    1,
			expected: []int64{250},
		},
		{
			name:     "zero total",
			total:    0,
			count:    4,
			expected: []int64{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := PhaseAmount(tt.total, tt.count)
			assert.Equal(t, tt.expected, parts)

			var sum int64
			for _, p := range parts {
				sum += p
			}
			assert.Equal(t, tt.total, sum)
		})
	}
}

func TestSpreadAmount(t *testing.T) {
	parts := SpreadAmount(312660, 16)

	require.Len(t, parts, 16)
	var sum int64
	for _, p := range parts {
		assert.Contains(t, []int64{19541, 19542}, p)
		sum += p
	}
	assert.Equal(t, int64(312660), sum)
}

func TestSpreadAmount_ExactWithinOneCent(t *testing.T) {
	for _, total := range []int64{0, 1, 99, 100, 12660, 99999} {
		for _, count := range []int{1, 2, 7, 16} {
			parts := SpreadAmount(total, count)
			require.Len(t, parts, count)

			base := total / int64(count)
			var sum int64
			for _, p := range parts {
				assert.True(t, p == base || p == base+1,
					"part %d deviates from ideal for total=%d count=%d", p, total, count)
				sum += p
			}
			assert.Equal(t, total, sum)
		}
	}
}

func TestInvalidCounts(t *testing.T) {
	assert.Nil(t, WeeklyPaymentDates(0, date(2024, time.January, 1)))
	assert.Nil(t, AnchoredWeeklyDates(-1, date(2024, time.January, 1), time.Monday, 0))
	assert.Nil(t, PhaseAmount(100, 0))
	assert.Nil(t, SpreadAmount(100, -3))
}
