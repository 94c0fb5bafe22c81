// Package schedule holds the calendar arithmetic shared by every plan
// builder: payment-date generation, whole-day gaps and the integer-cents
// splitting rules that keep plan totals exact.
package schedule

import (
	"math"
	"time"
)

// DaysPerYear is the actual/365 day-count basis used for annual compounding.
const DaysPerYear = 365.0

// MonthlyPaymentDates generates count dates stepping one calendar month at
// a time, the first being startDate itself. Month addition follows
// time.AddDate semantics, so end-of-month dates normalize forward
// (Jan 31 + 1 month = Mar 2/3) instead of clamping.
func MonthlyPaymentDates(count int, startDate time.Time) []time.Time {
	if count < 1 {
		return nil
	}
	dates := make([]time.Time, count)
	for i := 0; i < count; i++ {
		dates[i] = startDate.AddDate(0, i, 0)
	}
	return dates
}

// WeeklyPaymentDates generates count dates spaced 7 days apart, the first
// being startDate itself.
func WeeklyPaymentDates(count int, startDate time.Time) []time.Time {
	if count < 1 {
		return nil
	}
	dates := make([]time.Time, count)
	for i := 0; i < count; i++ {
		dates[i] = startDate.AddDate(0, 0, 7*i)
	}
	return dates
}

// AnchoredWeeklyDates generates count weekly dates whose first due date is
// rolled forward to the given weekday, then shifted by offsetWeeks whole
// weeks. A start date already on the anchor weekday is not moved.
func AnchoredWeeklyDates(count int, startDate time.Time, anchor time.Weekday, offsetWeeks int) []time.Time {
	if count < 1 {
		return nil
	}
	first := NextWeekday(startDate, anchor).AddDate(0, 0, 7*offsetWeeks)
	return WeeklyPaymentDates(count, first)
}

// NextWeekday rolls t forward to the next occurrence of w, leaving t
// unchanged when it already falls on w.
func NextWeekday(t time.Time, w time.Weekday) time.Time {
	days := (int(w) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, days)
}

// DaysBetween returns the number of whole days from one calendar date to
// another, ignoring time-of-day and timezone.
func DaysBetween(from, to time.Time) int {
	return int(midnightUTC(to).Sub(midnightUTC(from)).Hours() / 24)
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PlanDays maps each scheduled date to its whole-day offset from startDate.
// The result is monotonically non-decreasing for an ordered schedule, with
// day 0 for an instantaneous first payment.
func PlanDays(startDate time.Time, dates []time.Time) []int {
	days := make([]int, len(dates))
	for i, d := range dates {
		days[i] = DaysBetween(startDate, d)
	}
	return days
}

// DiscountFactor discounts a payment d days away back to day 0 at the
// given annual rate, using actual/365 annual compounding.
func DiscountFactor(annualRate float64, days int) float64 {
	return math.Pow(1+annualRate, -float64(days)/DaysPerYear)
}

// PhaseAmount splits total into count integer parts summing exactly to
// total: floor division for every part but the last, which absorbs the
// remainder.
func PhaseAmount(total int64, count int) []int64 {
	if count < 1 {
		return nil
	}
	parts := make([]int64, count)
	base := total / int64(count)
	var sum int64
	for i := 0; i < count-1; i++ {
		parts[i] = base
		sum += base
	}
	parts[count-1] = total - sum
	return parts
}

// SpreadAmount splits total into count near-equal integer parts summing
// exactly to total. Unlike PhaseAmount, the remainder is spread one cent
// at a time over the trailing installments, so no part deviates from the
// ideal total/count by a full cent or more.
func SpreadAmount(total int64, count int) []int64 {
	if count < 1 {
		return nil
	}
	parts := make([]int64, count)
	base := total / int64(count)
	remainder := total - base*int64(count)
	for i := 0; i < count; i++ {
		parts[i] = base
		if int64(count-i) <= remainder {
			parts[i]++
		}
	}
	return parts
}
