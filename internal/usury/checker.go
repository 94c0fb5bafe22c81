package usury

import (
	"math"

	"github.com/Natim/payment-plan-generator/internal/domain"
	"github.com/Natim/payment-plan-generator/internal/schedule"
)

// Plans with at most this many installments use the short/deferred
// ("Pnx") evaluation instead of the amortized one.
const shortPlanMaxCount = 4

const bpsPerUnit = 10000

// MaxRateBps computes the maximum permissible rate, in basis points, for
// a plan of count installments evaluated against the published quarter
// rate rateBps. The result is the minimum over all candidate evaluation
// dates within the quarter, a conservative worst-case policy.
//
// For counts above shortPlanMaxCount the plan is treated as amortized
// monthly credit: the standard annuity formula is inverted at each
// candidate contract date. For short plans the count+1 unit payments are
// discounted with the first payment deferred by deferredDays plus each
// candidate deferral offset.
//
// The second result is false when the quarter carries no candidate dates.
func MaxRateBps(count, rateBps, deferredDays int, q domain.Quarter) (int, bool) {
	if count < 1 {
		return 0, false
	}
	rate := float64(rateBps) / bpsPerUnit

	if count > shortPlanMaxCount {
		return amortizedMaxBps(count, rate, q)
	}
	return deferredMaxBps(count, rate, deferredDays, q)
}

func amortizedMaxBps(count int, rate float64, q domain.Quarter) (int, bool) {
	best := 0
	found := false
	for _, offset := range q.Offsets {
		anchor := q.Start.AddDate(0, 0, offset)
		dates := schedule.MonthlyPaymentDates(count+1, anchor)
		days := schedule.PlanDays(anchor, dates)

		discountSum := 0.0
		for i := 1; i <= count; i++ {
			discountSum += schedule.DiscountFactor(rate, days[i])
		}
		if discountSum == 0 {
			continue
		}

		// Annuity installment per unit financed; the fee headroom is
		// whatever the total repaid exceeds the unit by.
		installment := 1 / discountSum
		bps := int(math.Floor((installment*float64(count) - 1) * bpsPerUnit))
		if !found || bps < best {
			best = bps
			found = true
		}
	}
	return best, found
}

func deferredMaxBps(count int, rate float64, deferredDays int, q domain.Quarter) (int, bool) {
	best := 0
	found := false
	for _, offset := range q.DeferredOffsets {
		first := q.Start.AddDate(0, 0, offset+deferredDays)
		dates := schedule.MonthlyPaymentDates(count+1, first)
		days := schedule.PlanDays(q.Start, dates)

		discountSum := 0.0
		for i := 0; i <= count; i++ {
			discountSum += schedule.DiscountFactor(rate, days[i])
		}
		if discountSum == 0 {
			continue
		}

		bps := int(math.Floor((float64(count)/discountSum - 1) * bpsPerUnit))
		if !found || bps < best {
			best = bps
			found = true
		}
	}
	return best, found
}
