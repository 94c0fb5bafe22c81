// Package plan builds payment plans: the amortized variant solves the
// annual rate implied by the cash-flow schedule and splits every
// installment into principal and interest; the flat variant distributes
// principal and fee in equal parts with no rate solving.
package plan

import (
	"math"
	"time"

	"github.com/Natim/payment-plan-generator/internal/domain"
	"github.com/Natim/payment-plan-generator/internal/schedule"
	"github.com/Natim/payment-plan-generator/internal/solver"
)

// Solved annual rates outside this range are treated as unsolvable.
// These are sanity bounds on consumer credit, not mathematical limits.
const (
	minAnnualRate = 0.0
	maxAnnualRate = 10.0
)

// BuildAmortizedPlan computes the payment plan implied by a purchase
// amount, a total paid amount, an installment count and a start date.
//
// The paid amount is phased over count+1 monthly payments, the first of
// which is an upfront payment due at day 0 and excluded from the financed
// balance. The annual rate (TAEG) is the root of the net-present-value
// equation over the remaining payments, discounted actual/365 with annual
// compounding. Each remaining installment is then split into principal
// and interest against the reducing balance, with the rounding residue
// absorbed into the last installment so that plan totals are exact.
//
// The returned plan has count+1 installments. When no rate can be solved,
// or the solved rate falls outside the sanity bounds, the plan is empty
// and ok is false.
func BuildAmortizedPlan(purchaseAmount, paidAmount int64, count int, startDate time.Time) (domain.PaymentPlan, float64, bool) {
	if count < 1 || paidAmount <= 0 {
		return nil, 0, false
	}

	dates := schedule.MonthlyPaymentDates(count+1, startDate)
	totals := schedule.PhaseAmount(paidAmount, count+1)
	days := schedule.PlanDays(startDate, dates)

	upfront := totals[0]
	loanAmount := purchaseAmount - upfront

	// f(x) = loanAmount - sum of remaining payments discounted at rate x.
	npv := func(rate float64) float64 {
		presentValue := 0.0
		for i := 1; i <= count; i++ {
			presentValue += float64(totals[i]) * schedule.DiscountFactor(rate, days[i])
		}
		return float64(loanAmount) - presentValue
	}

	taeg, ok := solver.FindRoot(npv)
	if !ok || taeg < minAnnualRate || taeg > maxAnnualRate {
		return nil, 0, false
	}

	installments := make(domain.PaymentPlan, 0, count+1)

	// The upfront payment precedes the financed balance; its whole amount
	// counts as principal.
	installments = append(installments, domain.Installment{
		DueDate:        dates[0],
		TotalAmount:    upfront,
		PurchaseAmount: upfront,
	})

	remaining := float64(loanAmount)
	var principalPaid int64
	for i := 1; i <= count; i++ {
		var principalPart, interest int64
		if i == count {
			// Absorb the rounding residue so the principal sums exactly.
			principalPart = loanAmount - principalPaid
			interest = totals[i] - principalPart
		} else {
			gap := days[i] - days[i-1]
			periodRate := math.Pow(1+taeg, float64(gap)/schedule.DaysPerYear) - 1
			interest = int64(math.Round(remaining * periodRate))
			principalPart = totals[i] - interest
		}
		remaining -= float64(principalPart)
		principalPaid += principalPart

		installments = append(installments, domain.Installment{
			DueDate:          dates[i],
			TotalAmount:      totals[i],
			PurchaseAmount:   principalPart,
			CustomerInterest: interest,
		})
	}

	return installments, taeg, true
}
