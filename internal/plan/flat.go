package plan

import (
	"time"

	"github.com/Natim/payment-plan-generator/internal/domain"
	"github.com/Natim/payment-plan-generator/internal/schedule"
)

// FlatOptions control the weekly schedule of a flat plan.
type FlatOptions struct {
	// Anchored rolls the first due date forward to AnchorWeekday.
	Anchored      bool
	AnchorWeekday time.Weekday
	// OffsetWeeks delays the whole schedule by this many weeks.
	OffsetWeeks int
}

// BuildFlatPlan builds the simplified weekly product: no rate solving,
// principal and fee distributed in near-equal integer parts over count
// weekly installments. Plan totals are exact; every installment is within
// one cent of the ideal even split.
func BuildFlatPlan(purchaseAmount, paidAmount int64, count int, startDate time.Time, opts FlatOptions) domain.PaymentPlan {
	if count < 1 {
		return nil
	}

	var dates []time.Time
	if opts.Anchored {
		dates = schedule.AnchoredWeeklyDates(count, startDate, opts.AnchorWeekday, opts.OffsetWeeks)
	} else {
		dates = schedule.WeeklyPaymentDates(count, startDate.AddDate(0, 0, 7*opts.OffsetWeeks))
	}

	totals := schedule.SpreadAmount(paidAmount, count)
	purchases := schedule.SpreadAmount(purchaseAmount, count)

	installments := make(domain.PaymentPlan, 0, count)
	for i := 0; i < count; i++ {
		installments = append(installments, domain.Installment{
			DueDate:          dates[i],
			TotalAmount:      totals[i],
			PurchaseAmount:   purchases[i],
			CustomerInterest: totals[i] - purchases[i],
		})
	}
	return installments
}
