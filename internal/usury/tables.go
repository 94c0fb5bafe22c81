// Package usury holds the regulatory rate-ceiling reference data and the
// conservative rate-cap evaluation that goes with it.
package usury

import (
	"sort"
	"time"

	"github.com/Natim/payment-plan-generator/internal/domain"
)

// Candidate day offsets within a quarter used as hypothetical contract
// dates. Spanning the whole quarter captures the month-length variations
// that make one evaluation date tighter than another.
var quarterOffsets = []int{0, 30, 60, 89}

// Candidate deferral lengths for short plans with a deferred first payment.
var deferredOffsets = []int{15, 45, 75}

var quarters = buildQuarters()

func buildQuarters() map[string]domain.Quarter {
	starts := map[string]time.Time{
		"2024-T1": time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		"2024-T2": time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		"2024-T3": time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		"2024-T4": time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		"2025-T1": time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		"2025-T2": time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		"2025-T3": time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	}

	table := make(map[string]domain.Quarter, len(starts))
	for label, start := range starts {
		table[label] = domain.Quarter{
			Label:           label,
			Start:           start,
			Offsets:         quarterOffsets,
			DeferredOffsets: deferredOffsets,
		}
	}
	return table
}

// LookupQuarter returns the built-in quarter for a publication label.
func LookupQuarter(label string) (domain.Quarter, bool) {
	q, ok := quarters[label]
	return q, ok
}

// QuarterLabels returns the built-in publication labels in sorted order.
func QuarterLabels() []string {
	labels := make([]string, 0, len(quarters))
	for label := range quarters {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
