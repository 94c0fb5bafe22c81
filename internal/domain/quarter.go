package domain

import "time"

// Quarter is one usury-rate publication period. Offsets are day offsets
// from the quarter start used as candidate contract dates when evaluating
// a rate ceiling; DeferredOffsets are the candidate deferral lengths used
// for short plans with a deferred first payment.
type Quarter struct {
	Label           string    `json:"label" db:"label"`
	Start           time.Time `json:"start" db:"start_date"`
	Offsets         []int     `json:"offsets"`
	DeferredOffsets []int     `json:"deferred_offsets"`
}
