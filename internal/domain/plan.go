package domain

import (
	"time"
)

// Installment represents one scheduled payment. All amounts are integer
// minor currency units (cents).
type Installment struct {
	DueDate          time.Time `json:"due_date"`
	TotalAmount      int64     `json:"total_amount"`
	PurchaseAmount   int64     `json:"purchase_amount"`
	CustomerInterest int64     `json:"customer_interest"`
}

// PaymentPlan is an ordered sequence of installments, ascending by due date.
// An empty plan signals that no plan could be computed.
type PaymentPlan []Installment

// TotalPaid returns the sum of all installment totals.
func (p PaymentPlan) TotalPaid() int64 {
	var sum int64
	for _, inst := range p {
		sum += inst.TotalAmount
	}
	return sum
}

// TotalPurchase returns the sum of all principal components.
func (p PaymentPlan) TotalPurchase() int64 {
	var sum int64
	for _, inst := range p {
		sum += inst.PurchaseAmount
	}
	return sum
}

// TotalInterest returns the sum of all interest components.
func (p PaymentPlan) TotalInterest() int64 {
	var sum int64
	for _, inst := range p {
		sum += inst.CustomerInterest
	}
	return sum
}

// IsEmpty reports whether the plan carries no installments.
func (p PaymentPlan) IsEmpty() bool {
	return len(p) == 0
}
