package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DTOs for requests and responses

type AmortizedQuoteRequest struct {
	PurchaseAmount int64  `json:"purchase_amount" validate:"gte=0"`
	PaidAmount     int64  `json:"paid_amount" validate:"gte=0,gtefield=PurchaseAmount"`
	Count          int    `json:"count" validate:"required,gte=1"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type FlatQuoteRequest struct {
	PurchaseAmount int64  `json:"purchase_amount" validate:"gte=0"`
	PaidAmount     int64  `json:"paid_amount" validate:"gte=0,gtefield=PurchaseAmount"`
	Count          int    `json:"count" validate:"required,gte=1"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	OffsetWeeks    int    `json:"offset_weeks" validate:"gte=0"`
}

type RateCapRequest struct {
	Count        int    `json:"count" validate:"required,gte=1"`
	RateBps      int    `json:"rate_bps" validate:"gte=0"`
	DeferredDays int    `json:"deferred_days" validate:"gte=0"`
	QuarterLabel string `json:"quarter_label"`
}

// InstallmentView renders an installment with amounts in currency units.
type InstallmentView struct {
	DueDate          string          `json:"due_date"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PurchaseAmount   decimal.Decimal `json:"purchase_amount"`
	CustomerInterest decimal.Decimal `json:"customer_interest"`
}

type QuoteResponse struct {
	QuoteID      string            `json:"quote_id"`
	Rate         string            `json:"rate,omitempty"`
	Installments []InstallmentView `json:"installments"`
	TotalPaid    decimal.Decimal   `json:"total_paid"`
}

type RateCapResponse struct {
	QuoteID      string `json:"quote_id"`
	QuarterLabel string `json:"quarter_label,omitempty"`
	MaxRate      string `json:"max_rate"`
}

// DateFormat is the wire format for calendar dates (day precision).
const DateFormat = "2006-01-02"

// ParseDate parses a wire-format date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
