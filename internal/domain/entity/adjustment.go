package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillAdjustment is a pro-rata line added to a customer's bill for a partial
// period, e.g. a mid-cycle package change. FromDate and ToDate are an
// inclusive calendar-day range; Amount may be negative (a credit line).
type BillAdjustment struct {
	ID          string
	TenantID    string
	CustomerID  string
	Description string
	Rate        decimal.Decimal // full-period rate the proration was taken from
	FromDate    time.Time
	ToDate      time.Time
	Days        int // inclusive day count, kept for display
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
