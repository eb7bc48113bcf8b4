// Package billing holds pure billing math (domain services, no dependencies).
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// DaysCount returns the number of whole calendar days between from and to,
// inclusive of both endpoints: DaysCount(d, d) == 1. Clock-of-day and time
// zone are ignored. An inverted range yields a negative count; callers that
// need a charge-only semantic must guard themselves (a negative result can
// legitimately represent a credit line).
func DaysCount(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f)/(24*time.Hour)) + 1
}

// DaysInMonth returns the number of calendar days in the month containing d.
func DaysInMonth(d time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ProRataAmount computes the proportional charge for a partial billing period:
// the full-period rate divided by the days of the month containing from,
// multiplied by the inclusive day count of [from, to].
//
// The denominator is always the month of from, never the month of to and
// never a 360-day convention: a range spanning a month boundary is billed
// at the first month's daily rate for its entire span. Billing-history
// compatibility depends on this exact behavior.
//
// Multiplication happens before division so that a full-month range
// reproduces the rate exactly. Pure and safe for concurrent use.
func ProRataAmount(rate decimal.Decimal, from, to time.Time) decimal.Decimal {
	days := decimal.NewFromInt(int64(DaysCount(from, to)))
	monthDays := decimal.NewFromInt(int64(DaysInMonth(from)))
	return rate.Mul(days).Div(monthDays)
}
