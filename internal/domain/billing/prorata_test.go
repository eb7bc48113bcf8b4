package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netpulse/netpulse-api/internal/domain/billing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── DaysCount ────────────────────────────────────────────────────────────────

func TestDaysCount_SameDayIsOne(t *testing.T) {
	d := date(2024, time.March, 15)
	assert.Equal(t, 1, billing.DaysCount(d, d))
}

func TestDaysCount_InclusiveEndpoints(t *testing.T) {
	// 2024-01-01 .. 2024-01-10 spans ten calendar days, both ends counted.
	assert.Equal(t, 10, billing.DaysCount(date(2024, time.January, 1), date(2024, time.January, 10)))
}

func TestDaysCount_AcrossMonthBoundary(t *testing.T) {
	// Jan 28 .. Feb 3 of a leap year: 4 days of January + 3 of February.
	assert.Equal(t, 7, billing.DaysCount(date(2024, time.January, 28), date(2024, time.February, 3)))
}

func TestDaysCount_IgnoresClockOfDay(t *testing.T) {
	from := time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, time.May, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, billing.DaysCount(from, to))
}

func TestDaysCount_InvertedRangeIsNegative(t *testing.T) {
	// No guard: inverted ranges are the caller's call (credit lines).
	assert.Equal(t, -8, billing.DaysCount(date(2024, time.January, 10), date(2024, time.January, 1)))
}

// ── DaysInMonth ──────────────────────────────────────────────────────────────

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, billing.DaysInMonth(date(2024, time.January, 15)))
	assert.Equal(t, 29, billing.DaysInMonth(date(2024, time.February, 1)))  // leap
	assert.Equal(t, 28, billing.DaysInMonth(date(2023, time.February, 28))) // non-leap
	assert.Equal(t, 30, billing.DaysInMonth(date(2024, time.April, 30)))
}

// ── ProRataAmount ────────────────────────────────────────────────────────────

func TestProRataAmount_SingleDayIsDailyRate(t *testing.T) {
	rate := decimal.NewFromInt(1200)
	d := date(2024, time.April, 10) // April has 30 days

	got := billing.ProRataAmount(rate, d, d)

	want := rate.Div(decimal.NewFromInt(30))
	assert.True(t, want.Equal(got), "single-day charge should be rate/daysInMonth, got %s", got)
}

func TestProRataAmount_FullMonthReproducesRate(t *testing.T) {
	rate := decimal.NewFromFloat(999.99)

	months := []struct {
		first, last time.Time
	}{
		{date(2024, time.January, 1), date(2024, time.January, 31)},
		{date(2024, time.February, 1), date(2024, time.February, 29)},
		{date(2023, time.February, 1), date(2023, time.February, 28)},
		{date(2024, time.April, 1), date(2024, time.April, 30)},
	}
	for _, m := range months {
		got := billing.ProRataAmount(rate, m.first, m.last)
		assert.True(t, rate.Equal(got),
			"full month %s should bill the full rate, got %s", m.first.Format("2006-01"), got)
	}
}

func TestProRataAmount_PartialMonth(t *testing.T) {
	// 600/30 = 20 per day, 10 days = 200.
	rate := decimal.NewFromInt(600)
	got := billing.ProRataAmount(rate, date(2024, time.June, 1), date(2024, time.June, 10))
	require.True(t, decimal.NewFromInt(200).Equal(got), "got %s", got)
}

func TestProRataAmount_CrossMonthUsesFirstMonthsDenominator(t *testing.T) {
	// Jan 30 .. Feb 2 = 4 days at rate/31 (January's daily rate), even though
	// two of them fall in February. Deliberate policy, not a bug.
	rate := decimal.NewFromInt(310)
	got := billing.ProRataAmount(rate, date(2024, time.January, 30), date(2024, time.February, 2))
	require.True(t, decimal.NewFromInt(40).Equal(got), "got %s", got)
}

func TestProRataAmount_InvertedRangeGoesNegative(t *testing.T) {
	rate := decimal.NewFromInt(300)
	got := billing.ProRataAmount(rate, date(2024, time.June, 10), date(2024, time.June, 1))
	assert.True(t, got.IsNegative(), "inverted range should produce a negative amount, got %s", got)
}
