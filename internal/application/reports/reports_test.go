package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netpulse/netpulse-api/internal/application/reports"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func testCustomers() []*entity.Customer {
	area := "area-1"
	return []*entity.Customer{
		{
			ID: "c1", Name: "Rahim", Phone: "01711111111", PPPoEUsername: "rahim",
			AreaID: &area, DueAmount: decimal.NewFromInt(500),
			ExpiryDate: time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
			Status:     "active", MonthlyBill: decimal.NewFromInt(800),
		},
		{
			ID: "c2", Name: "Karim", Phone: "01722222222", PPPoEUsername: "karim",
			DueAmount:  decimal.Zero,
			ExpiryDate: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
			Status:     "expired", MonthlyBill: decimal.NewFromInt(1000),
		},
		{
			ID: "c3", Name: "Salma", Phone: "01733333333", PPPoEUsername: "salma",
			DueAmount:  decimal.NewFromInt(1200),
			ExpiryDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			Status:     "active", MonthlyBill: decimal.NewFromInt(1200),
		},
	}
}

func testPayments() []*entity.Payment {
	return []*entity.Payment{
		{ID: "p1", CustomerID: "c1", Amount: decimal.NewFromInt(300), Method: "bkash",
			TrxID: "TX1", PaidAt: time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)},
		{ID: "p2", CustomerID: "c2", Amount: decimal.NewFromInt(1000), Method: "cash",
			PaidAt: time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC)},
	}
}

func TestBuild_DueCustomers(t *testing.T) {
	data, err := reports.Build(reports.TypeDueCustomers, reports.Input{
		Customers: testCustomers(), Now: testNow,
	})
	require.NoError(t, err)

	require.Len(t, data.Rows, 2, "only customers with due_amount > 0")
	assert.Equal(t, "Rahim", data.Rows[0][0], "rows preserve input order")
	assert.Equal(t, "Salma", data.Rows[1][0])
	assert.Equal(t, "1700.00", data.Summary["total_due"])
}

func TestBuild_ExpiredCustomers(t *testing.T) {
	data, err := reports.Build(reports.TypeExpiredCustomers, reports.Input{
		Customers: testCustomers(), Now: testNow,
	})
	require.NoError(t, err)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Karim", data.Rows[0][0])
	assert.Equal(t, "Salma", data.Rows[1][0])
}

func TestBuild_TodaysPayments(t *testing.T) {
	data, err := reports.Build(reports.TypeTodaysPayments, reports.Input{
		Customers: testCustomers(), Payments: testPayments(), Now: testNow,
	})
	require.NoError(t, err)

	require.Len(t, data.Rows, 1, "yesterday's cash payment is out of range")
	assert.Equal(t, "Rahim", data.Rows[0][1], "customer id resolves to the name")
	assert.Equal(t, "300.00", data.Summary["total_collected"])
}

func TestBuild_PaymentsInRange(t *testing.T) {
	data, err := reports.Build(reports.TypePaymentsInRange, reports.Input{
		Customers: testCustomers(),
		Payments:  testPayments(),
		From:      time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC),
		Now:       testNow,
	})
	require.NoError(t, err)

	assert.Len(t, data.Rows, 2)
	assert.Equal(t, "1300.00", data.Summary["total_collected"])
}

func TestBuild_AreaCustomers(t *testing.T) {
	data, err := reports.Build(reports.TypeAreaCustomers, reports.Input{
		Customers: testCustomers(),
		Areas:     []*entity.Area{{ID: "area-1", Name: "Mirpur 10"}},
		AreaID:    "area-1",
		Now:       testNow,
	})
	require.NoError(t, err)

	require.Len(t, data.Rows, 1, "customers without the area are filtered out")
	assert.Equal(t, "Mirpur 10", data.Subtitle)
}

func TestBuild_UnknownTypeErrors(t *testing.T) {
	_, err := reports.Build(reports.Type("bogus"), reports.Input{Now: testNow})
	assert.Error(t, err)
}
