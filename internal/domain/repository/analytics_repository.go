package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PlatformCounts aggregates the platform-wide headline numbers for the
// super-admin dashboard.
type PlatformCounts struct {
	Tenants          int
	Customers        int
	ActiveCustomers  int
	ExpiredCustomers int
}

// TenantDueRow is one tenant in the top-outstanding ranking.
type TenantDueRow struct {
	TenantID   string
	TenantName string
	Customers  int
	TotalDue   decimal.Decimal
}

// AnalyticsRepository runs read-only aggregation queries for the super-admin
// dashboard. Queries are cross-tenant; callers must enforce the superadmin role.
type AnalyticsRepository interface {
	GetPlatformCounts(ctx context.Context) (*PlatformCounts, error)
	// GetCollectedAmount sums payments whose PaidAt falls in [from, to].
	GetCollectedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	GetTopDueTenants(ctx context.Context, limit int) ([]TenantDueRow, error)
}
