package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregation queries for the super-admin dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetPlatformCounts returns the platform-wide headline numbers. Scalar
// subqueries so a single round trip covers all four counters.
func (r *AnalyticsRepo) GetPlatformCounts(ctx context.Context) (*repository.PlatformCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM tenants WHERE status = 'active')              AS tenants,
	    (SELECT COUNT(*) FROM customers)                                    AS customers,
	    (SELECT COUNT(*) FROM customers WHERE status = 'active')            AS active_customers,
	    (SELECT COUNT(*) FROM customers WHERE status = 'expired')           AS expired_customers`

	var counts repository.PlatformCounts
	err := r.pool.QueryRow(ctx, query).Scan(
		&counts.Tenants,
		&counts.Customers,
		&counts.ActiveCustomers,
		&counts.ExpiredCustomers,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetPlatformCounts: %w", err)
	}
	return &counts, nil
}

// GetCollectedAmount sums payments whose PaidAt falls in [from, to], across
// all tenants. COALESCE so an empty period returns zero instead of NULL.
func (r *AnalyticsRepo) GetCollectedAmount(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM payments
	WHERE paid_at BETWEEN $1 AND $2`

	var amount decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&amount); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetCollectedAmount: %w", err)
	}
	return amount, nil
}

// GetTopDueTenants ranks tenants by total outstanding balance, highest first.
// Tenants with no positive dues are excluded.
func (r *AnalyticsRepo) GetTopDueTenants(ctx context.Context, limit int) ([]repository.TenantDueRow, error) {
	const query = `
	SELECT
	    t.id                                    AS tenant_id,
	    t.name                                  AS tenant_name,
	    COUNT(c.id)                             AS customers,
	    COALESCE(SUM(c.due_amount), 0)          AS total_due
	FROM tenants t
	JOIN customers c ON c.tenant_id = t.id
	WHERE c.due_amount > 0
	GROUP BY t.id, t.name
	ORDER BY total_due DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopDueTenants: %w", err)
	}
	defer rows.Close()

	var results []repository.TenantDueRow
	for rows.Next() {
		var row repository.TenantDueRow
		if err := rows.Scan(
			&row.TenantID,
			&row.TenantName,
			&row.Customers,
			&row.TotalDue,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopDueTenants scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
