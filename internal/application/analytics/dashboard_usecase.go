// Package analytics builds the cross-tenant summary for the super-admin
// dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

const dashboardTopTenants = 5 // rows in the top-outstanding widget

// DashboardUseCase produces the platform summary for today and the current
// month.
//
// Data source: AnalyticsRepository (read-only aggregation queries). It never
// touches the payment tables directly.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary assembles the PlatformSummaryDTO.
//
// Four calls run in parallel:
//  1. GetPlatformCounts               → tenant/customer counts
//  2. GetCollectedAmount(today)       → TodayCollection
//  3. GetCollectedAmount(month)       → MonthlyCollection
//  4. GetTopDueTenants(top 5)         → TopDueTenants
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.PlatformSummaryDTO, error) {
	now := time.Now()

	// Today: 00:00:00.000 to 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Current month: the 1st at 00:00 to the end of today
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type countsResult struct {
		counts *repository.PlatformCounts
		err    error
	}
	type amountResult struct {
		amount decimal.Decimal
		err    error
	}
	type dueResult struct {
		rows []repository.TenantDueRow
		err  error
	}

	countsCh := make(chan countsResult, 1)
	todayCh := make(chan amountResult, 1)
	monthCh := make(chan amountResult, 1)
	dueCh := make(chan dueResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.GetPlatformCounts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		amount, err := uc.analyticsRepo.GetCollectedAmount(ctx, todayStart, todayEnd)
		todayCh <- amountResult{amount, err}
	}()
	go func() {
		amount, err := uc.analyticsRepo.GetCollectedAmount(ctx, monthStart, monthEnd)
		monthCh <- amountResult{amount, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopDueTenants(ctx, dashboardTopTenants)
		dueCh <- dueResult{rows, err}
	}()

	counts := <-countsCh
	today := <-todayCh
	month := <-monthCh
	due := <-dueCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: platform counts: %w", counts.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: today collection: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: monthly collection: %w", month.err)
	}
	if due.err != nil {
		return nil, fmt.Errorf("dashboard: top due tenants: %w", due.err)
	}

	topDue := make([]dto.TenantDueDTO, 0, len(due.rows))
	for _, r := range due.rows {
		topDue = append(topDue, dto.TenantDueDTO{
			TenantID:   r.TenantID,
			TenantName: r.TenantName,
			Customers:  r.Customers,
			TotalDue:   r.TotalDue.Round(2),
		})
	}

	return &dto.PlatformSummaryDTO{
		Tenants:           counts.counts.Tenants,
		Customers:         counts.counts.Customers,
		ActiveCustomers:   counts.counts.ActiveCustomers,
		ExpiredCustomers:  counts.counts.ExpiredCustomers,
		TodayCollection:   today.amount.Round(2),
		MonthlyCollection: month.amount.Round(2),
		TopDueTenants:     topDue,
	}, nil
}
