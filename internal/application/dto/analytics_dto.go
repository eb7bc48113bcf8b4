package dto

import "github.com/shopspring/decimal"

// TenantDueDTO one tenant in the top-outstanding ranking.
type TenantDueDTO struct {
	TenantID   string          `json:"tenant_id"`
	TenantName string          `json:"tenant_name"`
	Customers  int             `json:"customers"`
	TotalDue   decimal.Decimal `json:"total_due"`
}

// PlatformSummaryDTO the super-admin dashboard payload.
type PlatformSummaryDTO struct {
	Tenants           int             `json:"tenants"`
	Customers         int             `json:"customers"`
	ActiveCustomers   int             `json:"active_customers"`
	ExpiredCustomers  int             `json:"expired_customers"`
	TodayCollection   decimal.Decimal `json:"today_collection"`
	MonthlyCollection decimal.Decimal `json:"monthly_collection"`
	TopDueTenants     []TenantDueDTO  `json:"top_due_tenants"`
}
