package entity

import "time"

// Tenant statuses.
const (
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
)

// Tenant is an isolated ISP operator account. All customer and billing data
// is scoped to one tenant.
type Tenant struct {
	ID           string
	Name         string
	ContactName  string
	ContactPhone string
	Email        string
	Address      string
	IsReseller   bool // reseller tenants write to a reduced customer schema (no NID column)
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
