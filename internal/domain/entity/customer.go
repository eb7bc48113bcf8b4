package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer statuses.
const (
	CustomerStatusPending   = "pending" // created by intake, not yet provisioned
	CustomerStatusActive    = "active"
	CustomerStatusExpired   = "expired"
	CustomerStatusSuspended = "suspended"
)

// Customer is an ISP subscriber belonging to a tenant.
//
// AreaID and MikrotikID are pointers: a nil value means "no selection" and maps
// to NULL. NIDNumber is absent from reseller-scoped schemas and is only written
// for non-reseller tenants.
type Customer struct {
	ID             string
	TenantID       string
	Name           string
	Phone          string
	Email          string
	NIDNumber      string
	Address        string
	AreaID         *string
	MikrotikID     *string
	PPPoEUsername  string
	PPPoEPassword  string
	PackageID      string
	ConnectionDate time.Time
	ExpiryDate     time.Time
	MonthlyBill    decimal.Decimal
	DueAmount      decimal.Decimal
	Status         string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
