package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultValidityDays applies when a package does not specify its own validity.
const DefaultValidityDays = 30

// Package is a bandwidth plan sold by a tenant.
type Package struct {
	ID            string
	TenantID      string
	Name          string
	Price         decimal.Decimal // monthly price
	ValidityDays  int             // 0 means unspecified; callers fall back to DefaultValidityDays
	BandwidthMbps int
	Status        string // active | archived
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validity returns the package validity in days, falling back to the default.
func (p *Package) Validity() int {
	if p.ValidityDays <= 0 {
		return DefaultValidityDays
	}
	return p.ValidityDays
}
