package dto

import "github.com/shopspring/decimal"

// PackageRequest body for creating/updating a bandwidth package.
type PackageRequest struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	ValidityDays  int             `json:"validity_days,omitempty"`
	BandwidthMbps int             `json:"bandwidth_mbps,omitempty"`
}

// PackageResponse package in responses.
type PackageResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	ValidityDays  int             `json:"validity_days,omitempty"`
	BandwidthMbps int             `json:"bandwidth_mbps,omitempty"`
	Status        string          `json:"status"`
}

// AreaRequest body for creating/updating a coverage area.
type AreaRequest struct {
	Name     string `json:"name"`
	Upazila  string `json:"upazila,omitempty"`
	District string `json:"district,omitempty"`
}

// AreaResponse area in responses.
type AreaResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Upazila  string `json:"upazila,omitempty"`
	District string `json:"district,omitempty"`
}

// RouterRequest body for creating/updating a MikroTik reference.
type RouterRequest struct {
	Name    string `json:"name"`
	Host    string `json:"host"`
	APIPort int    `json:"api_port,omitempty"`
}

// RouterResponse router in responses.
type RouterResponse struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Host     string `json:"host"`
	APIPort  int    `json:"api_port,omitempty"`
	Status   string `json:"status"`
}
