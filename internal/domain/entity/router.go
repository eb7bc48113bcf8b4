package entity

import "time"

// Router is a MikroTik box a tenant terminates PPPoE sessions on.
// Provisioning against the device itself is handled by the external polling
// server; the API only stores the reference.
type Router struct {
	ID        string
	TenantID  string
	Name      string
	Host      string
	APIPort   int
	Status    string // online | offline | unknown
	CreatedAt time.Time
	UpdatedAt time.Time
}
