package entity

import "time"

// Application roles.
const (
	RoleSuperAdmin = "superadmin" // platform operator, cross-tenant analytics
	RoleAdmin      = "admin"      // tenant owner
	RoleReseller   = "reseller"   // sub-operator under a tenant
	RoleStaff      = "staff"      // tenant employee, limited capabilities
)

// User is an operator account within a tenant.
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
