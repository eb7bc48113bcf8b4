package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// CustomerRepository is the persistence port for Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// FindByPPPoEUsername looks up a customer by PPPoE login, case-insensitive
	// and scoped to the tenant. At most one result; nil when none.
	FindByPPPoEUsername(tenantID, username string) (*entity.Customer, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error)
	// ListAllByTenant returns the tenant's full customer base (reports, campaigns).
	ListAllByTenant(tenantID string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
