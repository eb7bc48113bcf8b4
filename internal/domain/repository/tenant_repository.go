package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// TenantRepository is the persistence port for ISP operator accounts.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	List(limit, offset int) ([]*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
}
