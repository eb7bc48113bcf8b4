package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// AreaRepository is the persistence port for coverage areas.
type AreaRepository interface {
	Create(area *entity.Area) error
	GetByID(id string) (*entity.Area, error)
	ListByTenant(tenantID string) ([]*entity.Area, error)
	Update(area *entity.Area) error
	Delete(id string) error
}
