package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// RouterRepository is the persistence port for MikroTik routers.
type RouterRepository interface {
	Create(router *entity.Router) error
	GetByID(id string) (*entity.Router, error)
	ListByTenant(tenantID string) ([]*entity.Router, error)
	Update(router *entity.Router) error
	Delete(id string) error
}
