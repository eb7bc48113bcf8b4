package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// PackageRepository is the persistence port for bandwidth packages.
type PackageRepository interface {
	Create(pkg *entity.Package) error
	GetByID(id string) (*entity.Package, error)
	ListByTenant(tenantID string) ([]*entity.Package, error)
	Update(pkg *entity.Package) error
	Delete(id string) error
}
