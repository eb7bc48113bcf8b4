package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// PackageUseCase bandwidth package management.
type PackageUseCase struct {
	repo repository.PackageRepository
}

// NewPackageUseCase builds the use case.
func NewPackageUseCase(repo repository.PackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

// Create adds a package to the tenant's catalog.
func (uc *PackageUseCase) Create(tenantID string, in dto.PackageRequest) (*dto.PackageResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Price.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	pkg := &entity.Package{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Name:          in.Name,
		Price:         in.Price,
		ValidityDays:  in.ValidityDays,
		BandwidthMbps: in.BandwidthMbps,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(pkg); err != nil {
		return nil, err
	}
	return toPackageResponse(pkg), nil
}

// List returns the tenant's packages.
func (uc *PackageUseCase) List(tenantID string) ([]*dto.PackageResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PackageResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPackageResponse(p))
	}
	return out, nil
}

// Update modifies a package after the tenant check.
func (uc *PackageUseCase) Update(tenantID, id string, in dto.PackageRequest) (*dto.PackageResponse, error) {
	pkg, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	if pkg.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	pkg.Name = in.Name
	pkg.Price = in.Price
	pkg.ValidityDays = in.ValidityDays
	pkg.BandwidthMbps = in.BandwidthMbps
	pkg.UpdatedAt = time.Now()
	if err := uc.repo.Update(pkg); err != nil {
		return nil, err
	}
	return toPackageResponse(pkg), nil
}

func toPackageResponse(p *entity.Package) *dto.PackageResponse {
	return &dto.PackageResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		Name:          p.Name,
		Price:         p.Price,
		ValidityDays:  p.ValidityDays,
		BandwidthMbps: p.BandwidthMbps,
		Status:        p.Status,
	}
}
