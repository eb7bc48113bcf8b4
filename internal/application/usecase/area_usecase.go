package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// AreaUseCase coverage area management.
type AreaUseCase struct {
	repo repository.AreaRepository
}

// NewAreaUseCase builds the use case.
func NewAreaUseCase(repo repository.AreaRepository) *AreaUseCase {
	return &AreaUseCase{repo: repo}
}

// Create adds an area.
func (uc *AreaUseCase) Create(tenantID string, in dto.AreaRequest) (*dto.AreaResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	area := &entity.Area{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Upazila:   in.Upazila,
		District:  in.District,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

// List returns the tenant's areas.
func (uc *AreaUseCase) List(tenantID string) ([]*dto.AreaResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AreaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAreaResponse(a))
	}
	return out, nil
}

// Update modifies an area after the tenant check.
func (uc *AreaUseCase) Update(tenantID, id string, in dto.AreaRequest) (*dto.AreaResponse, error) {
	area, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	if area.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	area.Name = in.Name
	area.Upazila = in.Upazila
	area.District = in.District
	area.UpdatedAt = time.Now()
	if err := uc.repo.Update(area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

func toAreaResponse(a *entity.Area) *dto.AreaResponse {
	return &dto.AreaResponse{
		ID:       a.ID,
		TenantID: a.TenantID,
		Name:     a.Name,
		Upazila:  a.Upazila,
		District: a.District,
	}
}
