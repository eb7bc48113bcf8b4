package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// TenantUseCase ISP operator account management (super-admin surface).
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase builds the use case.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// Create onboards a new tenant.
func (uc *TenantUseCase) Create(in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tenant := &entity.Tenant{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		Email:        in.Email,
		Address:      in.Address,
		IsReseller:   in.IsReseller,
		Status:       entity.TenantStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(tenant); err != nil {
		return nil, err
	}
	return toTenantResponse(tenant), nil
}

// GetByID loads one tenant.
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return toTenantResponse(tenant), nil
}

// IsReseller reports the tenant's reseller flag, used by the intake wizard to
// decide whether nid_number may be written.
func (uc *TenantUseCase) IsReseller(id string) (bool, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if tenant == nil {
		return false, domain.ErrNotFound
	}
	return tenant.IsReseller, nil
}

// List pages through tenants (super-admin only).
func (uc *TenantUseCase) List(limit, offset int) ([]*dto.TenantResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TenantResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTenantResponse(t))
	}
	return out, nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:           t.ID,
		Name:         t.Name,
		ContactName:  t.ContactName,
		ContactPhone: t.ContactPhone,
		Email:        t.Email,
		IsReseller:   t.IsReseller,
		Status:       t.Status,
	}
}
