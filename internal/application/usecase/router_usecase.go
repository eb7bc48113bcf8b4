package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// RouterUseCase MikroTik reference management. Device state is owned by the
// external polling server; only the reference record lives here.
type RouterUseCase struct {
	repo repository.RouterRepository
}

// NewRouterUseCase builds the use case.
func NewRouterUseCase(repo repository.RouterRepository) *RouterUseCase {
	return &RouterUseCase{repo: repo}
}

// Create registers a router.
func (uc *RouterUseCase) Create(tenantID string, in dto.RouterRequest) (*dto.RouterResponse, error) {
	if in.Name == "" || in.Host == "" {
		return nil, domain.ErrInvalidInput
	}
	port := in.APIPort
	if port == 0 {
		port = 8728 // MikroTik API default
	}
	now := time.Now()
	router := &entity.Router{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Host:      in.Host,
		APIPort:   port,
		Status:    "unknown",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(router); err != nil {
		return nil, err
	}
	return toRouterResponse(router), nil
}

// List returns the tenant's routers.
func (uc *RouterUseCase) List(tenantID string) ([]*dto.RouterResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RouterResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRouterResponse(r))
	}
	return out, nil
}

func toRouterResponse(r *entity.Router) *dto.RouterResponse {
	return &dto.RouterResponse{
		ID:       r.ID,
		TenantID: r.TenantID,
		Name:     r.Name,
		Host:     r.Host,
		APIPort:  r.APIPort,
		Status:   r.Status,
	}
}
