package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

var _ repository.RouterRepository = (*RouterRepo)(nil)

// RouterRepo implements RouterRepository (usable with pool or tx).
type RouterRepo struct {
	q Querier
}

// NewRouterRepository builds the adapter.
func NewRouterRepository(q Querier) *RouterRepo {
	return &RouterRepo{q: q}
}

// Create persists a new router.
func (r *RouterRepo) Create(router *entity.Router) error {
	query := `
		INSERT INTO routers (id, tenant_id, name, host, api_port, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		router.ID, router.TenantID, router.Name, router.Host, router.APIPort,
		router.Status, router.CreatedAt, router.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert router: %w", err)
	}
	return nil
}

// GetByID fetches one router by ID. Nil when not found.
func (r *RouterRepo) GetByID(id string) (*entity.Router, error) {
	query := `
		SELECT id, tenant_id, name, host, api_port, status, created_at, updated_at
		FROM routers WHERE id = $1`
	var rt entity.Router
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rt.ID, &rt.TenantID, &rt.Name, &rt.Host, &rt.APIPort, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get router: %w", err)
	}
	return &rt, nil
}

// ListByTenant returns the tenant's routers ordered by name.
func (r *RouterRepo) ListByTenant(tenantID string) ([]*entity.Router, error) {
	query := `
		SELECT id, tenant_id, name, host, api_port, status, created_at, updated_at
		FROM routers WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list routers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Router
	for rows.Next() {
		var rt entity.Router
		if err := rows.Scan(&rt.ID, &rt.TenantID, &rt.Name, &rt.Host, &rt.APIPort, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan router: %w", err)
		}
		list = append(list, &rt)
	}
	return list, rows.Err()
}

// Update rewrites a router.
func (r *RouterRepo) Update(router *entity.Router) error {
	query := `
		UPDATE routers SET name = $2, host = $3, api_port = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		router.ID, router.Name, router.Host, router.APIPort, router.Status, router.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update router: %w", err)
	}
	return nil
}

// Delete removes a router by ID.
func (r *RouterRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM routers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete router: %w", err)
	}
	return nil
}
