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

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implements AreaRepository (usable with pool or tx).
type AreaRepo struct {
	q Querier
}

// NewAreaRepository builds the adapter.
func NewAreaRepository(q Querier) *AreaRepo {
	return &AreaRepo{q: q}
}

// Create persists a new area.
func (r *AreaRepo) Create(area *entity.Area) error {
	query := `
		INSERT INTO areas (id, tenant_id, name, upazila, district, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		area.ID, area.TenantID, area.Name, area.Upazila, area.District, area.CreatedAt, area.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetByID fetches one area by ID. Nil when not found.
func (r *AreaRepo) GetByID(id string) (*entity.Area, error) {
	query := `
		SELECT id, tenant_id, name, upazila, district, created_at, updated_at
		FROM areas WHERE id = $1`
	var a entity.Area
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.TenantID, &a.Name, &a.Upazila, &a.District, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

// ListByTenant returns the tenant's areas ordered by name.
func (r *AreaRepo) ListByTenant(tenantID string) ([]*entity.Area, error) {
	query := `
		SELECT id, tenant_id, name, upazila, district, created_at, updated_at
		FROM areas WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.TenantID, &a.Name, &a.Upazila, &a.District, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update rewrites an area.
func (r *AreaRepo) Update(area *entity.Area) error {
	query := `
		UPDATE areas SET name = $2, upazila = $3, district = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		area.ID, area.Name, area.Upazila, area.District, area.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update area: %w", err)
	}
	return nil
}

// Delete removes an area by ID.
func (r *AreaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	return nil
}
