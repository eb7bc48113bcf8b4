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

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implements PackageRepository (usable with pool or tx).
type PackageRepo struct {
	q Querier
}

// NewPackageRepository builds the adapter.
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

// Create persists a new package.
func (r *PackageRepo) Create(pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, tenant_id, name, price, validity_days, bandwidth_mbps, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pkg.ID, pkg.TenantID, pkg.Name, pkg.Price, pkg.ValidityDays, pkg.BandwidthMbps,
		pkg.Status, pkg.CreatedAt, pkg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert package: %w", err)
	}
	return nil
}

// GetByID fetches one package by ID. Nil when not found.
func (r *PackageRepo) GetByID(id string) (*entity.Package, error) {
	query := `
		SELECT id, tenant_id, name, price, validity_days, bandwidth_mbps, status, created_at, updated_at
		FROM packages WHERE id = $1`
	var p entity.Package
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Price, &p.ValidityDays, &p.BandwidthMbps,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return &p, nil
}

// ListByTenant returns the tenant's packages ordered by price.
func (r *PackageRepo) ListByTenant(tenantID string) ([]*entity.Package, error) {
	query := `
		SELECT id, tenant_id, name, price, validity_days, bandwidth_mbps, status, created_at, updated_at
		FROM packages WHERE tenant_id = $1 ORDER BY price`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Package
	for rows.Next() {
		var p entity.Package
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Price, &p.ValidityDays, &p.BandwidthMbps, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update rewrites a package.
func (r *PackageRepo) Update(pkg *entity.Package) error {
	query := `
		UPDATE packages SET name = $2, price = $3, validity_days = $4, bandwidth_mbps = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pkg.ID, pkg.Name, pkg.Price, pkg.ValidityDays, pkg.BandwidthMbps, pkg.Status, pkg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update package: %w", err)
	}
	return nil
}

// Delete removes a package by ID.
func (r *PackageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}
