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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `
	id, tenant_id, name, phone, email, nid_number, address, area_id, mikrotik_id,
	pppoe_username, pppoe_password, package_id, connection_date, expiry_date,
	monthly_bill, due_amount, status, notes, created_at, updated_at`

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.TenantID, customer.Name, customer.Phone, customer.Email,
		customer.NIDNumber, customer.Address, customer.AreaID, customer.MikrotikID,
		customer.PPPoEUsername, customer.PPPoEPassword, customer.PackageID,
		customer.ConnectionDate, customer.ExpiryDate, customer.MonthlyBill, customer.DueAmount,
		customer.Status, customer.Notes, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches one customer by ID. Nil when not found.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// FindByPPPoEUsername looks up a customer by PPPoE login, case-insensitive and
// tenant-scoped. Nil when none.
func (r *CustomerRepo) FindByPPPoEUsername(tenantID, username string) (*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1 AND LOWER(pppoe_username) = LOWER($2)
		LIMIT 1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, tenantID, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer by pppoe username: %w", err)
	}
	return c, nil
}

// ListByTenant pages through the tenant's customers.
func (r *CustomerRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// ListAllByTenant returns the tenant's full customer base (reports, campaigns).
func (r *CustomerRepo) ListAllByTenant(tenantID string) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE tenant_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list all customers: %w", err)
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Update rewrites the mutable customer columns.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET
			name = $2, phone = $3, email = $4, nid_number = $5, address = $6,
			area_id = $7, mikrotik_id = $8, pppoe_username = $9, pppoe_password = $10,
			package_id = $11, connection_date = $12, expiry_date = $13,
			monthly_bill = $14, due_amount = $15, status = $16, notes = $17, updated_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.NIDNumber,
		customer.Address, customer.AreaID, customer.MikrotikID, customer.PPPoEUsername,
		customer.PPPoEPassword, customer.PackageID, customer.ConnectionDate, customer.ExpiryDate,
		customer.MonthlyBill, customer.DueAmount, customer.Status, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer by ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Phone, &c.Email, &c.NIDNumber, &c.Address,
		&c.AreaID, &c.MikrotikID, &c.PPPoEUsername, &c.PPPoEPassword, &c.PackageID,
		&c.ConnectionDate, &c.ExpiryDate, &c.MonthlyBill, &c.DueAmount,
		&c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
