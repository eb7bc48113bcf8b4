// Package customer implements customer CRUD on top of the repository port and
// adapts it to the intake wizard's collaborator contracts (CustomerWriter,
// UsernameChecker).
package customer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/application/intake"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// UseCase customer operations for one tenant.
type UseCase struct {
	repo repository.CustomerRepository
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.CustomerRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Compile-time checks: the use case is the wizard's checker and writer.
var _ intake.UsernameChecker = (*UseCase)(nil)
var _ intake.CustomerWriter = (*UseCase)(nil)

// Exists reports whether any customer of the tenant already holds the PPPoE
// username (case-insensitive).
func (uc *UseCase) Exists(_ context.Context, tenantID, username string) (bool, error) {
	c, err := uc.repo.FindByPPPoEUsername(tenantID, username)
	if err != nil {
		return false, err
	}
	return c != nil, nil
}

// Create persists a new customer from the wizard's flat payload.
// Contract: true means committed; false or error means not committed.
func (uc *UseCase) Create(_ context.Context, tenantID string, p intake.Payload) (bool, error) {
	now := time.Now()
	c := &entity.Customer{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		Name:           str(p, "name"),
		Phone:          str(p, "phone"),
		Email:          str(p, "email"),
		NIDNumber:      str(p, "nid_number"),
		Address:        str(p, "address"),
		AreaID:         strPtr(p, "area_id"),
		MikrotikID:     strPtr(p, "mikrotik_id"),
		PPPoEUsername:  str(p, "pppoe_username"),
		PPPoEPassword:  str(p, "pppoe_password"),
		PackageID:      str(p, "package_id"),
		ConnectionDate: date(p, "connection_date"),
		ExpiryDate:     date(p, "expiry_date"),
		MonthlyBill:    dec(p, "monthly_bill"),
		DueAmount:      dec(p, "due_amount"),
		Status:         str(p, "status"),
		Notes:          str(p, "notes"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(c); err != nil {
		return false, err
	}
	return true, nil
}

// Update applies the wizard's payload to an existing customer. Absent keys
// leave the stored value untouched (notably status and pppoe_password); keys
// holding nil write NULL.
func (uc *UseCase) Update(_ context.Context, tenantID, customerID string, p intake.Payload) (bool, error) {
	c, err := uc.repo.GetByID(customerID)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, domain.ErrNotFound
	}
	if c.TenantID != tenantID {
		return false, domain.ErrForbidden
	}

	c.Name = str(p, "name")
	c.Phone = str(p, "phone")
	c.Email = str(p, "email")
	c.Address = str(p, "address")
	c.Notes = str(p, "notes")
	c.PPPoEUsername = str(p, "pppoe_username")
	c.PackageID = str(p, "package_id")
	c.ConnectionDate = date(p, "connection_date")
	c.ExpiryDate = date(p, "expiry_date")
	c.MonthlyBill = dec(p, "monthly_bill")
	c.AreaID = strPtr(p, "area_id")
	c.MikrotikID = strPtr(p, "mikrotik_id")
	if _, ok := p["nid_number"]; ok {
		c.NIDNumber = str(p, "nid_number")
	}
	if _, ok := p["status"]; ok {
		c.Status = str(p, "status")
	}
	if _, ok := p["pppoe_password"]; ok {
		c.PPPoEPassword = str(p, "pppoe_password")
	}
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(c); err != nil {
		return false, err
	}
	return true, nil
}

// GetByID loads a customer, enforcing tenant ownership.
func (uc *UseCase) GetByID(tenantID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	return ToResponse(c), nil
}

// GetEntity loads the raw customer entity, enforcing tenant ownership. The
// intake endpoints need the entity to hydrate an edit session.
func (uc *UseCase) GetEntity(tenantID, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

// List returns the tenant's customers, paginated.
func (uc *UseCase) List(tenantID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToResponse(c))
	}
	return out, nil
}

// Delete removes a customer after the tenant check.
func (uc *UseCase) Delete(tenantID, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if c.TenantID != tenantID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// ToResponse maps the entity to its response DTO.
func ToResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		TenantID:       c.TenantID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		NIDNumber:      c.NIDNumber,
		Address:        c.Address,
		AreaID:         c.AreaID,
		MikrotikID:     c.MikrotikID,
		PPPoEUsername:  c.PPPoEUsername,
		PackageID:      c.PackageID,
		ConnectionDate: c.ConnectionDate.Format("2006-01-02"),
		ExpiryDate:     c.ExpiryDate.Format("2006-01-02"),
		MonthlyBill:    c.MonthlyBill,
		DueAmount:      c.DueAmount,
		Status:         c.Status,
		Notes:          c.Notes,
	}
}

// ── payload accessors ─────────────────────────────────────────────────────────

func str(p intake.Payload, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func strPtr(p intake.Payload, key string) *string {
	if v, ok := p[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func date(p intake.Payload, key string) time.Time {
	if v, ok := p[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func dec(p intake.Payload, key string) decimal.Decimal {
	if v, ok := p[key].(decimal.Decimal); ok {
		return v
	}
	return decimal.Zero
}
