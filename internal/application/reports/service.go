package reports

import (
	"time"

	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// Service loads the tenant's collections and hands them to Build. Payments are
// only fetched for the report types that need them.
type Service struct {
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
	areaRepo     repository.AreaRepository
}

// NewService builds the service.
func NewService(
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
	areaRepo repository.AreaRepository,
) *Service {
	return &Service{customerRepo: customerRepo, paymentRepo: paymentRepo, areaRepo: areaRepo}
}

// Generate runs the requested report for the tenant.
func (s *Service) Generate(tenantID string, typ Type, areaID string, from, to time.Time) (*Data, error) {
	in := Input{AreaID: areaID, From: from, To: to}

	customers, err := s.customerRepo.ListAllByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	in.Customers = customers

	switch typ {
	case TypeTodaysPayments:
		now := time.Now()
		day := truncateDay(now)
		in.Payments, err = s.paymentRepo.ListByTenantAndRange(tenantID, day, day.Add(24*time.Hour-time.Nanosecond))
	case TypePaymentsInRange:
		in.Payments, err = s.paymentRepo.ListByTenantAndRange(tenantID, from, to)
	case TypeAreaCustomers:
		in.Areas, err = s.areaRepo.ListByTenant(tenantID)
	}
	if err != nil {
		return nil, err
	}

	return Build(typ, in)
}
