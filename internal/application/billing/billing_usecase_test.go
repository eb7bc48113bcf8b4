package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netpulse/netpulse-api/internal/application/dto"
	"github.com/netpulse/netpulse-api/internal/domain"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
	"github.com/netpulse/netpulse-api/internal/domain/repository"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeAdjustmentRepo struct {
	created []*entity.BillAdjustment
	listed  []*entity.BillAdjustment
	failOn  error
}

func (f *fakeAdjustmentRepo) Create(adj *entity.BillAdjustment) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.created = append(f.created, adj)
	return nil
}

func (f *fakeAdjustmentRepo) ListByCustomer(string) ([]*entity.BillAdjustment, error) {
	return f.listed, nil
}

type fakePaymentRepo struct {
	created []*entity.Payment
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakePaymentRepo) ListByCustomer(string) ([]*entity.Payment, error) { return nil, nil }

func (f *fakePaymentRepo) ListByTenantAndRange(string, time.Time, time.Time) ([]*entity.Payment, error) {
	return nil, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	updated   *entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) FindByPPPoEUsername(string, string) (*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) ListByTenant(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) ListAllByTenant(string) ([]*entity.Customer, error) { return nil, nil }

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	f.updated = c
	return nil
}

func (f *fakeCustomerRepo) Delete(string) error { return nil }

type fakePackageRepo struct {
	pkg *entity.Package
}

func (f *fakePackageRepo) Create(*entity.Package) error { return nil }

func (f *fakePackageRepo) GetByID(string) (*entity.Package, error) { return f.pkg, nil }

func (f *fakePackageRepo) ListByTenant(string) ([]*entity.Package, error) { return nil, nil }

func (f *fakePackageRepo) Update(*entity.Package) error { return nil }

func (f *fakePackageRepo) Delete(string) error { return nil }

// fakeTxRunner hands the callback the same fakes, no transaction involved.
type fakeTxRunner struct {
	adjustmentRepo repository.AdjustmentRepository
	paymentRepo    repository.PaymentRepository
	customerRepo   repository.CustomerRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	adjustmentRepo repository.AdjustmentRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(f.adjustmentRepo, f.paymentRepo, f.customerRepo)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCustomer(due string) *entity.Customer {
	return &entity.Customer{
		ID:         "cust-1",
		TenantID:   "tenant-1",
		Name:       "Rahim Uddin",
		PackageID:  "pkg-1",
		DueAmount:  dec(due),
		ExpiryDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:     entity.CustomerStatusExpired,
	}
}

func newAdjustmentFixture(c *entity.Customer) (*AdjustmentUseCase, *fakeAdjustmentRepo, *fakeCustomerRepo) {
	adjRepo := &fakeAdjustmentRepo{}
	custRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{c.ID: c}}
	tx := &fakeTxRunner{adjustmentRepo: adjRepo, paymentRepo: &fakePaymentRepo{}, customerRepo: custRepo}
	return NewAdjustmentUseCase(adjRepo, custRepo, tx), adjRepo, custRepo
}

// ─────────────────────────────────────────────
// Adjustments
// ─────────────────────────────────────────────

func TestAdjustmentCreate_AddsProRataToDue(t *testing.T) {
	c := testCustomer("100")
	uc, adjRepo, custRepo := newAdjustmentFixture(c)

	out, err := uc.Create(context.Background(), "tenant-1", dto.AdjustmentRequest{
		CustomerID:  "cust-1",
		Description: "Mid-month upgrade",
		Rate:        dec("1500"),
		FromDate:    "2024-06-16",
		ToDate:      "2024-06-30",
	})
	require.NoError(t, err)

	// 15 of 30 June days at 1500/month = 750.
	assert.Equal(t, 15, out.Days)
	assert.True(t, out.Amount.Equal(dec("750")), "amount = %s", out.Amount)

	require.Len(t, adjRepo.created, 1)
	require.NotNil(t, custRepo.updated)
	assert.True(t, custRepo.updated.DueAmount.Equal(dec("850")),
		"due = %s", custRepo.updated.DueAmount)
}

func TestAdjustmentCreate_NegativeRangeIsCredit(t *testing.T) {
	c := testCustomer("500")
	uc, _, custRepo := newAdjustmentFixture(c)

	out, err := uc.Create(context.Background(), "tenant-1", dto.AdjustmentRequest{
		CustomerID: "cust-1",
		Rate:       dec("1500"),
		FromDate:   "2024-06-30",
		ToDate:     "2024-06-16",
	})
	require.NoError(t, err)

	assert.True(t, out.Amount.IsNegative())
	assert.True(t, custRepo.updated.DueAmount.LessThan(dec("500")))
}

func TestAdjustmentCreate_Validation(t *testing.T) {
	c := testCustomer("0")
	uc, _, _ := newAdjustmentFixture(c)

	cases := []dto.AdjustmentRequest{
		{CustomerID: "", Rate: dec("1500"), FromDate: "2024-06-01", ToDate: "2024-06-15"},
		{CustomerID: "cust-1", Rate: decimal.Zero, FromDate: "2024-06-01", ToDate: "2024-06-15"},
		{CustomerID: "cust-1", Rate: dec("1500"), FromDate: "junk", ToDate: "2024-06-15"},
		{CustomerID: "cust-1", Rate: dec("1500"), FromDate: "2024-06-01", ToDate: ""},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), "tenant-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAdjustmentCreate_TenantMismatch(t *testing.T) {
	c := testCustomer("0")
	uc, _, _ := newAdjustmentFixture(c)

	_, err := uc.Create(context.Background(), "other-tenant", dto.AdjustmentRequest{
		CustomerID: "cust-1",
		Rate:       dec("1500"),
		FromDate:   "2024-06-01",
		ToDate:     "2024-06-15",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdjustmentCreate_TxFailureLeavesNoResponse(t *testing.T) {
	c := testCustomer("100")
	adjRepo := &fakeAdjustmentRepo{failOn: errors.New("insert failed")}
	custRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{c.ID: c}}
	tx := &fakeTxRunner{adjustmentRepo: adjRepo, paymentRepo: &fakePaymentRepo{}, customerRepo: custRepo}
	uc := NewAdjustmentUseCase(adjRepo, custRepo, tx)

	out, err := uc.Create(context.Background(), "tenant-1", dto.AdjustmentRequest{
		CustomerID: "cust-1",
		Rate:       dec("1500"),
		FromDate:   "2024-06-01",
		ToDate:     "2024-06-15",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Nil(t, custRepo.updated)
}

// ─────────────────────────────────────────────
// Payments
// ─────────────────────────────────────────────

func newPaymentFixture(c *entity.Customer, pkg *entity.Package) (*PaymentUseCase, *fakePaymentRepo, *fakeCustomerRepo) {
	payRepo := &fakePaymentRepo{}
	custRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{c.ID: c}}
	pkgRepo := &fakePackageRepo{pkg: pkg}
	tx := &fakeTxRunner{adjustmentRepo: &fakeAdjustmentRepo{}, paymentRepo: payRepo, customerRepo: custRepo}
	return NewPaymentUseCase(payRepo, custRepo, pkgRepo, tx), payRepo, custRepo
}

func TestPaymentRecord_PartialLeavesDue(t *testing.T) {
	c := testCustomer("1000")
	uc, payRepo, custRepo := newPaymentFixture(c, nil)

	out, err := uc.Record(context.Background(), "tenant-1", dto.PaymentRequest{
		CustomerID: "cust-1",
		Amount:     dec("400"),
		Method:     entity.PaymentMethodBkash,
		TrxID:      "BK12345",
	})
	require.NoError(t, err)

	assert.True(t, out.RemainingDue.Equal(dec("600")))
	require.Len(t, payRepo.created, 1)
	assert.Equal(t, entity.PaymentMethodBkash, payRepo.created[0].Method)

	// Partial payment must not touch expiry or status.
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), custRepo.updated.ExpiryDate)
	assert.Equal(t, entity.CustomerStatusExpired, custRepo.updated.Status)
}

func TestPaymentRecord_ClearedExtendsExpiryByPackageValidity(t *testing.T) {
	c := testCustomer("1000")
	pkg := &entity.Package{ID: "pkg-1", ValidityDays: 30}
	uc, _, custRepo := newPaymentFixture(c, pkg)

	out, err := uc.Record(context.Background(), "tenant-1", dto.PaymentRequest{
		CustomerID: "cust-1",
		Amount:     dec("1000"),
		Method:     entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.True(t, out.RemainingDue.IsZero())
	assert.Equal(t, time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC), custRepo.updated.ExpiryDate)
	assert.Equal(t, entity.CustomerStatusActive, custRepo.updated.Status)
}

func TestPaymentRecord_OverpaymentGoesNegative(t *testing.T) {
	c := testCustomer("300")
	uc, _, custRepo := newPaymentFixture(c, nil)

	out, err := uc.Record(context.Background(), "tenant-1", dto.PaymentRequest{
		CustomerID: "cust-1",
		Amount:     dec("500"),
		Method:     entity.PaymentMethodNagad,
	})
	require.NoError(t, err)

	// Overpayment leaves a credit and still rolls the expiry forward,
	// the missing package falls back to the 30-day default.
	assert.True(t, out.RemainingDue.Equal(dec("-200")))
	assert.Equal(t, time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC), custRepo.updated.ExpiryDate)
}

func TestPaymentRecord_Validation(t *testing.T) {
	c := testCustomer("300")
	uc, _, _ := newPaymentFixture(c, nil)

	cases := []dto.PaymentRequest{
		{CustomerID: "", Amount: dec("100"), Method: entity.PaymentMethodCash},
		{CustomerID: "cust-1", Amount: decimal.Zero, Method: entity.PaymentMethodCash},
		{CustomerID: "cust-1", Amount: dec("-50"), Method: entity.PaymentMethodCash},
		{CustomerID: "cust-1", Amount: dec("100"), Method: "cheque"},
	}
	for _, in := range cases {
		_, err := uc.Record(context.Background(), "tenant-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestPaymentRecord_UnknownCustomer(t *testing.T) {
	c := testCustomer("300")
	uc, _, _ := newPaymentFixture(c, nil)

	_, err := uc.Record(context.Background(), "tenant-1", dto.PaymentRequest{
		CustomerID: "missing",
		Amount:     dec("100"),
		Method:     entity.PaymentMethodCash,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
