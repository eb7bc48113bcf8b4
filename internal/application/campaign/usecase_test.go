package campaign

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
)

// ─── doubles ─────────────────────────────────────────────────────────────────

type fakeCampaignRepo struct {
	created *entity.Campaign
	updated *entity.Campaign
}

func (f *fakeCampaignRepo) Create(c *entity.Campaign) error { f.created = c; return nil }
func (f *fakeCampaignRepo) Update(c *entity.Campaign) error { f.updated = c; return nil }
func (f *fakeCampaignRepo) GetByID(string) (*entity.Campaign, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeCampaignRepo) ListByTenant(string, int, int) ([]*entity.Campaign, error) {
	return nil, nil
}

type fakeCustomerLister struct {
	customers []*entity.Customer
}

func (f *fakeCustomerLister) ListAllByTenant(string) ([]*entity.Customer, error) {
	return f.customers, nil
}
func (f *fakeCustomerLister) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerLister) GetByID(string) (*entity.Customer, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeCustomerLister) FindByPPPoEUsername(string, string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerLister) ListByTenant(string, int, int) ([]*entity.Customer, error) {
	return f.customers, nil
}
func (f *fakeCustomerLister) Update(*entity.Customer) error { return nil }
func (f *fakeCustomerLister) Delete(string) error           { return nil }

type fakeGatewayRepo struct {
	gw *entity.SMSGateway
}

func (f *fakeGatewayRepo) GetByTenant(string) (*entity.SMSGateway, error) { return f.gw, nil }
func (f *fakeGatewayRepo) Upsert(gw *entity.SMSGateway) error             { f.gw = gw; return nil }

type fakeDispatcher struct {
	sent    []string // phone numbers in dispatch order
	failFor map[string]bool
}

func (f *fakeDispatcher) SendSMS(_ context.Context, _ *entity.SMSGateway, phone, _ string) error {
	if f.failFor[phone] {
		return errors.New("gateway timeout")
	}
	f.sent = append(f.sent, phone)
	return nil
}

// ─── fixtures ────────────────────────────────────────────────────────────────

var campaignNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func strp(s string) *string { return &s }

func testCustomers() []*entity.Customer {
	return []*entity.Customer{
		{
			ID: "c-1", Name: "Rahim", Phone: "01711111111",
			AreaID:     strp("area-1"),
			DueAmount:  decimal.NewFromInt(500),
			ExpiryDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "c-2", Name: "Karim", Phone: "01722222222",
			AreaID:     strp("area-2"),
			DueAmount:  decimal.Zero,
			ExpiryDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "c-3", Name: "Jamal", Phone: "",
			AreaID:     strp("area-1"),
			DueAmount:  decimal.NewFromInt(200),
			ExpiryDate: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

// ─── audience selection ──────────────────────────────────────────────────────

func TestSelectAudienceAll(t *testing.T) {
	out := SelectAudience(testCustomers(), entity.AudienceAll, "", campaignNow)
	assert.Len(t, out, 3)
}

func TestSelectAudienceDue(t *testing.T) {
	out := SelectAudience(testCustomers(), entity.AudienceDue, "", campaignNow)
	require.Len(t, out, 2)
	assert.Equal(t, "c-1", out[0].ID)
	assert.Equal(t, "c-3", out[1].ID)
}

func TestSelectAudienceExpired(t *testing.T) {
	out := SelectAudience(testCustomers(), entity.AudienceExpired, "", campaignNow)
	require.Len(t, out, 2)
	assert.Equal(t, "c-2", out[0].ID)
	assert.Equal(t, "c-3", out[1].ID)
}

func TestSelectAudienceArea(t *testing.T) {
	out := SelectAudience(testCustomers(), entity.AudienceArea, "area-2", campaignNow)
	require.Len(t, out, 1)
	assert.Equal(t, "c-2", out[0].ID)
}

// ─── template rendering ──────────────────────────────────────────────────────

func TestRenderTemplate(t *testing.T) {
	c := &entity.Customer{
		Name:       "Rahim",
		DueAmount:  decimal.NewFromFloat(512.5),
		ExpiryDate: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	got := RenderTemplate("Dear {name}, due {due_amount} BDT, expires {expiry_date}.", c)
	assert.Equal(t, "Dear Rahim, due 512.50 BDT, expires 2024-07-01.", got)
}

func TestRenderTemplateNoPlaceholders(t *testing.T) {
	c := &entity.Customer{Name: "Rahim"}
	assert.Equal(t, "plain text", RenderTemplate("plain text", c))
}

// ─── send ────────────────────────────────────────────────────────────────────

func activeGateway() *entity.SMSGateway {
	return &entity.SMSGateway{ID: "gw-1", Provider: "bulksmsbd", APIKey: "key-1234", SenderID: "NetPulse", Status: "active"}
}

func TestSendSkipsCustomersWithoutPhone(t *testing.T) {
	repo := &fakeCampaignRepo{}
	disp := &fakeDispatcher{}
	uc := NewUseCase(repo, &fakeCustomerLister{customers: testCustomers()}, &fakeGatewayRepo{gw: activeGateway()}, disp)

	resp, err := uc.Send(context.Background(), "t-1", dto.CreateCampaignRequest{
		Name: "june dues", Audience: entity.AudienceAll, Template: "hi {name}",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalRecipients)
	assert.Equal(t, 2, resp.SentCount)
	assert.Equal(t, []string{"01711111111", "01722222222"}, disp.sent)
	assert.Equal(t, entity.CampaignStatusPartial, resp.Status)
}

func TestSendAllDeliveredIsSent(t *testing.T) {
	customers := testCustomers()[:2]
	repo := &fakeCampaignRepo{}
	uc := NewUseCase(repo, &fakeCustomerLister{customers: customers}, &fakeGatewayRepo{gw: activeGateway()}, &fakeDispatcher{})

	resp, err := uc.Send(context.Background(), "t-1", dto.CreateCampaignRequest{
		Name: "notice", Audience: entity.AudienceAll, Template: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusSent, resp.Status)
	assert.Equal(t, 2, resp.SentCount)
}

func TestSendGatewayFailuresDoNotAbortRun(t *testing.T) {
	customers := testCustomers()[:2]
	disp := &fakeDispatcher{failFor: map[string]bool{"01711111111": true}}
	uc := NewUseCase(&fakeCampaignRepo{}, &fakeCustomerLister{customers: customers}, &fakeGatewayRepo{gw: activeGateway()}, disp)

	resp, err := uc.Send(context.Background(), "t-1", dto.CreateCampaignRequest{
		Name: "notice", Audience: entity.AudienceAll, Template: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SentCount)
	assert.Equal(t, entity.CampaignStatusPartial, resp.Status)
}

func TestSendRequiresConfiguredGateway(t *testing.T) {
	uc := NewUseCase(&fakeCampaignRepo{}, &fakeCustomerLister{}, &fakeGatewayRepo{gw: nil}, &fakeDispatcher{})

	_, err := uc.Send(context.Background(), "t-1", dto.CreateCampaignRequest{
		Name: "notice", Audience: entity.AudienceAll, Template: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestSendAreaAudienceRequiresAreaID(t *testing.T) {
	uc := NewUseCase(&fakeCampaignRepo{}, &fakeCustomerLister{}, &fakeGatewayRepo{gw: activeGateway()}, &fakeDispatcher{})

	_, err := uc.Send(context.Background(), "t-1", dto.CreateCampaignRequest{
		Name: "notice", Audience: entity.AudienceArea, Template: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
